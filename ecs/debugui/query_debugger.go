package debugui

import (
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sparsecs/ecs"
)

func NewQueryDebuggerComponent(maxListed int) QueryDebuggerComponent {
	return QueryDebuggerComponent{
		selectedComponents: make(map[ecs.ComponentID]bool),
		maxListed:          maxListed,
	}
}

func (qd *QueryDebuggerComponent) Render(scene *ecs.Scene) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		qd.selectedComponents = make(map[ecs.ComponentID]bool)
	}

	for _, pool := range scene.CollectStats().Pools {
		selected := qd.selectedComponents[pool.ID]
		if imgui.Checkbox(pool.Type, &selected) {
			if selected {
				qd.selectedComponents[pool.ID] = true
			} else {
				delete(qd.selectedComponents, pool.ID)
			}
		}
	}

	imgui.Separator()

	ids := qd.selectedIDs()
	if len(ids) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	matches := runQuery(scene, ids)
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matches)))

	if imgui.TreeNodeStr("Matches") {
		for _, e := range matches[:min(len(matches), qd.maxListed)] {
			imgui.BulletText(e.String())
		}
		if len(matches) > qd.maxListed {
			imgui.Text(fmt.Sprintf("... and %d more", len(matches)-qd.maxListed))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// selectedIDs returns the ticked component ids in ascending order.
func (qd *QueryDebuggerComponent) selectedIDs() []ecs.ComponentID {
	ids := make([]ecs.ComponentID, 0, len(qd.selectedComponents))
	for id := range qd.selectedComponents {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func runQuery(scene *ecs.Scene, ids []ecs.ComponentID) []ecs.Entity {
	return scene.View(ids...).Collect()
}
