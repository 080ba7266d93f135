// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// It renders ImGui widgets attached to entities and offers inspector panels over a Scene.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sparsecs/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input during the current frame.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem queries all ImguiItem components and defers their render functions.
// It also records the current input capture state, readable through InputState.
type ImguiSystem struct {
	Items ecs.Query[struct{ *ImguiItem }]

	state ImguiInputState
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	io := imgui.CurrentIO()
	i.state.WantCaptureMouse = io.WantCaptureMouse()
	i.state.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for item := range i.Items.Values() {
		if item.ImguiItem.Render != nil {
			frame.Commands.Defer(item.ImguiItem.Render)
		}
	}
}

// InputState returns the capture state seen during the last Execute.
func (i *ImguiSystem) InputState() ImguiInputState {
	return i.state
}

// DebugUISystem renders every inspector panel spawned with SpawnDebugUI. The
// entity browser drives the component inspector, and selecting a pool in the
// pool viewer filters the browser to entities holding that component.
type DebugUISystem struct {
	Browsers   ecs.Query[struct{ *EntityBrowserComponent }]
	Inspectors ecs.Query[struct{ *ComponentInspectorComponent }]
	PoolViews  ecs.Query[struct{ *PoolViewerComponent }]
	Perf       ecs.Query[struct{ *PerformanceStatsComponent }]
	Queries    ecs.Query[struct{ *QueryDebuggerComponent }]
}

func (d *DebugUISystem) Execute(frame *ecs.UpdateFrame) {
	scene := frame.Scene

	var browser *EntityBrowserComponent
	for item := range d.Browsers.Values() {
		browser = item.EntityBrowserComponent
		break
	}

	for item := range d.PoolViews.Values() {
		if clicked := item.PoolViewerComponent.Render(scene); clicked != nil && browser != nil {
			browser.SetPoolFilter(*clicked)
		}
	}

	selected := ecs.Invalid
	if browser != nil {
		browser.Render(scene)
		selected = browser.SelectedEntity()
	}

	for item := range d.Inspectors.Values() {
		item.ComponentInspectorComponent.Render(scene, selected)
	}

	for item := range d.Perf.Values() {
		item.PerformanceStatsComponent.Render(scene, float32(frame.DeltaTime))
	}

	for item := range d.Queries.Values() {
		item.QueryDebuggerComponent.Render(scene)
	}
}
