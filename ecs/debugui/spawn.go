package debugui

import (
	"github.com/plus3/sparsecs/ecs"
	"github.com/rotisserie/eris"
)

// SpawnDebugUI adds one entity per inspector panel to the scene. Register a
// DebugUISystem to render them.
func SpawnDebugUI(scene *ecs.Scene) error {
	_, err := scene.Spawn(
		ecs.With(NewEntityBrowserComponent(100)),
		ecs.With(NewComponentInspectorComponent()),
		ecs.With(NewPoolViewerComponent()),
		ecs.With(NewPerformanceStatsComponent(120)),
		ecs.With(NewQueryDebuggerComponent(50)),
	)
	if err != nil {
		return eris.Wrap(err, "failed to spawn debug ui panels")
	}
	return nil
}

func RegisterDebugUIComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
	ecs.RegisterComponent[EntityBrowserComponent](registry)
	ecs.RegisterComponent[ComponentInspectorComponent](registry)
	ecs.RegisterComponent[PoolViewerComponent](registry)
	ecs.RegisterComponent[PerformanceStatsComponent](registry)
	ecs.RegisterComponent[QueryDebuggerComponent](registry)
}
