package ecs_test

import (
	"fmt"

	"github.com/plus3/sparsecs/ecs"
)

type reaperSystem struct {
	Living ecs.Query[struct{ *Health }]
}

func (s *reaperSystem) Execute(frame *ecs.UpdateFrame) {
	for e, item := range s.Living.Iter() {
		if item.Health.Current <= 0 {
			frame.Commands.Destroy(e)
			frame.Commands.Spawn(ecs.With(Name{Value: "gravestone"}))
		}
	}
}

// ExampleCommands destroys entities while a query is iterating. The changes
// are applied when the scheduler flushes the frame's commands.
func ExampleCommands() {
	scene := ecs.NewScene(ecs.WithRegistry(ecs.NewComponentRegistry()))
	_, _ = scene.Spawn(ecs.With(Health{Current: 0, Max: 10}))
	_, _ = scene.Spawn(ecs.With(Health{Current: 5, Max: 10}))

	scheduler := ecs.NewScheduler(scene)
	scheduler.Register(&reaperSystem{})
	scheduler.Once(1.0 / 60)

	fmt.Println("alive:", len(ecs.View1[Health](scene).Collect()))
	fmt.Println("gravestones:", len(ecs.View1[Name](scene).Collect()))

	// Output:
	// alive: 1
	// gravestones: 1
}
