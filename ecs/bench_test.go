package ecs_test

import (
	"testing"

	"github.com/plus3/sparsecs/ecs"
)

func BenchmarkCreateEntity(b *testing.B) {
	scene := newTestScene()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scene.CreateEntity()
	}
}

func BenchmarkSpawn(b *testing.B) {
	scene := newTestScene()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = scene.Spawn(
			ecs.With(Position{X: 1.0, Y: 2.0}),
			ecs.With(Velocity{DX: 0.5, DY: 0.5}),
		)
	}
}

func BenchmarkDestroyEntity(b *testing.B) {
	scene := newTestScene()

	entities := make([]ecs.Entity, b.N)
	for i := 0; i < b.N; i++ {
		entities[i], _ = scene.Spawn(ecs.With(Position{X: 1.0, Y: 2.0}))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = scene.DestroyEntity(entities[i])
	}
}

func BenchmarkChurn(b *testing.B) {
	scene := newTestScene()
	for i := 0; i < 1000; i++ {
		_, _ = scene.Spawn(ecs.With(Position{}))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := scene.CreateEntity()
		_, _ = ecs.Assign(scene, e, Position{X: float32(i)})
		_ = scene.DestroyEntity(e)
	}
}

func BenchmarkGet(b *testing.B) {
	scene := newTestScene()
	e, _ := scene.Spawn(ecs.With(Position{X: 1.0, Y: 2.0}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = ecs.Get[Position](scene, e)
	}
}

func BenchmarkAssignOverwrite(b *testing.B) {
	scene := newTestScene()
	e, _ := scene.Spawn(ecs.With(Position{}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ecs.Assign(scene, e, Position{X: float32(i)})
	}
}

func BenchmarkView(b *testing.B) {
	scene := newTestScene()
	for i := 0; i < 1000; i++ {
		e := scene.CreateEntity()
		_, _ = ecs.Assign(scene, e, Position{})
		if i%2 == 0 {
			_, _ = ecs.Assign(scene, e, Velocity{})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range ecs.View2[Position, Velocity](scene).All() {
		}
	}
}

func BenchmarkQueryIter(b *testing.B) {
	scene := newTestScene()
	for i := 0; i < 1000; i++ {
		_, _ = scene.Spawn(
			ecs.With(Position{}),
			ecs.With(Velocity{DX: 1, DY: 1}),
		)
	}
	query := ecs.NewQuery[movable](scene)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, item := range query.Iter() {
			item.Position.X += item.Velocity.DX
		}
	}
}

func BenchmarkPoolAssignFree(b *testing.B) {
	pool := ecs.NewPool[Position](1024)
	scene := newTestScene()
	entities := make([]ecs.Entity, 1024)
	for i := range entities {
		entities[i] = scene.CreateEntity()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := entities[i%len(entities)]
		pool.Assign(e, Position{X: 1})
		pool.Free(e)
	}
}
