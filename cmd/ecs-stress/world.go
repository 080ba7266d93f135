package main

import (
	"math/rand/v2"

	"github.com/plus3/sparsecs/ecs"
)

type Position struct{ X, Y float32 }

type Velocity struct{ DX, DY float32 }

type Lifetime struct{ Remaining float64 }

type Health struct{ Current, Max int32 }

func (h *Health) SetDefaults() {
	h.Current = 100
	h.Max = 100
}

type Damage struct{ PerSecond float32 }

type Label struct{ Text string }

const componentKinds = 6

// spawner picks a random component mix for every new entity.
type spawner struct {
	rng *rand.Rand
}

func (s *spawner) initializers() []ecs.Initializer {
	inits := []ecs.Initializer{
		ecs.With(Position{X: s.rng.Float32() * 1000, Y: s.rng.Float32() * 1000}),
	}
	if s.rng.IntN(2) == 0 {
		inits = append(inits, ecs.With(Velocity{DX: s.rng.Float32() - 0.5, DY: s.rng.Float32() - 0.5}))
	}
	if s.rng.IntN(3) == 0 {
		inits = append(inits, ecs.With(Lifetime{Remaining: s.rng.Float64() * 5}))
	}
	if s.rng.IntN(2) == 0 {
		inits = append(inits, ecs.WithDefault[Health]())
		if s.rng.IntN(4) == 0 {
			inits = append(inits, ecs.With(Damage{PerSecond: s.rng.Float32() * 50}))
		}
	}
	if s.rng.IntN(10) == 0 {
		inits = append(inits, ecs.With(Label{Text: "tagged"}))
	}
	return inits
}

type MovementSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	dt := float32(frame.DeltaTime)
	for _, item := range s.Entities.Iter() {
		item.Position.X += item.Velocity.DX * dt
		item.Position.Y += item.Velocity.DY * dt
	}
}

type DamageSystem struct {
	Entities ecs.Query[struct {
		*Health
		*Damage
	}]
}

func (s *DamageSystem) Execute(frame *ecs.UpdateFrame) {
	for e, item := range s.Entities.Iter() {
		item.Health.Current -= int32(item.Damage.PerSecond * float32(frame.DeltaTime))
		if item.Health.Current <= 0 {
			frame.Commands.Destroy(e)
		}
	}
}

// LifetimeSystem expires entities and strips velocity from half-spent ones.
type LifetimeSystem struct {
	Entities ecs.Query[struct {
		*Lifetime
		Velocity *Velocity `ecs:"optional"`
	}]
}

func (s *LifetimeSystem) Execute(frame *ecs.UpdateFrame) {
	for e, item := range s.Entities.Iter() {
		item.Lifetime.Remaining -= frame.DeltaTime
		switch {
		case item.Lifetime.Remaining <= 0:
			frame.Commands.Destroy(e)
		case item.Lifetime.Remaining < 1 && item.Velocity != nil:
			ecs.QueueRemove[Velocity](frame.Commands, e)
		}
	}
}

// ChurnSystem destroys a fraction of the scene every frame and spawns the same
// number of replacements, exercising slot and dense index reuse.
type ChurnSystem struct {
	spawner *spawner
	rate    float64
}

func (s *ChurnSystem) Execute(frame *ecs.UpdateFrame) {
	n := int(float64(frame.Scene.Len()) * s.rate)
	if n == 0 {
		return
	}

	view := frame.Scene.View()
	for e, ok := view.Next(); ok && n > 0; e, ok = view.Next() {
		if s.spawner.rng.Float64() >= s.rate {
			continue
		}
		frame.Commands.Destroy(e)
		frame.Commands.Spawn(s.spawner.initializers()...)
		n--
	}
}

// RelabelSystem overwrites labels in place through queued assigns.
type RelabelSystem struct {
	Entities ecs.Query[struct{ *Label }]
	frames   int
}

func (s *RelabelSystem) Execute(frame *ecs.UpdateFrame) {
	s.frames++
	if s.frames%30 != 0 {
		return
	}
	for e := range s.Entities.View().All() {
		ecs.QueueAssign(frame.Commands, e, Label{Text: "relabelled"})
	}
}

func registerSystems(scheduler *ecs.Scheduler, sp *spawner, churnRate float64) {
	scheduler.Register(&MovementSystem{})
	scheduler.Register(&DamageSystem{})
	scheduler.Register(&LifetimeSystem{})
	scheduler.Register(&RelabelSystem{})
	scheduler.Register(&ChurnSystem{spawner: sp, rate: churnRate})
}
