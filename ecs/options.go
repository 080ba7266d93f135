package ecs

import "github.com/rs/zerolog"

type Option func(s *Scene)

// WithRegistry makes the scene resolve component ids through r instead of
// DefaultRegistry.
func WithRegistry(r *ComponentRegistry) Option {
	return func(s *Scene) {
		s.registry = r
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scene) {
		s.logger = logger
	}
}

// WithEntityCapacity preallocates room for n entity slots.
func WithEntityCapacity(n int) Option {
	return func(s *Scene) {
		s.records = make([]entityRecord, 0, n)
	}
}

// WithPoolCapacity sets the initial capacity of every component pool the scene
// creates.
func WithPoolCapacity(n int) Option {
	return func(s *Scene) {
		s.poolCapacity = n
	}
}

// WithEagerCleanup makes DestroyEntity free the entity's values from every
// pool right away. By default values stay in their pools until the slot is
// reused and the component reassigned, or the component is removed.
func WithEagerCleanup() Option {
	return func(s *Scene) {
		s.eagerCleanup = true
	}
}
