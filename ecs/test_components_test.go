package ecs_test

import "github.com/plus3/sparsecs/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

func (h *Health) SetDefaults() {
	h.Current = 100
	h.Max = 100
}

type PlayerController struct{}

// Custom primitive types for testing non-struct components
type Score int32
type Tag string

type Inventory struct {
	Items []string
}

func newTestScene(opts ...ecs.Option) *ecs.Scene {
	opts = append([]ecs.Option{ecs.WithRegistry(ecs.NewComponentRegistry())}, opts...)
	return ecs.NewScene(opts...)
}
