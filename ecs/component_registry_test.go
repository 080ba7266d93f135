package ecs_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/plus3/sparsecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentIDStable(t *testing.T) {
	registry := ecs.NewComponentRegistry()

	pos := ecs.ComponentIDFor[Position](registry)
	vel := ecs.ComponentIDFor[Velocity](registry)

	assert.Equal(t, pos, ecs.ComponentIDFor[Position](registry))
	assert.Equal(t, vel, ecs.ComponentIDFor[Velocity](registry))
	assert.NotEqual(t, pos, vel)
	assert.Equal(t, 2, registry.Len())
}

func TestComponentIDDense(t *testing.T) {
	registry := ecs.NewComponentRegistry()

	assert.Equal(t, ecs.ComponentID(0), ecs.RegisterComponent[Position](registry))
	assert.Equal(t, ecs.ComponentID(1), ecs.RegisterComponent[Velocity](registry))
	assert.Equal(t, ecs.ComponentID(2), ecs.ComponentIDFor[Score](registry))
	assert.Equal(t, ecs.ComponentID(0), ecs.RegisterComponent[Position](registry))
}

func TestComponentIDDistinguishesNamedTypes(t *testing.T) {
	registry := ecs.NewComponentRegistry()

	// Score is defined over int32 but is its own component type.
	assert.NotEqual(t, ecs.ComponentIDFor[Score](registry), ecs.ComponentIDFor[int32](registry))
	assert.NotEqual(t, ecs.ComponentIDFor[Tag](registry), ecs.ComponentIDFor[string](registry))
}

func TestComponentRegistryTypeOf(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	id := ecs.ComponentIDFor[Health](registry)

	typ, ok := registry.TypeOf(id)
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[Health](), typ)

	_, ok = registry.TypeOf(id + 1)
	assert.False(t, ok)
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := ecs.NewComponentRegistry()
	b := ecs.NewComponentRegistry()

	ecs.RegisterComponent[Position](a)
	assert.Equal(t, ecs.ComponentID(0), ecs.ComponentIDFor[Velocity](b))
	assert.Equal(t, ecs.ComponentID(1), ecs.ComponentIDFor[Velocity](a))
}

func TestDefaultRegistry(t *testing.T) {
	assert.Equal(t, ecs.ComponentIDFor[Inventory](ecs.DefaultRegistry), ecs.IDOf[Inventory]())
}

func TestComponentIDConcurrentFirstUse(t *testing.T) {
	registry := ecs.NewComponentRegistry()

	const goroutines = 32
	types := []reflect.Type{
		reflect.TypeFor[Position](),
		reflect.TypeFor[Velocity](),
		reflect.TypeFor[Name](),
		reflect.TypeFor[Health](),
		reflect.TypeFor[Score](),
		reflect.TypeFor[Tag](),
	}

	results := make([][]ecs.ComponentID, goroutines)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for g := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			ids := make([]ecs.ComponentID, len(types))
			// Walk the types in a different order per goroutine.
			for i := range types {
				j := (i + g) % len(types)
				ids[j] = registry.ID(types[j])
			}
			results[g] = ids
		}()
	}
	close(start)
	wg.Wait()

	for g := 1; g < goroutines; g++ {
		assert.Equal(t, results[0], results[g], "goroutine %d saw different ids", g)
	}

	// Every type received exactly one id and none was wasted.
	assert.Equal(t, len(types), registry.Len())
	seen := make(map[ecs.ComponentID]bool)
	for _, id := range results[0] {
		assert.Less(t, int(id), len(types))
		assert.False(t, seen[id], "id %d handed out twice", id)
		seen[id] = true
	}
}
