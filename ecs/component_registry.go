package ecs

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// ComponentID is a dense, process-stable identifier for a component type.
type ComponentID uint32

// ComponentRegistry hands out a ComponentID for each distinct component type.
// Ids are assigned on first use, first-seen-wins, and are never recycled.
// Lookups are lock-free once a type has been seen; racing first uses of the
// same type agree on a single id.
type ComponentRegistry struct {
	cells  sync.Map // reflect.Type -> *registryCell
	types  sync.Map // ComponentID -> reflect.Type
	nextID atomic.Uint32
}

// registryCell guards the one-time id allocation for a single type.
type registryCell struct {
	once sync.Once
	id   ComponentID
}

// DefaultRegistry is shared by every Scene created without WithRegistry.
var DefaultRegistry = NewComponentRegistry()

// NewComponentRegistry creates an empty registry. Most callers use
// DefaultRegistry; a private registry keeps ids of independent scenes apart.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{}
}

// ID returns the identifier of t, allocating the next unused one on first use.
func (r *ComponentRegistry) ID(t reflect.Type) ComponentID {
	c, ok := r.cells.Load(t)
	if !ok {
		c, _ = r.cells.LoadOrStore(t, &registryCell{})
	}

	cell := c.(*registryCell)
	cell.once.Do(func() { r.allocate(cell, t) })
	return cell.id
}

func (r *ComponentRegistry) allocate(cell *registryCell, t reflect.Type) {
	cell.id = ComponentID(r.nextID.Add(1) - 1)
	r.types.Store(cell.id, t)
}

// TypeOf returns the type registered under id.
func (r *ComponentRegistry) TypeOf(id ComponentID) (reflect.Type, bool) {
	t, ok := r.types.Load(id)
	if !ok {
		return nil, false
	}
	return t.(reflect.Type), true
}

// Len returns the number of ids handed out so far.
func (r *ComponentRegistry) Len() int {
	return int(r.nextID.Load())
}

// ComponentIDFor returns the identifier of T in r.
func ComponentIDFor[T any](r *ComponentRegistry) ComponentID {
	return r.ID(reflect.TypeFor[T]())
}

// RegisterComponent assigns T its identifier ahead of first use and returns it.
// Registration is optional; it only fixes id order when that matters to the caller.
func RegisterComponent[T any](r *ComponentRegistry) ComponentID {
	return ComponentIDFor[T](r)
}

// IDOf returns the identifier of T in DefaultRegistry.
func IDOf[T any]() ComponentID {
	return ComponentIDFor[T](DefaultRegistry)
}
