package ecs

import (
	"reflect"
	"unsafe"

	"github.com/kamstrup/intmap"
)

const (
	poolBlockSize   = 64
	minPoolCapacity = 16
)

// Defaulter is implemented on the pointer receiver by components whose default
// value differs from the Go zero value. AssignDefault starts from the zero value
// and calls SetDefaults on it.
type Defaulter interface {
	SetDefaults()
}

// componentPool is the type-erased side of a Pool, as held in the Scene's pool
// table. All methods address entities by slot index.
type componentPool interface {
	free(index uint32)
	has(index uint32) bool
	pointer(index uint32) unsafe.Pointer
	value(index uint32) any
	stats() PoolStats
}

var _ componentPool = (*Pool[struct{}])(nil)

// Pool is a sparse-set store for a single component type. It maps entity slot
// indices to dense storage indices and reuses freed dense indices before
// growing. Dense storage is split into fixed-size blocks that never move, so a
// pointer returned by Get or Assign stays valid until that entity is freed.
//
// A Pool does not know about generations: it trusts its caller to have checked
// that the entity is live.
type Pool[T any] struct {
	sparse    *intmap.Map[uint32, uint32]
	blocks    []*[poolBlockSize]T
	freeSlots []uint32
	nextIndex uint32
}

// NewPool creates a pool with room for capacity components before it grows.
func NewPool[T any](capacity int) *Pool[T] {
	p := &Pool[T]{
		sparse: intmap.New[uint32, uint32](max(capacity, minPoolCapacity)),
	}
	for n := 0; n < capacity; n += poolBlockSize {
		p.blocks = append(p.blocks, new([poolBlockSize]T))
	}
	return p
}

// Get returns the component stored for the entity's slot, or nil.
func (p *Pool[T]) Get(e Entity) *T {
	dense, ok := p.sparse.Get(e.index)
	if !ok {
		return nil
	}
	return p.at(dense)
}

// Has reports whether the entity's slot holds a value in this pool.
func (p *Pool[T]) Has(e Entity) bool {
	return p.has(e.index)
}

// Assign stores value for the entity, overwriting any existing value in place.
func (p *Pool[T]) Assign(e Entity, value T) *T {
	if dense, ok := p.sparse.Get(e.index); ok {
		slot := p.at(dense)
		*slot = value
		return slot
	}

	dense := p.allocate()
	slot := p.at(dense)
	*slot = value
	p.sparse.Put(e.index, dense)
	return slot
}

// AssignDefault stores the default value of T for the entity.
func (p *Pool[T]) AssignDefault(e Entity) *T {
	return p.Assign(e, defaultValue[T]())
}

// Free releases the entity's dense slot for reuse. It is a no-op if the entity
// has no value in this pool.
func (p *Pool[T]) Free(e Entity) {
	p.free(e.index)
}

// Len returns the number of stored values.
func (p *Pool[T]) Len() int {
	return p.sparse.Len()
}

// FreeLen returns the number of released dense slots awaiting reuse.
func (p *Pool[T]) FreeLen() int {
	return len(p.freeSlots)
}

// Cap returns the number of dense slots allocated across all blocks.
func (p *Pool[T]) Cap() int {
	return len(p.blocks) * poolBlockSize
}

func (p *Pool[T]) allocate() uint32 {
	if n := len(p.freeSlots); n > 0 {
		dense := p.freeSlots[n-1]
		p.freeSlots = p.freeSlots[:n-1]
		return dense
	}

	dense := p.nextIndex
	p.nextIndex++
	if int(dense/poolBlockSize) >= len(p.blocks) {
		p.blocks = append(p.blocks, new([poolBlockSize]T))
	}
	return dense
}

func (p *Pool[T]) at(dense uint32) *T {
	return &p.blocks[dense/poolBlockSize][dense%poolBlockSize]
}

func (p *Pool[T]) free(index uint32) {
	dense, ok := p.sparse.Get(index)
	if !ok {
		return
	}

	// Drop references held by the old value so they can be collected.
	var zero T
	*p.at(dense) = zero

	p.freeSlots = append(p.freeSlots, dense)
	p.sparse.Del(index)
}

func (p *Pool[T]) has(index uint32) bool {
	_, ok := p.sparse.Get(index)
	return ok
}

func (p *Pool[T]) pointer(index uint32) unsafe.Pointer {
	dense, ok := p.sparse.Get(index)
	if !ok {
		return nil
	}
	return unsafe.Pointer(p.at(dense))
}

func (p *Pool[T]) value(index uint32) any {
	dense, ok := p.sparse.Get(index)
	if !ok {
		return nil
	}
	return p.at(dense)
}

func (p *Pool[T]) stats() PoolStats {
	return PoolStats{
		Type:     reflect.TypeFor[T]().String(),
		Len:      p.Len(),
		Dense:    int(p.nextIndex),
		Free:     len(p.freeSlots),
		Capacity: p.Cap(),
	}
}

func defaultValue[T any]() T {
	var v T
	if d, ok := any(&v).(Defaulter); ok {
		d.SetDefaults()
	}
	return v
}
