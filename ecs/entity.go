package ecs

import (
	"fmt"
	"math"
)

// InvalidIndex marks a handle that can never be live.
const InvalidIndex uint32 = math.MaxUint32

// Invalid is a handle that never refers to a live entity.
var Invalid = Entity{index: InvalidIndex}

// Entity is a handle to a slot in a Scene. The generation is bumped every time
// the slot is freed, so handles issued before a destroy never match again.
// Two handles are equal iff both index and generation match.
type Entity struct {
	index      uint32
	generation uint32
}

// Index returns the slot index of the handle.
func (e Entity) Index() uint32 {
	return e.index
}

// Generation returns the slot generation the handle was issued for.
func (e Entity) Generation() uint32 {
	return e.generation
}

// IsValid reports whether the handle carries a real slot index. It says
// nothing about liveness; use Scene.Alive for that.
func (e Entity) IsValid() bool {
	return e.index != InvalidIndex
}

func (e Entity) String() string {
	if !e.IsValid() {
		return fmt.Sprintf("Entity(invalid, gen=%d)", e.generation)
	}
	return fmt.Sprintf("Entity(%d, gen=%d)", e.index, e.generation)
}

// invalidate retires the handle stored in a slot record.
func (e *Entity) invalidate() {
	e.index = InvalidIndex
	e.generation++
}
