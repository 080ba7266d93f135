package ecs

import (
	"reflect"
	"unsafe"

	"github.com/kamstrup/intmap"
	"github.com/kelindar/bitmap"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

const defaultPoolTableSize = 32

// entityRecord is the per-slot bookkeeping of a Scene. The component set is
// only non-empty while the stored handle is live.
type entityRecord struct {
	entity     Entity
	components bitmap.Bitmap
}

// Scene owns the entity slot table and one component pool per component type.
// A Scene is not safe for concurrent use; it is meant to be driven by a single
// owner, with views and queries reading it between mutations.
type Scene struct {
	registry     *ComponentRegistry
	records      []entityRecord
	freeSlots    []uint32
	live         int
	pools        *intmap.Map[ComponentID, componentPool]
	poolIDs      []ComponentID
	poolCapacity int
	eagerCleanup bool
	logger       zerolog.Logger
}

// NewScene creates an empty scene.
func NewScene(opts ...Option) *Scene {
	s := &Scene{
		registry: DefaultRegistry,
		pools:    intmap.New[ComponentID, componentPool](defaultPoolTableSize),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the registry the scene resolves component ids with.
func (s *Scene) Registry() *ComponentRegistry {
	return s.registry
}

func (s *Scene) Logger() *zerolog.Logger {
	return &s.logger
}

// CreateEntity returns a handle to a fresh entity with no components. Freed
// slots are reused first, keeping the generation bumped by their destruction.
func (s *Scene) CreateEntity() Entity {
	s.live++

	if n := len(s.freeSlots); n > 0 {
		index := s.freeSlots[n-1]
		s.freeSlots = s.freeSlots[:n-1]

		rec := &s.records[index]
		rec.entity = Entity{index: index, generation: rec.entity.generation}
		rec.components.Clear()
		return rec.entity
	}

	index := uint32(len(s.records))
	if index == InvalidIndex {
		panic("ecs: entity slots exhausted")
	}

	e := Entity{index: index}
	s.records = append(s.records, entityRecord{entity: e})
	return e
}

// DestroyEntity retires the handle and returns its slot to the free list. A
// stale or invalid handle yields ErrInvalidEntity and leaves the scene as is.
func (s *Scene) DestroyEntity(e Entity) error {
	rec, err := s.record(e, "destroy")
	if err != nil {
		return err
	}

	if s.eagerCleanup {
		rec.components.Range(func(id uint32) {
			if pool, ok := s.pools.Get(ComponentID(id)); ok {
				pool.free(e.index)
			}
		})
		s.logger.Debug().
			Uint32("index", e.index).
			Uint32("generation", e.generation).
			Int("components", rec.components.Count()).
			Msg("freed components of destroyed entity")
	}

	rec.components.Clear()
	rec.entity.invalidate()
	s.freeSlots = append(s.freeSlots, e.index)
	s.live--
	return nil
}

// Alive reports whether e refers to a live entity of this scene.
func (s *Scene) Alive(e Entity) bool {
	return e.index != InvalidIndex &&
		int(e.index) < len(s.records) &&
		s.records[e.index].entity == e
}

// Len returns the number of live entities.
func (s *Scene) Len() int {
	return s.live
}

// Cap returns the number of entity slots ever allocated, live or free.
func (s *Scene) Cap() int {
	return len(s.records)
}

// Components returns the component ids currently attached to e, in id order.
func (s *Scene) Components(e Entity) ([]ComponentID, error) {
	rec, err := s.record(e, "list components of")
	if err != nil {
		return nil, err
	}

	ids := make([]ComponentID, 0, rec.components.Count())
	rec.components.Range(func(id uint32) {
		ids = append(ids, ComponentID(id))
	})
	return ids, nil
}

// ComponentValue returns a pointer to e's component with the given id, boxed
// in an interface, or nil if e has no such component.
func (s *Scene) ComponentValue(e Entity, id ComponentID) (any, error) {
	rec, err := s.record(e, "read component of")
	if err != nil {
		return nil, err
	}
	if !rec.components.Contains(uint32(id)) {
		return nil, nil
	}

	pool, ok := s.pools.Get(id)
	if !ok {
		return nil, nil
	}
	return pool.value(e.index), nil
}

// record resolves a live handle to its slot record.
func (s *Scene) record(e Entity, op string) (*entityRecord, error) {
	if !s.Alive(e) {
		return nil, eris.Wrapf(ErrInvalidEntity, "%s %s", op, e)
	}
	return &s.records[e.index], nil
}

// matches reports whether the slot at index is live and holds every id.
func (s *Scene) matches(index int, ids []ComponentID) (Entity, bool) {
	rec := &s.records[index]
	if !rec.entity.IsValid() {
		return Invalid, false
	}
	for _, id := range ids {
		if !rec.components.Contains(uint32(id)) {
			return Invalid, false
		}
	}
	return rec.entity, true
}

// componentPointer returns the address of e's component with the given id, or
// nil. The caller has already checked that e is live.
func (s *Scene) componentPointer(e Entity, id ComponentID) unsafe.Pointer {
	if !s.records[e.index].components.Contains(uint32(id)) {
		return nil
	}
	pool, ok := s.pools.Get(id)
	if !ok {
		return nil
	}
	return pool.pointer(e.index)
}

// poolOf returns the pool of T if one has been created.
func poolOf[T any](s *Scene, id ComponentID) (*Pool[T], bool, error) {
	erased, ok := s.pools.Get(id)
	if !ok {
		return nil, false, nil
	}

	pool, ok := erased.(*Pool[T])
	if !ok {
		typeName := reflect.TypeFor[T]().String()
		s.logger.Error().
			Uint32("component_id", uint32(id)).
			Str("component", typeName).
			Str("stored", erased.stats().Type).
			Msg("component pool has unexpected type")
		return nil, false, eris.Wrapf(ErrPoolAccess, "component %s (id %d)", typeName, id)
	}
	return pool, true, nil
}

// poolFor returns the pool of T, creating it on first use.
func poolFor[T any](s *Scene, id ComponentID) (*Pool[T], error) {
	pool, ok, err := poolOf[T](s, id)
	if err != nil || ok {
		return pool, err
	}

	pool = NewPool[T](s.poolCapacity)
	s.pools.Put(id, pool)
	s.poolIDs = append(s.poolIDs, id)

	s.logger.Debug().
		Uint32("component_id", uint32(id)).
		Str("component", reflect.TypeFor[T]().String()).
		Msg("created component pool")
	return pool, nil
}
