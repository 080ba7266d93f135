package ecs

import "iter"

// View is a lazy, forward-only cursor over the live entities of a scene that
// hold every required component. Entities are yielded in slot order. The
// scene must not be mutated while a view is in use; queue changes on a
// Commands buffer instead.
type View struct {
	scene    *Scene
	required []ComponentID
	cursor   int
}

// View returns a fresh cursor over live entities holding every id in ids. With
// no ids it yields every live entity.
func (s *Scene) View(ids ...ComponentID) *View {
	return &View{
		scene:    s,
		required: ids,
	}
}

// Required returns the ids the view filters on, in declaration order.
func (v *View) Required() []ComponentID {
	return v.required
}

// Next advances to the next matching entity. It returns false once every slot
// has been visited.
func (v *View) Next() (Entity, bool) {
	for v.cursor < len(v.scene.records) {
		index := v.cursor
		v.cursor++

		if e, ok := v.scene.matches(index, v.required); ok {
			return e, true
		}
	}
	return Invalid, false
}

// All returns an iterator draining the remaining entities of the view.
func (v *View) All() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for e, ok := v.Next(); ok; e, ok = v.Next() {
			if !yield(e) {
				return
			}
		}
	}
}

// Collect drains the view into a slice.
func (v *View) Collect() []Entity {
	var entities []Entity
	for e := range v.All() {
		entities = append(entities, e)
	}
	return entities
}

// View1 views entities holding A.
func View1[A any](s *Scene) *View {
	return s.View(ComponentIDFor[A](s.registry))
}

// View2 views entities holding A and B.
func View2[A, B any](s *Scene) *View {
	return s.View(
		ComponentIDFor[A](s.registry),
		ComponentIDFor[B](s.registry),
	)
}

// View3 views entities holding A, B and C.
func View3[A, B, C any](s *Scene) *View {
	return s.View(
		ComponentIDFor[A](s.registry),
		ComponentIDFor[B](s.registry),
		ComponentIDFor[C](s.registry),
	)
}

// View4 views entities holding A, B, C and D.
func View4[A, B, C, D any](s *Scene) *View {
	return s.View(
		ComponentIDFor[A](s.registry),
		ComponentIDFor[B](s.registry),
		ComponentIDFor[C](s.registry),
		ComponentIDFor[D](s.registry),
	)
}
