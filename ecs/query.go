package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// Query is a typed projection over a View. T must be a struct whose fields are
// pointers to component types, e.g.
//
//	ecs.NewQuery[struct {
//		*Position
//		*Velocity
//	}](scene)
//
// Each field is required unless it is a named field tagged `ecs:"optional"`;
// optional fields are nil when the entity lacks the component. Required
// components are matched in field declaration order.
type Query[T any] struct {
	scene       *Scene
	ids         []ComponentID
	optional    []bool
	fieldOffset []uintptr
	required    []ComponentID
}

// NewQuery creates a query over scene. It panics if T is not a valid query
// struct.
func NewQuery[T any](scene *Scene) *Query[T] {
	q := &Query[T]{}
	q.Init(scene)
	return q
}

// Init binds the query to a scene and resolves its component ids.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(scene *Scene) {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("Query type parameter must be a struct")
	}

	n := structType.NumField()
	q.scene = scene
	q.ids = make([]ComponentID, 0, n)
	q.optional = make([]bool, 0, n)
	q.fieldOffset = make([]uintptr, 0, n)
	q.required = make([]ComponentID, 0, n)

	for i := 0; i < n; i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			panic("Query struct fields must be pointer types")
		}

		// Embedded fields are always required
		isOptional := false
		if !field.Anonymous {
			if tag := field.Tag.Get("ecs"); tag != "" {
				if tag != "optional" {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
				isOptional = true
			}
		}

		id := scene.registry.ID(field.Type.Elem())
		q.ids = append(q.ids, id)
		q.optional = append(q.optional, isOptional)
		q.fieldOffset = append(q.fieldOffset, field.Offset)
		if !isOptional {
			q.required = append(q.required, id)
		}
	}
}

// View returns a fresh cursor over the entities matching the query's required
// components.
func (q *Query[T]) View() *View {
	return q.scene.View(q.required...)
}

// Fill points the fields of dst at e's components. It returns false if e is
// not live or lacks a required component.
func (q *Query[T]) Fill(e Entity, dst *T) bool {
	if !q.scene.Alive(e) {
		return false
	}
	return q.populate(unsafe.Pointer(dst), e)
}

// Get returns a populated struct for e, or nil if e does not match.
func (q *Query[T]) Get(e Entity) *T {
	var result T
	if !q.Fill(e, &result) {
		return nil
	}
	return &result
}

func (q *Query[T]) populate(structPtr unsafe.Pointer, e Entity) bool {
	for i, id := range q.ids {
		component := q.scene.componentPointer(e, id)
		if component == nil && !q.optional[i] {
			return false
		}
		*(*unsafe.Pointer)(unsafe.Add(structPtr, q.fieldOffset[i])) = component
	}
	return true
}

// Iter returns an iterator over matching entities and their populated structs.
// Every call starts a new pass over the scene.
func (q *Query[T]) Iter() iter.Seq2[Entity, T] {
	return func(yield func(Entity, T) bool) {
		view := q.View()

		var result T
		resultPtr := unsafe.Pointer(&result)

		for e, ok := view.Next(); ok; e, ok = view.Next() {
			if !q.populate(resultPtr, e) {
				continue
			}
			if !yield(e, result) {
				return
			}
		}
	}
}

// Values returns an iterator over the populated structs only.
func (q *Query[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range q.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}
