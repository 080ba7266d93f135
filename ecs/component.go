package ecs

import "github.com/rotisserie/eris"

// Initializer attaches a component to a freshly spawned entity.
type Initializer func(s *Scene, e Entity) error

// With returns an Initializer assigning value.
func With[T any](value T) Initializer {
	return func(s *Scene, e Entity) error {
		_, err := Assign(s, e, value)
		return err
	}
}

// WithDefault returns an Initializer assigning the default value of T.
func WithDefault[T any]() Initializer {
	return func(s *Scene, e Entity) error {
		_, err := AssignDefault[T](s, e)
		return err
	}
}

// Spawn creates an entity and runs inits against it in order. If one fails the
// entity is destroyed again and the error returned.
func (s *Scene) Spawn(inits ...Initializer) (Entity, error) {
	e := s.CreateEntity()
	for _, init := range inits {
		if err := init(s, e); err != nil {
			_ = s.DestroyEntity(e)
			return Invalid, eris.Wrap(err, "failed to spawn entity")
		}
	}
	return e, nil
}

// Assign stores value as e's T component, replacing any previous value. The
// returned pointer stays valid until the component is removed or e destroyed.
func Assign[T any](s *Scene, e Entity, value T) (*T, error) {
	rec, err := s.record(e, "assign to")
	if err != nil {
		return nil, err
	}

	id := ComponentIDFor[T](s.registry)
	pool, err := poolFor[T](s, id)
	if err != nil {
		return nil, err
	}

	rec.components.Set(uint32(id))
	return pool.Assign(e, value), nil
}

// AssignDefault stores the default value of T as e's T component. See Defaulter.
func AssignDefault[T any](s *Scene, e Entity) (*T, error) {
	rec, err := s.record(e, "assign to")
	if err != nil {
		return nil, err
	}

	id := ComponentIDFor[T](s.registry)
	pool, err := poolFor[T](s, id)
	if err != nil {
		return nil, err
	}

	rec.components.Set(uint32(id))
	return pool.AssignDefault(e), nil
}

// Remove detaches e's T component. Removing a component e does not have is a
// no-op.
func Remove[T any](s *Scene, e Entity) error {
	rec, err := s.record(e, "remove from")
	if err != nil {
		return err
	}

	id := ComponentIDFor[T](s.registry)
	rec.components.Remove(uint32(id))

	pool, ok, err := poolOf[T](s, id)
	if err != nil {
		return err
	}
	if ok {
		pool.Free(e)
	}
	return nil
}

// GetMut returns a pointer to e's T component, or nil if e has none.
func GetMut[T any](s *Scene, e Entity) (*T, error) {
	rec, err := s.record(e, "get from")
	if err != nil {
		return nil, err
	}

	id := ComponentIDFor[T](s.registry)
	if !rec.components.Contains(uint32(id)) {
		return nil, nil
	}

	pool, ok, err := poolOf[T](s, id)
	if err != nil || !ok {
		return nil, err
	}
	return pool.Get(e), nil
}

// Get returns a copy of e's T component. ok is false if e has none.
func Get[T any](s *Scene, e Entity) (value T, ok bool, err error) {
	ptr, err := GetMut[T](s, e)
	if err != nil || ptr == nil {
		return value, false, err
	}
	return *ptr, true, nil
}

// Has reports whether e currently holds a T component.
func Has[T any](s *Scene, e Entity) (bool, error) {
	rec, err := s.record(e, "check")
	if err != nil {
		return false, err
	}
	return rec.components.Contains(uint32(ComponentIDFor[T](s.registry))), nil
}
