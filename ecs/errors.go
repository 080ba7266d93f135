package ecs

import "github.com/rotisserie/eris"

var (
	// ErrInvalidEntity is returned when a handle's slot is out of range, has been
	// destroyed or reused, or carries the invalid sentinel index.
	ErrInvalidEntity = eris.New("invalid entity")

	// ErrPoolAccess is returned when the pool stored for a component id does not
	// hold the requested type. It signals corrupted bookkeeping, not a runtime
	// condition callers are expected to recover from.
	ErrPoolAccess = eris.New("component pool has unexpected type")
)
