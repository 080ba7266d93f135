package ecs

// Commands buffers structural changes to a Scene so they can be requested
// while views and queries are iterating. Flush applies them.
type Commands struct {
	spawns   [][]Initializer
	destroys []Entity
	assigns  []componentCommand
	removes  []componentCommand
	defers   []func()
}

// componentCommand is a queued assign or remove bound to its component type.
type componentCommand struct {
	entity Entity
	apply  func(s *Scene) error
}

// NewCommands returns an empty command buffer. Systems normally use the one on
// their UpdateFrame.
func NewCommands() *Commands {
	return &Commands{}
}

// Defer queues a function to run after all other commands are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues the creation of an entity initialised with inits.
func (c *Commands) Spawn(inits ...Initializer) {
	c.spawns = append(c.spawns, inits)
}

// Destroy queues the destruction of e.
func (c *Commands) Destroy(e Entity) {
	c.destroys = append(c.destroys, e)
}

// QueueAssign queues assigning value as e's T component.
func QueueAssign[T any](c *Commands, e Entity, value T) {
	c.assigns = append(c.assigns, componentCommand{
		entity: e,
		apply: func(s *Scene) error {
			_, err := Assign(s, e, value)
			return err
		},
	})
}

// QueueRemove queues removing e's T component.
func QueueRemove[T any](c *Commands, e Entity) {
	c.removes = append(c.removes, componentCommand{
		entity: e,
		apply: func(s *Scene) error {
			return Remove[T](s, e)
		},
	})
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.destroys) + len(c.assigns) + len(c.removes) + len(c.defers)
}

// Flush applies all queued commands to the scene and resets the buffer.
// Destroys run first and duplicates are ignored; assigns and removes aimed at
// an entity destroyed in the same flush are dropped. Every command is attempted; failures are logged and
// the first one is returned.
func (c *Commands) Flush(s *Scene) error {
	var first error
	fail := func(err error, msg string) {
		s.logger.Debug().Err(err).Msg(msg)
		if first == nil {
			first = err
		}
	}

	destroyed := make(map[Entity]bool, len(c.destroys))
	for _, e := range c.destroys {
		if destroyed[e] {
			continue
		}
		if err := s.DestroyEntity(e); err != nil {
			fail(err, "queued destroy failed")
			continue
		}
		destroyed[e] = true
	}

	for _, cmd := range c.removes {
		if destroyed[cmd.entity] {
			continue
		}
		if err := cmd.apply(s); err != nil {
			fail(err, "queued remove failed")
		}
	}

	for _, cmd := range c.assigns {
		if destroyed[cmd.entity] {
			continue
		}
		if err := cmd.apply(s); err != nil {
			fail(err, "queued assign failed")
		}
	}

	for _, inits := range c.spawns {
		if _, err := s.Spawn(inits...); err != nil {
			fail(err, "queued spawn failed")
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.destroys = c.destroys[:0]
	c.assigns = c.assigns[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
	return first
}
