package ecs

// Commands buffers storage mutations issued by systems so they can be applied
// after a dispatch instead of while a query is being consumed.
type Commands struct {
	creates []createCommand
	adds    []addComponentCommand
	defers  []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

type createCommand struct {
	components []any
	onCreate   func(EntityId)
}

type addComponentCommand struct {
	entity    EntityId
	component any
}

// Defer queues a function to run after all other commands.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// CreateEntity queues the creation of an entity with the given components.
// onCreate, if not nil, receives the new id when the command is flushed.
func (c *Commands) CreateEntity(onCreate func(EntityId), components ...any) {
	c.creates = append(c.creates, createCommand{components: components, onCreate: onCreate})
}

// AddComponent queues a component addition operation.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.adds = append(c.adds, addComponentCommand{
		entity:    entity,
		component: component,
	})
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.creates) + len(c.adds) + len(c.defers)
}

// Flush applies all queued commands to storage in the order creates, adds,
// defers, then resets the buffer. Additions targeting unknown entities are
// skipped; the first such error is returned once everything else was applied.
func (c *Commands) Flush(storage *Storage) error {
	var firstErr error

	for _, cmd := range c.creates {
		id := storage.CreateEntity(cmd.components...)
		if cmd.onCreate != nil {
			cmd.onCreate(id)
		}
	}

	for _, cmd := range c.adds {
		if err := storage.AddComponent(cmd.entity, cmd.component); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.Reset()
	return firstErr
}

// Reset drops all queued commands without applying them.
func (c *Commands) Reset() {
	c.creates = c.creates[:0]
	c.adds = c.adds[:0]
	c.defers = c.defers[:0]
}
