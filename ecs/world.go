package ecs

import "iter"

// World bundles a Storage and a Scheduler whose systems read from it. Worlds are
// independent of each other; nothing is shared between two worlds.
type World[A any] struct {
	*Storage
	Scheduler *Scheduler[A]
}

// NewWorld creates an empty world with its own component registry.
func NewWorld[A any]() *World[A] {
	storage := NewStorage(NewComponentRegistry())
	return &World[A]{
		Storage:   storage,
		Scheduler: NewScheduler[A](storage),
	}
}

// Query runs GetComponents against the world's storage.
func (w *World[A]) Query(types ...ComponentType) iter.Seq2[EntityId, []any] {
	return w.Storage.GetComponents(types...)
}

// AddSystem registers a system with the given priority.
func (w *World[A]) AddSystem(system System[A], priority int) {
	w.Scheduler.AddSystem(system, priority)
}

// ProcessSystems dispatches every registered system once.
func (w *World[A]) ProcessSystems(args A) error {
	return w.Scheduler.ProcessSystems(args)
}
