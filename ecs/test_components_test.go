package ecs_test

import "github.com/plus3/vigil/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

type PlayerController struct{}

// Custom primitive types for testing non-struct components
type Score int32
type Tag string

type Inventory struct {
	Items []string
}

// Story components used by the end-to-end scenarios
type Enemy struct{ Name string }
type Hero struct{ Name string }
type City struct{ Name string }
type Action struct{ Value string }
type ActionList struct{ Value []string }

func newTestStorage() *ecs.Storage {
	return ecs.NewStorage(ecs.NewComponentRegistry())
}

// collectIds drains a query into a set of entity ids
func collectIds(storage *ecs.Storage, types ...ecs.ComponentType) map[ecs.EntityId][]any {
	result := make(map[ecs.EntityId][]any)
	for id, components := range storage.GetComponents(types...) {
		result[id] = components
	}
	return result
}
