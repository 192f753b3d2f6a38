package main

import (
	"math/rand/v2"

	"github.com/plus3/vigil/ecs"
)

type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Health struct {
	Current, Max int
}

type Score int64

type Label string

// componentFactories builds one random component per type
var componentFactories = []func(r *rand.Rand) any{
	func(r *rand.Rand) any { return Position{X: r.Float32() * 100, Y: r.Float32() * 100} },
	func(r *rand.Rand) any { return Velocity{DX: r.Float32() - 0.5, DY: r.Float32() - 0.5} },
	func(r *rand.Rand) any { return Health{Current: r.IntN(100) + 1, Max: 100} },
	func(r *rand.Rand) any { return Score(r.Int64N(1000)) },
	func(r *rand.Rand) any { return Label("unit") },
}

// CreateRandomEntity creates an entity carrying n distinct random component types.
func CreateRandomEntity(storage *ecs.Storage, r *rand.Rand, n int) ecs.EntityId {
	n = min(n, len(componentFactories))
	components := make([]any, 0, n)
	for _, i := range r.Perm(len(componentFactories))[:n] {
		components = append(components, componentFactories[i](r))
	}
	return storage.CreateEntity(components...)
}
