package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/vigil/ecs"
)

// frameArgs is passed to every stress system on each dispatch
type frameArgs struct {
	DeltaTime float32
}

type movementSystem struct{}

func (movementSystem) Name() string { return "movement" }

func (movementSystem) Process(frame *ecs.Frame[frameArgs]) error {
	dt := frame.Args.DeltaTime
	for id, row := range ecs.Query2[Position, Velocity](frame.Storage) {
		frame.Commands.AddComponent(id, Position{
			X: row.A.X + row.B.DX*dt,
			Y: row.A.Y + row.B.DY*dt,
		})
	}
	return nil
}

type decaySystem struct{}

func (decaySystem) Name() string { return "decay" }

func (decaySystem) Process(frame *ecs.Frame[frameArgs]) error {
	for id, row := range ecs.Query1[Health](frame.Storage) {
		if row.A.Current > 1 {
			frame.Commands.AddComponent(id, Health{Current: row.A.Current - 1, Max: row.A.Max})
		}
	}
	return nil
}

// scanSystem reads a fixed set of component types and keeps a checksum so the
// work cannot be optimised away.
type scanSystem struct {
	name     string
	types    []ecs.ComponentType
	checksum int
}

func (s *scanSystem) Name() string { return s.name }

func (s *scanSystem) Process(frame *ecs.Frame[frameArgs]) error {
	for id, components := range frame.Storage.GetComponents(s.types...) {
		s.checksum += int(id) + len(components)
	}
	return nil
}

// RegisterSystems adds the fixed systems plus count random scan systems with
// random priorities.
func RegisterSystems(scheduler *ecs.Scheduler[frameArgs], storage *ecs.Storage, r *rand.Rand, count int) {
	scheduler.AddSystem(movementSystem{}, 100)
	scheduler.AddSystem(decaySystem{}, 50)

	tags := []ecs.ComponentType{
		ecs.ComponentTypeOf[Position](storage),
		ecs.ComponentTypeOf[Velocity](storage),
		ecs.ComponentTypeOf[Health](storage),
		ecs.ComponentTypeOf[Score](storage),
		ecs.ComponentTypeOf[Label](storage),
	}

	for i := 0; i < count; i++ {
		n := r.IntN(3) + 1
		types := make([]ecs.ComponentType, 0, n)
		for _, j := range r.Perm(len(tags))[:n] {
			types = append(types, tags[j])
		}
		scheduler.AddSystem(&scanSystem{
			name:  fmt.Sprintf("scan-%03d", i),
			types: types,
		}, r.IntN(10))
	}
}
