package ecs

import "iter"

// Row1 holds the components matched by Query1
type Row1[A any] struct {
	A A
}

// Row2 holds the components matched by Query2
type Row2[A, B any] struct {
	A A
	B B
}

// Row3 holds the components matched by Query3
type Row3[A, B, C any] struct {
	A A
	B B
	C C
}

// Query1 iterates over entities carrying an A component.
// Type parameters name component value types. The same ordering and mutation
// rules as GetComponents apply.
func Query1[A any](s *Storage) iter.Seq2[EntityId, Row1[A]] {
	tags := []ComponentType{ComponentTypeOf[A](s)}
	return func(yield func(EntityId, Row1[A]) bool) {
		for id, components := range s.GetComponents(tags...) {
			if !yield(id, Row1[A]{A: components[0].(A)}) {
				return
			}
		}
	}
}

// Query2 iterates over entities carrying both an A and a B component.
func Query2[A, B any](s *Storage) iter.Seq2[EntityId, Row2[A, B]] {
	tags := []ComponentType{ComponentTypeOf[A](s), ComponentTypeOf[B](s)}
	return func(yield func(EntityId, Row2[A, B]) bool) {
		for id, components := range s.GetComponents(tags...) {
			row := Row2[A, B]{
				A: components[0].(A),
				B: components[1].(B),
			}
			if !yield(id, row) {
				return
			}
		}
	}
}

// Query3 iterates over entities carrying an A, a B and a C component.
func Query3[A, B, C any](s *Storage) iter.Seq2[EntityId, Row3[A, B, C]] {
	tags := []ComponentType{ComponentTypeOf[A](s), ComponentTypeOf[B](s), ComponentTypeOf[C](s)}
	return func(yield func(EntityId, Row3[A, B, C]) bool) {
		for id, components := range s.GetComponents(tags...) {
			row := Row3[A, B, C]{
				A: components[0].(A),
				B: components[1].(B),
				C: components[2].(C),
			}
			if !yield(id, row) {
				return
			}
		}
	}
}
