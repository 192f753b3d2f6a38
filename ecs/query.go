package ecs

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// GetComponents returns the entities carrying every one of the given component
// types, together with those components in the order the types were requested.
//
// If any requested type has never been added to any entity, or no types are
// given, the sequence is empty. The order across entities is unspecified and may
// differ between calls. Adding components while the sequence is being consumed is
// not allowed; use Collect to snapshot results first.
func (s *Storage) GetComponents(types ...ComponentType) iter.Seq2[EntityId, []any] {
	return func(yield func(EntityId, []any) bool) {
		sets, ok := s.entitySets(types)
		if !ok {
			return
		}

		// drive the iteration from the smallest set and probe the others
		smallest := 0
		for i, set := range sets {
			if set.Len() < sets[smallest].Len() {
				smallest = i
			}
		}
		driver := sets[smallest]

		for id := range driver.All() {
			if !containedInAll(id, sets, smallest) {
				continue
			}

			record, _ := s.forward.Get(id)
			components := make([]any, len(types))
			for i, tag := range types {
				components[i] = record.components[tag]
			}

			if !yield(id, components) {
				return
			}
		}
	}
}

// Count returns how many entities carry all of the given types.
func (s *Storage) Count(types ...ComponentType) int {
	n := 0
	for range s.GetComponents(types...) {
		n++
	}
	return n
}

// entitySets resolves each type to its reverse-index set. It reports false if any
// type is absent from the reverse index.
func (s *Storage) entitySets(types []ComponentType) ([]*intmap.Set[EntityId], bool) {
	if len(types) == 0 {
		return nil, false
	}

	sets := make([]*intmap.Set[EntityId], len(types))
	for i, tag := range types {
		set, ok := s.reverse.Get(tag)
		if !ok {
			return nil, false
		}
		sets[i] = set
	}
	return sets, true
}

func containedInAll(id EntityId, sets []*intmap.Set[EntityId], skip int) bool {
	for i, set := range sets {
		if i == skip {
			continue
		}
		if !set.Has(id) {
			return false
		}
	}
	return true
}

// Match is a single query result.
type Match struct {
	Entity     EntityId
	Components []any
}

// Collect drains a query into a slice so that the storage can be mutated while
// the results are being used.
func Collect(seq iter.Seq2[EntityId, []any]) []Match {
	var matches []Match
	for id, components := range seq {
		matches = append(matches, Match{Entity: id, Components: components})
	}
	return matches
}
