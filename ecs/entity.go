package ecs

// EntityId is an opaque entity identity. Ids are issued in strictly increasing
// order starting at 1 and are never reused. The zero value is never issued.
type EntityId uint64

// NoEntity is the zero EntityId, which no entity ever carries.
const NoEntity EntityId = 0

// entityRecord is the forward-index entry for a single entity
type entityRecord struct {
	components map[ComponentType]any
}

func newEntityRecord() *entityRecord {
	return &entityRecord{
		components: make(map[ComponentType]any),
	}
}

// entityRegistry issues entity ids
type entityRegistry struct {
	last EntityId
}

func (r *entityRegistry) next() EntityId {
	r.last++
	return r.last
}

// CreateEntity allocates a new entity and attaches the given components to it.
// It never fails.
func (s *Storage) CreateEntity(components ...any) EntityId {
	id := s.entities.next()
	s.forward.Put(id, newEntityRecord())

	for _, component := range components {
		// the entity was just created, AddComponent cannot fail here
		_ = s.AddComponent(id, component)
	}

	return id
}

// Exists reports whether id was issued by this storage
func (s *Storage) Exists(id EntityId) bool {
	return s.forward.Has(id)
}

// EntityCount returns the number of entities created so far
func (s *Storage) EntityCount() int {
	return s.forward.Len()
}
