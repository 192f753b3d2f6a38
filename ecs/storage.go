package ecs

import (
	"reflect"
	"sort"

	"github.com/kamstrup/intmap"
)

// Storage is the component store. It keeps a forward index from entity to its
// components and a reverse index from component type to the entities carrying it.
// The two indexes are only ever mutated together by AddComponent.
//
// Storage is not safe for concurrent use. Callers that share a Storage between
// goroutines must guard it with their own lock.
type Storage struct {
	registry *ComponentRegistry
	entities entityRegistry
	forward  *intmap.Map[EntityId, *entityRecord]
	reverse  *intmap.Map[ComponentType, *intmap.Set[EntityId]]
}

// NewStorage creates an empty storage. A nil registry gets a fresh one.
func NewStorage(registry *ComponentRegistry) *Storage {
	if registry == nil {
		registry = NewComponentRegistry()
	}
	return &Storage{
		registry: registry,
		forward:  intmap.New[EntityId, *entityRecord](256),
		reverse:  intmap.New[ComponentType, *intmap.Set[EntityId]](32),
	}
}

// Registry returns the component registry used by this storage.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// AddComponent attaches component to the entity, replacing any component of the
// same type it already carries. Pointer components are stored by value.
// It returns an *UnknownEntityError if id was not produced by CreateEntity, in
// which case neither index is touched.
func (s *Storage) AddComponent(id EntityId, component any) error {
	record, ok := s.forward.Get(id)
	if !ok {
		return &UnknownEntityError{Entity: id}
	}

	compType, value := componentValue(component)
	tag := s.registry.tagFor(compType)

	entities, ok := s.reverse.Get(tag)
	if !ok {
		entities = intmap.NewSet[EntityId](16)
		s.reverse.Put(tag, entities)
	}
	entities.Add(id)
	record.components[tag] = value

	return nil
}

// GetComponent returns the component of the given type stored on the entity.
func (s *Storage) GetComponent(id EntityId, compType ComponentType) (any, bool) {
	record, ok := s.forward.Get(id)
	if !ok {
		return nil, false
	}
	component, ok := record.components[compType]
	return component, ok
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType ComponentType) bool {
	_, ok := s.GetComponent(id, compType)
	return ok
}

// TypeOf returns the tag for the dynamic type of v, registering it if needed.
// Registering a tag never makes entities match a query.
func (s *Storage) TypeOf(v any) ComponentType {
	compType, _ := componentValue(v)
	return s.registry.tagFor(compType)
}

// TypeFor returns the tag for t, registering it if needed.
func (s *Storage) TypeFor(t reflect.Type) ComponentType {
	return s.registry.tagFor(t)
}

// ComponentTypeOf returns the tag for T within the storage's registry.
func ComponentTypeOf[T any](s *Storage) ComponentType {
	return RegisterComponent[T](s.registry)
}

type ComponentReader interface {
	GetComponent(EntityId, ComponentType) (any, bool)
	Registry() *ComponentRegistry
}

// ReadComponent returns a copy of the T component stored on the entity.
// T is the component's value type, never a pointer to it.
func ReadComponent[T any](reader ComponentReader, id EntityId) (T, bool) {
	var zero T
	tag, ok := reader.Registry().Lookup(reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	component, ok := reader.GetComponent(id, tag)
	if !ok {
		return zero, false
	}
	return component.(T), true
}

// StorageStats is a snapshot of storage occupancy.
type StorageStats struct {
	EntityCount        int
	ComponentTypeCount int
	ComponentTypes     []ComponentTypeStats
}

// ComponentTypeStats describes how many entities carry a given component type.
type ComponentTypeStats struct {
	Type        ComponentType
	Name        string
	EntityCount int
}

// CollectStats gathers occupancy statistics. Types that are registered but carried
// by no entity are not listed.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		EntityCount: s.forward.Len(),
	}

	for tag, entities := range s.reverse.All() {
		stats.ComponentTypes = append(stats.ComponentTypes, ComponentTypeStats{
			Type:        tag,
			Name:        s.registry.Type(tag).String(),
			EntityCount: entities.Len(),
		})
	}
	stats.ComponentTypeCount = len(stats.ComponentTypes)

	sort.Slice(stats.ComponentTypes, func(i, j int) bool {
		return stats.ComponentTypes[i].Name < stats.ComponentTypes[j].Name
	})

	return stats
}
