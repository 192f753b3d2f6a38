package ecs

import (
	"reflect"
)

// ComponentType is the explicit tag a ComponentRegistry assigns to a Go type.
// Tags start at 1 and are only meaningful within the registry that issued them.
type ComponentType uint32

// ComponentRegistry assigns ComponentType tags to component types. Each Storage
// owns its own registry, so independent worlds never share tags.
type ComponentRegistry struct {
	tags  map[reflect.Type]ComponentType
	types []reflect.Type
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		tags: make(map[reflect.Type]ComponentType),
		// index 0 is reserved so that the zero ComponentType is never valid
		types: []reflect.Type{nil},
	}
}

// RegisterComponent returns the tag for T, assigning one if T has not been seen.
func RegisterComponent[T any](r *ComponentRegistry) ComponentType {
	return r.tagFor(reflect.TypeFor[T]())
}

// Lookup returns the tag for t without registering it.
func (r *ComponentRegistry) Lookup(t reflect.Type) (ComponentType, bool) {
	tag, ok := r.tags[normalizeComponentType(t)]
	return tag, ok
}

// Type returns the Go type behind a tag, or nil if the tag is unknown.
func (r *ComponentRegistry) Type(tag ComponentType) reflect.Type {
	if tag == 0 || int(tag) >= len(r.types) {
		return nil
	}
	return r.types[tag]
}

// Len returns the number of registered component types.
func (r *ComponentRegistry) Len() int {
	return len(r.types) - 1
}

func (r *ComponentRegistry) tagFor(t reflect.Type) ComponentType {
	t = normalizeComponentType(t)
	if tag, ok := r.tags[t]; ok {
		return tag
	}

	// Components can be structs or primitives (int, string, etc.)
	// but not maps, channels, functions or pointers to pointers
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		panic("components cannot be pointers, maps, channels, functions or interfaces: " + t.String())
	}

	tag := ComponentType(len(r.types))
	r.types = append(r.types, t)
	r.tags[t] = tag
	return tag
}

// normalizeComponentType maps *T to T so that a component added by pointer and one
// added by value share a tag.
func normalizeComponentType(t reflect.Type) reflect.Type {
	if t != nil && t.Kind() == reflect.Ptr {
		return t.Elem()
	}
	return t
}

// componentValue dereferences a pointer component so that the stored value does
// not alias the caller's variable.
func componentValue(component any) (reflect.Type, any) {
	if component == nil {
		panic("cannot add a nil component")
	}
	v := reflect.ValueOf(component)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			panic("cannot add a nil component pointer")
		}
		return v.Type().Elem(), v.Elem().Interface()
	}
	return v.Type(), component
}
