package ecs

import "reflect"

// kind distinguishes the registries a Schema maintains. Components and
// tags share one index space (kindComponent): both name bits in the same
// archetype BitMask, a tag being, for archetype-identity purposes, simply
// a zero-size component attached via that mask. Arrays never participate
// in archetype identity (arrays are attached to the entity slot, not the
// chunk), so they get a fully independent 256-slot index space.
type kind int

const (
	kindComponent kind = iota
	kindArray
)

// Schema assigns every registered component/tag and array-element type a
// small dense index within its kind, plus the element byte size (0 for
// tags). A Schema is populated once by an external schema loader before
// any World creates entities; registration after that point is permitted
// and only grows the Schema, never invalidating an existing archetype
// mask. A Schema is read-only after population and may be shared across
// Worlds on the same thread.
type Schema struct {
	indices [2]map[reflect.Type]int
	sizes   [2][]uintptr
}

// NewSchema returns an empty Schema ready for registration.
func NewSchema() *Schema {
	s := &Schema{}
	for k := range s.indices {
		s.indices[k] = make(map[reflect.Type]int)
	}
	return s
}

func (s *Schema) register(k kind, t reflect.Type, size uintptr) (int, error) {
	if idx, ok := s.indices[k][t]; ok {
		return idx, nil
	}
	if len(s.indices[k]) >= MaxBits {
		return -1, SchemaFullError{Kind: k}
	}
	idx := len(s.indices[k])
	s.indices[k][t] = idx
	s.sizes[k] = append(s.sizes[k], size)
	return idx, nil
}

// RegisterComponent assigns (or returns the existing) dense archetype
// index for component type T on this schema. Idempotent.
func RegisterComponent[T any](s *Schema) (int, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return s.register(kindComponent, t, t.Size())
}

// RegisterArray assigns (or returns the existing) dense index for
// array-element type T on this schema. Idempotent.
func RegisterArray[T any](s *Schema) (int, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return s.register(kindArray, t, t.Size())
}

// RegisterTag assigns (or returns the existing) dense archetype index for
// tag type T on this schema. Tags have size 0 and share the component
// index space. Idempotent.
func RegisterTag[T any](s *Schema) (int, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return s.register(kindComponent, t, 0)
}

// componentIndex registers (if needed) and returns T's archetype index.
func componentIndex[T any](s *Schema) int {
	idx, err := RegisterComponent[T](s)
	if err != nil {
		panic(barkTrace(err))
	}
	return idx
}

func arrayIndex[T any](s *Schema) int {
	idx, err := RegisterArray[T](s)
	if err != nil {
		panic(barkTrace(err))
	}
	return idx
}

func tagIndex[T any](s *Schema) int {
	idx, err := RegisterTag[T](s)
	if err != nil {
		panic(barkTrace(err))
	}
	return idx
}

// SizeOfComponent returns the registered byte size for an archetype
// (component or tag) index. Tags always report 0.
func (s *Schema) SizeOfComponent(idx int) uintptr {
	return s.sizes[kindComponent][idx]
}

// SizeOfArrayElement returns the registered element byte size for an
// array-type index.
func (s *Schema) SizeOfArrayElement(idx int) uintptr {
	return s.sizes[kindArray][idx]
}

// MaskOfComponents builds a BitMask naming the given component/tag types,
// registering any that are not yet known on this schema as plain
// (non-tag) components.
func MaskOfComponents(s *Schema, types ...reflect.Type) BitMask {
	var m BitMask
	for _, t := range types {
		idx, _ := s.register(kindComponent, t, t.Size())
		m.Set(idx)
	}
	return m
}
