package ecs

// Filter describes a query's required/excluded archetype shape. Required
// components and required tags both name bits in the same archetype
// BitMask (a tag is a zero-size component for archetype-identity
// purposes); required arrays are checked per-entity, since arrays live on
// the slot, not the chunk.
type Filter struct {
	requiredArchetype BitMask
	excludedArchetype BitMask
	requiredArrays    []int
}

// NewFilter returns an empty Filter that matches every chunk.
func NewFilter() *Filter { return &Filter{} }

// RequireComponent adds T to the required archetype mask.
func RequireComponent[T any](f *Filter, s *Schema) *Filter {
	f.requiredArchetype.Set(componentIndex[T](s))
	return f
}

// RequireTag adds tag T to the required archetype mask.
func RequireTag[T any](f *Filter, s *Schema) *Filter {
	f.requiredArchetype.Set(tagIndex[T](s))
	return f
}

// ExcludeComponent adds T to the excluded archetype mask.
func ExcludeComponent[T any](f *Filter, s *Schema) *Filter {
	f.excludedArchetype.Set(componentIndex[T](s))
	return f
}

// ExcludeTag adds tag T to the excluded archetype mask.
func ExcludeTag[T any](f *Filter, s *Schema) *Filter {
	f.excludedArchetype.Set(tagIndex[T](s))
	return f
}

// RequireArray requires e to additionally carry a per-entity array of
// type T. Checked per-row, not per-chunk.
func RequireArray[T any](f *Filter, s *Schema) *Filter {
	f.requiredArrays = append(f.requiredArrays, arrayIndex[T](s))
	return f
}

// matchesChunk reports whether a Chunk's archetype mask satisfies the
// filter's component/tag requirements.
func (f *Filter) matchesChunk(c *Chunk) bool {
	return c.mask.ContainsAll(f.requiredArchetype) && c.mask.ContainsNone(f.excludedArchetype)
}

// matchesRow reports whether the entity at row additionally satisfies the
// filter's per-entity array requirements.
func (f *Filter) matchesRow(w *World, e Entity) bool {
	if len(f.requiredArrays) == 0 {
		return true
	}
	s := w.slotFor(e)
	if s == nil {
		return false
	}
	for _, idx := range f.requiredArrays {
		if _, ok := s.arrays[idx]; !ok {
			return false
		}
	}
	return true
}

// Query returns a Cursor over every Chunk matching filter, in the World's
// archetype-map enumeration order.
func (w *World) Query(filter *Filter) *Cursor {
	return newCursor(w, filter)
}

// Each walks every live entity matching filter, invoking fn with the
// entity id. Structural mutation from within fn is undefined behaviour
// and is detected and reported via panic(ConcurrentModificationError{})
// in checked builds.
func (w *World) Each(filter *Filter, fn func(Entity)) {
	c := w.Query(filter)
	for c.Next() {
		fn(c.Entity())
	}
}
