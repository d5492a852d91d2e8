package ecs

import "unsafe"

// componentPtr reinterprets a component's byte span as *T. Grounded on
// lazyecs's api.go unsafe-pointer cast pattern for column access.
func componentPtr[T any](bytes []byte) *T {
	return (*T)(unsafe.Pointer(unsafe.SliceData(bytes)))
}

// AddComponent attaches a zero-initialised T to e, moving it to the
// archetype Chunk for its new mask, and returns a pointer addressing the
// freshly inserted component directly in the column. Returns
// ComponentAlreadyPresentError if e already carries T.
func AddComponent[T any](w *World, e Entity) (*T, error) {
	slot, err := w.mustLive(e)
	if err != nil {
		return nil, err
	}
	idx := componentIndex[T](w.schema)
	if slot.chunk.mask.Contains(idx) {
		if Config.Checked {
			return nil, ComponentAlreadyPresentError{Entity: e}
		}
		bytes, _ := slot.chunk.componentBytes(slot.row, idx)
		return componentPtr[T](bytes), nil
	}

	dest := w.getOrCreateChunk(slot.chunk.mask.with(idx))
	newRow, moved, didMove := slot.chunk.moveTo(slot.row, dest)
	if didMove {
		w.slots[moved-1].row = slot.row
	}
	slot.chunk, slot.row = dest, newRow

	bytes, _ := dest.componentBytes(newRow, idx)
	return componentPtr[T](bytes), nil
}

// AddComponentValue attaches T to e, initialised to value.
func AddComponentValue[T any](w *World, e Entity, value T) error {
	ptr, err := AddComponent[T](w, e)
	if err != nil {
		return err
	}
	*ptr = value
	return nil
}

// RemoveComponent detaches T from e, moving it to the archetype Chunk for
// its new (smaller) mask; T's bytes are discarded. Publishes
// ComponentRemoved. Returns ComponentMissingError if e does not carry T.
func RemoveComponent[T any](w *World, e Entity) error {
	slot, err := w.mustLive(e)
	if err != nil {
		return err
	}
	idx := componentIndex[T](w.schema)
	if !slot.chunk.mask.Contains(idx) {
		if Config.Checked {
			return ComponentMissingError{Entity: e}
		}
		return nil
	}

	dest := w.getOrCreateChunk(slot.chunk.mask.without(idx))
	newRow, moved, didMove := slot.chunk.moveTo(slot.row, dest)
	if didMove {
		w.slots[moved-1].row = slot.row
	}
	slot.chunk, slot.row = dest, newRow

	Publish(w.bus, ComponentRemoved{Entity: e, ComponentIndex: idx})
	return nil
}

// GetComponent returns a pointer to e's T component. Returns
// ComponentMissingError if e does not carry T.
func GetComponent[T any](w *World, e Entity) (*T, error) {
	slot, err := w.mustLive(e)
	if err != nil {
		return nil, err
	}
	idx := componentIndex[T](w.schema)
	bytes, cerr := slot.chunk.componentBytes(slot.row, idx)
	if cerr != nil {
		return nil, ComponentMissingError{Entity: e}
	}
	return componentPtr[T](bytes), nil
}

// HasComponent reports whether e currently carries T.
func HasComponent[T any](w *World, e Entity) bool {
	slot := w.slotFor(e)
	if slot == nil || !slot.live() {
		return false
	}
	return slot.chunk.mask.Contains(componentIndex[T](w.schema))
}
