package ecs

import "unsafe"

// arraySlice reinterprets an array blob's bytes as a []T of its recorded
// length.
func arraySlice[T any](b arrayBlob) []T {
	if b.length == 0 {
		return nil
	}
	ptr := (*T)(unsafe.Pointer(unsafe.SliceData(b.data)))
	return unsafe.Slice(ptr, b.length)
}

// CreateArray allocates a per-entity array of length elements of type T,
// owned exclusively by e's slot. Returns ArrayAlreadyPresentError if e
// already has an array of that type.
func CreateArray[T any](w *World, e Entity, length int) ([]T, error) {
	slot, err := w.mustLive(e)
	if err != nil {
		return nil, err
	}
	idx := arrayIndex[T](w.schema)
	if slot.arrays == nil {
		slot.arrays = make(map[int]arrayBlob)
	}
	if _, ok := slot.arrays[idx]; ok {
		if Config.Checked {
			return nil, ArrayAlreadyPresentError{Entity: e}
		}
		return arraySlice[T](slot.arrays[idx]), nil
	}
	size := w.schema.SizeOfArrayElement(idx)
	blob := arrayBlob{data: make([]byte, int(size)*length), elemSize: size, length: length}
	slot.arrays[idx] = blob
	return arraySlice[T](blob), nil
}

// ResizeArray grows or shrinks e's T array to newLength, preserving
// overlapping bytes; newly added elements are zero-initialised.
func ResizeArray[T any](w *World, e Entity, newLength int) ([]T, error) {
	slot, err := w.mustLive(e)
	if err != nil {
		return nil, err
	}
	idx := arrayIndex[T](w.schema)
	blob, ok := slot.arrays[idx]
	if !ok {
		return nil, ArrayMissingError{Entity: e}
	}
	size := int(blob.elemSize)
	data := make([]byte, size*newLength)
	copy(data, blob.data[:min(len(blob.data), len(data))])
	blob.data = data
	blob.length = newLength
	slot.arrays[idx] = blob
	return arraySlice[T](blob), nil
}

// GetArray returns e's array of type T; the slice's length is the array's
// current length. Returns ArrayMissingError if e has no such array.
func GetArray[T any](w *World, e Entity) ([]T, error) {
	slot, err := w.mustLive(e)
	if err != nil {
		return nil, err
	}
	idx := arrayIndex[T](w.schema)
	blob, ok := slot.arrays[idx]
	if !ok {
		return nil, ArrayMissingError{Entity: e}
	}
	return arraySlice[T](blob), nil
}

// DestroyArray releases e's array of type T, if any.
func DestroyArray[T any](w *World, e Entity) error {
	slot, err := w.mustLive(e)
	if err != nil {
		return err
	}
	idx := arrayIndex[T](w.schema)
	delete(slot.arrays, idx)
	return nil
}

// ContainsArray reports whether e currently has an array of type T.
func ContainsArray[T any](w *World, e Entity) bool {
	slot := w.slotFor(e)
	if slot == nil || !slot.live() || slot.arrays == nil {
		return false
	}
	_, ok := slot.arrays[arrayIndex[T](w.schema)]
	return ok
}
