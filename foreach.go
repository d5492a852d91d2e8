package ecs

// ForEach1 walks every entity carrying T1, calling fn with a pointer
// addressing T1 directly in its column. References are valid only for the
// duration of each call.
func ForEach1[T1 any](w *World, fn func(Entity, *T1)) {
	idx1 := componentIndex[T1](w.schema)
	for _, chunk := range w.chunksList {
		if !chunk.mask.Contains(idx1) {
			continue
		}
		version := chunk.structVersion
		for row := 0; row < chunk.Len(); row++ {
			if Config.Checked && chunk.structVersion != version {
				panic(ConcurrentModificationError{})
			}
			b1, _ := chunk.componentBytes(row, idx1)
			fn(chunk.entities[row], componentPtr[T1](b1))
		}
	}
}

// ForEach2 walks every entity carrying both T1 and T2.
func ForEach2[T1, T2 any](w *World, fn func(Entity, *T1, *T2)) {
	idx1, idx2 := componentIndex[T1](w.schema), componentIndex[T2](w.schema)
	for _, chunk := range w.chunksList {
		if !chunk.mask.Contains(idx1) || !chunk.mask.Contains(idx2) {
			continue
		}
		version := chunk.structVersion
		for row := 0; row < chunk.Len(); row++ {
			if Config.Checked && chunk.structVersion != version {
				panic(ConcurrentModificationError{})
			}
			b1, _ := chunk.componentBytes(row, idx1)
			b2, _ := chunk.componentBytes(row, idx2)
			fn(chunk.entities[row], componentPtr[T1](b1), componentPtr[T2](b2))
		}
	}
}

// ForEach3 walks every entity carrying T1, T2, and T3.
func ForEach3[T1, T2, T3 any](w *World, fn func(Entity, *T1, *T2, *T3)) {
	idx1, idx2, idx3 := componentIndex[T1](w.schema), componentIndex[T2](w.schema), componentIndex[T3](w.schema)
	for _, chunk := range w.chunksList {
		if !chunk.mask.Contains(idx1) || !chunk.mask.Contains(idx2) || !chunk.mask.Contains(idx3) {
			continue
		}
		version := chunk.structVersion
		for row := 0; row < chunk.Len(); row++ {
			if Config.Checked && chunk.structVersion != version {
				panic(ConcurrentModificationError{})
			}
			b1, _ := chunk.componentBytes(row, idx1)
			b2, _ := chunk.componentBytes(row, idx2)
			b3, _ := chunk.componentBytes(row, idx3)
			fn(chunk.entities[row], componentPtr[T1](b1), componentPtr[T2](b2), componentPtr[T3](b3))
		}
	}
}

// ForEach4 walks every entity carrying T1, T2, T3, and T4. Queries needing
// more than four required component types should compose a Filter and
// drive it through World.Each/World.Query with GetComponent[T] calls per
// row instead.
func ForEach4[T1, T2, T3, T4 any](w *World, fn func(Entity, *T1, *T2, *T3, *T4)) {
	idx1 := componentIndex[T1](w.schema)
	idx2 := componentIndex[T2](w.schema)
	idx3 := componentIndex[T3](w.schema)
	idx4 := componentIndex[T4](w.schema)
	for _, chunk := range w.chunksList {
		if !chunk.mask.Contains(idx1) || !chunk.mask.Contains(idx2) ||
			!chunk.mask.Contains(idx3) || !chunk.mask.Contains(idx4) {
			continue
		}
		version := chunk.structVersion
		for row := 0; row < chunk.Len(); row++ {
			if Config.Checked && chunk.structVersion != version {
				panic(ConcurrentModificationError{})
			}
			b1, _ := chunk.componentBytes(row, idx1)
			b2, _ := chunk.componentBytes(row, idx2)
			b3, _ := chunk.componentBytes(row, idx3)
			b4, _ := chunk.componentBytes(row, idx4)
			fn(chunk.entities[row],
				componentPtr[T1](b1), componentPtr[T2](b2),
				componentPtr[T3](b3), componentPtr[T4](b4))
		}
	}
}
