package ecs

// World is the top-level archetype store: entity slots, the free list, the
// archetype-mask-to-Chunk map, and the query entry points.
type World struct {
	schema *Schema
	bus    *EventBus

	slots []entitySlot
	free  []Entity

	chunks      map[BitMask]*Chunk
	chunksList  []*Chunk
	nextChunkID uint64
}

// NewWorld allocates a World backed by schema.
func NewWorld(schema *Schema) *World {
	return &World{
		schema: schema,
		bus:    NewEventBus(),
		chunks: make(map[BitMask]*Chunk),
	}
}

// Schema returns the World's Schema reference.
func (w *World) Schema() *Schema { return w.schema }

// Bus returns the World's embedded event bus, for Subscribe/Enqueue/Poll.
func (w *World) Bus() *EventBus { return w.bus }

// Poll drains and dispatches the buffered event queue.
func (w *World) Poll() { w.bus.Poll() }

func (w *World) slotFor(e Entity) *entitySlot {
	if e == None || int(e) > len(w.slots) {
		return nil
	}
	return &w.slots[e-1]
}

// IsAlive reports whether e currently names a live (Enabled/Disabled/
// DisabledDueToAncestor) entity.
func (w *World) IsAlive(e Entity) bool {
	s := w.slotFor(e)
	return s != nil && s.live() && s.entity == e
}

func (w *World) mustLive(e Entity) (*entitySlot, error) {
	s := w.slotFor(e)
	if s == nil || !s.live() || s.entity != e {
		if Config.Checked {
			return nil, UnknownEntityError{Entity: e}
		}
	}
	return s, nil
}

func (w *World) getOrCreateChunk(mask BitMask) *Chunk {
	if c, ok := w.chunks[mask]; ok {
		return c
	}
	w.nextChunkID++
	c := newChunk(w.schema, mask, w.nextChunkID)
	w.chunks[mask] = c
	w.chunksList = append(w.chunksList, c)
	return c
}

// Chunks returns every archetype Chunk currently backing this World, in
// archetype-map enumeration order.
func (w *World) Chunks() []*Chunk { return w.chunksList }

// NextEntity previews the id the next Create call will allocate, without
// allocating it.
func (w *World) NextEntity() Entity {
	if n := len(w.free); n > 0 {
		return w.free[n-1]
	}
	return Entity(len(w.slots) + 1)
}

// Create allocates a new entity with the given component-type mask and
// returns its id. The Chunk for mask is created lazily if needed; the new
// row's components are zero-initialised.
func (w *World) Create(mask BitMask) Entity {
	chunk := w.getOrCreateChunk(mask)

	var id Entity
	var gen uint32
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
		gen = w.slots[id-1].generation + 1
	} else {
		id = Entity(len(w.slots) + 1)
		w.slots = append(w.slots, entitySlot{})
		gen = 1
	}

	slot := &w.slots[id-1]
	slot.reset(id, gen)
	slot.chunk = chunk
	slot.row = chunk.add(id)

	Publish(w.bus, EntityCreated{Entity: id})
	return id
}

// InitEntity deterministically installs id as the next entity to be
// created, filling any "island" ids between the current slot count and id
// with placeholder destroyed slots on the free list. Used for replay
// scenarios where a caller needs a specific id to come back out of Create
// next.
func (w *World) InitEntity(id Entity) error {
	if id == None {
		return UnknownEntityError{Entity: id}
	}
	if int(id) <= len(w.slots) && w.slots[id-1].live() {
		return ComponentAlreadyPresentError{Entity: id}
	}
	for Entity(len(w.slots)+1) <= id {
		placeholder := Entity(len(w.slots) + 1)
		w.slots = append(w.slots, entitySlot{entity: placeholder, state: StateDestroyed})
		w.free = append(w.free, placeholder)
	}
	// move id to the end of the free list, where Create pops from, so the
	// next Create returns it
	for i, f := range w.free {
		if f == id {
			w.free = append(w.free[:i], w.free[i+1:]...)
			w.free = append(w.free, id)
			break
		}
	}
	return nil
}

// Destroy removes entity from its chunk and recycles its id. If
// destroyChildren is true, every descendant is destroyed first (depth
// first); otherwise each child's parent link is reset to None.
func (w *World) Destroy(e Entity, destroyChildren bool) error {
	slot, err := w.mustLive(e)
	if err != nil {
		return err
	}
	if slot == nil {
		return nil
	}

	children := append([]weakRef(nil), slot.children...)
	for _, c := range children {
		child := w.resolveWeak(c)
		if child == None {
			continue
		}
		if destroyChildren {
			if err := w.Destroy(child, true); err != nil {
				return err
			}
		} else if cs := w.slotFor(child); cs != nil && cs.live() && cs.parent.id == e {
			cs.parent = weakRef{}
			w.recomputeAncestorState(child)
		}
	}

	if slot.parent.id != None {
		w.detachFromParent(slot)
	}

	if moved, ok := slot.chunk.removeAt(slot.row); ok {
		w.slots[moved-1].row = slot.row
	}

	parent := slot.parent.id
	slot.clearOnDestroy()
	w.free = append(w.free, e)

	Publish(w.bus, EntityDestroyed{Entity: e, Parent: parent})
	return nil
}

// resolveWeak returns the entity a weak reference still names, or None if
// the slot has since been destroyed and possibly recycled under a new
// generation.
func (w *World) resolveWeak(ref weakRef) Entity {
	s := w.slotFor(ref.id)
	if s == nil || !s.live() || s.generation != ref.generation {
		return None
	}
	return ref.id
}
