package ecs

// AddReference records target as a weak, owner-held reference and returns
// its 1-based local index, stable for the lifetime of owner.
func (w *World) AddReference(owner, target Entity) (int, error) {
	slot, err := w.mustLive(owner)
	if err != nil {
		return 0, err
	}
	var ref weakRef
	if ts := w.slotFor(target); ts != nil && ts.live() {
		ref = weakRef{id: target, generation: ts.generation}
	}
	slot.refs = append(slot.refs, ref)
	return len(slot.refs), nil
}

// Reference resolves owner's reference at localIndex (1-based), returning
// None if the index is out of range or the referenced entity has since
// been destroyed.
func (w *World) Reference(owner Entity, localIndex int) Entity {
	s := w.slotFor(owner)
	if s == nil || localIndex < 1 || localIndex > len(s.refs) {
		return None
	}
	return w.resolveWeak(s.refs[localIndex-1])
}

// References resolves every reference owner holds, in insertion order,
// yielding None for since-destroyed targets.
func (w *World) References(owner Entity) []Entity {
	s := w.slotFor(owner)
	if s == nil {
		return nil
	}
	out := make([]Entity, len(s.refs))
	for i, r := range s.refs {
		out[i] = w.resolveWeak(r)
	}
	return out
}
