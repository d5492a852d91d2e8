package ecs

// SetParent establishes e as a child of parent. Self-parenting is rejected
// with InvalidParentError; so is any attempt that would create a cycle
// (ancestors of parent are walked first). If parent is not live, e's
// parent link is reset to None and false is returned with no error. On
// success, e is detached from any previous parent, installed under the
// new one, and its effective-enabled state is recomputed.
func (w *World) SetParent(e, parent Entity) (bool, error) {
	if e == parent {
		return false, InvalidParentError{Entity: e, Parent: parent}
	}
	slot, err := w.mustLive(e)
	if err != nil {
		return false, err
	}

	if !w.IsAlive(parent) {
		if slot.parent.id != None {
			w.detachFromParent(slot)
		}
		slot.parent = weakRef{}
		w.recomputeAncestorState(e)
		return false, nil
	}

	for anc := parent; anc != None; {
		if anc == e {
			return false, InvalidParentError{Entity: e, Parent: parent}
		}
		as := w.slotFor(anc)
		if as == nil {
			break
		}
		anc = as.parent.id
	}

	if slot.parent.id != None {
		w.detachFromParent(slot)
	}
	pslot := w.slotFor(parent)
	slot.parent = weakRef{id: parent, generation: pslot.generation}
	pslot.children = append(pslot.children, weakRef{id: e, generation: slot.generation})
	w.recomputeAncestorState(e)
	return true, nil
}

// detachFromParent removes slot's entity from its current parent's child
// list, without touching slot.parent itself.
func (w *World) detachFromParent(slot *entitySlot) {
	pslot := w.slotFor(slot.parent.id)
	if pslot == nil {
		return
	}
	for i, c := range pslot.children {
		if w.resolveWeak(c) == slot.entity {
			pslot.children = append(pslot.children[:i], pslot.children[i+1:]...)
			break
		}
	}
}

// Parent returns e's current parent, or None if e has none or its
// recorded parent has since been destroyed and recycled.
func (w *World) Parent(e Entity) Entity {
	s := w.slotFor(e)
	if s == nil {
		return None
	}
	return w.resolveWeak(s.parent)
}

// Children returns e's live children. Finite, restartable.
func (w *World) Children(e Entity) []Entity {
	s := w.slotFor(e)
	if s == nil {
		return nil
	}
	out := make([]Entity, 0, len(s.children))
	for _, c := range s.children {
		if child := w.resolveWeak(c); child != None {
			out = append(out, child)
		}
	}
	return out
}

// Disable sets e's own state to Disabled, independent of any ancestor's
// state, and recomputes the effective-enabled state of e and its
// descendants.
func (w *World) Disable(e Entity) error {
	slot, err := w.mustLive(e)
	if err != nil {
		return err
	}
	if slot.state == StateDestroyed {
		return nil
	}
	slot.state = StateDisabled
	w.propagateAncestorState(e)
	return nil
}

// Enable sets e's own state back to Enabled and recomputes effective
// state for e and its descendants.
func (w *World) Enable(e Entity) error {
	slot, err := w.mustLive(e)
	if err != nil {
		return err
	}
	if slot.state == StateDestroyed {
		return nil
	}
	slot.state = StateEnabled
	w.recomputeAncestorState(e)
	return nil
}

// EffectiveEnabled reports whether e is enabled both on its own and with
// respect to every ancestor: own==Enabled && no ancestor disabled.
func (w *World) EffectiveEnabled(e Entity) bool {
	s := w.slotFor(e)
	if s == nil || !s.live() {
		return false
	}
	return s.state == StateEnabled
}

// recomputeAncestorState recomputes whether e itself is
// DisabledDueToAncestor, based on its own toggle state and its current
// ancestor chain, then propagates the result to e's descendants.
func (w *World) recomputeAncestorState(e Entity) {
	s := w.slotFor(e)
	if s == nil || !s.live() {
		return
	}
	ownDisabled := s.state == StateDisabled
	ancestorDisabled := w.hasDisabledAncestor(e)

	switch {
	case ownDisabled:
		s.state = StateDisabled
	case ancestorDisabled:
		s.state = StateDisabledDueToAncestor
	default:
		s.state = StateEnabled
	}
	w.propagateAncestorState(e)
}

func (w *World) hasDisabledAncestor(e Entity) bool {
	parent := w.Parent(e)
	for parent != None {
		ps := w.slotFor(parent)
		if ps == nil {
			return false
		}
		if ps.state == StateDisabled {
			return true
		}
		parent = w.resolveWeak(ps.parent)
	}
	return false
}

// propagateAncestorState refreshes DisabledDueToAncestor for every
// descendant of e, depth first.
func (w *World) propagateAncestorState(e Entity) {
	for _, child := range w.Children(e) {
		cs := w.slotFor(child)
		if cs == nil || cs.state == StateDestroyed {
			continue
		}
		ancestorDisabled := w.hasDisabledAncestor(child)
		switch {
		case cs.state == StateDisabled:
			// own toggle wins; no state change needed here.
		case ancestorDisabled:
			cs.state = StateDisabledDueToAncestor
		default:
			cs.state = StateEnabled
		}
		w.propagateAncestorState(child)
	}
}
