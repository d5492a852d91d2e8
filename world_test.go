package ecs

import "testing"

type worldTestPosition struct{ X, Y float64 }
type worldTestVelocity struct{ X, Y float64 }
type worldTestFrozen struct{}

func worldTestSetup(t *testing.T) (*World, int, int, int) {
	t.Helper()
	s := NewSchema()
	posIdx, _ := RegisterComponent[worldTestPosition](s)
	velIdx, _ := RegisterComponent[worldTestVelocity](s)
	frozenIdx, _ := RegisterTag[worldTestFrozen](s)
	return NewWorld(s), posIdx, velIdx, frozenIdx
}

func TestCreateAndQuery(t *testing.T) {
	w, posIdx, _, _ := worldTestSetup(t)
	var mask BitMask
	mask.Set(posIdx)

	e := w.Create(mask)
	if !w.IsAlive(e) {
		t.Fatal("IsAlive() = false right after Create()")
	}
	if !HasComponent[worldTestPosition](w, e) {
		t.Error("HasComponent() = false for a component named in the creation mask")
	}

	f := RequireComponent[worldTestPosition](NewFilter(), w.Schema())
	count := 0
	w.Each(f, func(got Entity) {
		if got != e {
			t.Errorf("Each() visited %v, want %v", got, e)
		}
		count++
	})
	if count != 1 {
		t.Errorf("Each() visited %d entities, want 1", count)
	}
}

func TestArchetypeTransitionOnAddRemoveComponent(t *testing.T) {
	w, posIdx, velIdx, _ := worldTestSetup(t)
	var mask BitMask
	mask.Set(posIdx)
	e := w.Create(mask)

	startChunk := w.slotFor(e).chunk
	if err := AddComponentValue(w, e, worldTestVelocity{X: 1, Y: 2}); err != nil {
		t.Fatalf("AddComponentValue() error = %v", err)
	}
	if w.slotFor(e).chunk == startChunk {
		t.Error("entity's chunk did not change after AddComponent")
	}
	if !HasComponent[worldTestVelocity](w, e) {
		t.Error("HasComponent(velocity) = false after AddComponent")
	}
	if !HasComponent[worldTestPosition](w, e) {
		t.Error("HasComponent(position) = false after adding an unrelated component")
	}

	if err := RemoveComponent[worldTestVelocity](w, e); err != nil {
		t.Fatalf("RemoveComponent() error = %v", err)
	}
	if HasComponent[worldTestVelocity](w, e) {
		t.Error("HasComponent(velocity) = true after RemoveComponent")
	}
	if !HasComponent[worldTestPosition](w, e) {
		t.Error("HasComponent(position) = false after removing an unrelated component")
	}
	_ = velIdx
}

func TestAddComponentAlreadyPresent(t *testing.T) {
	w, posIdx, _, _ := worldTestSetup(t)
	var mask BitMask
	mask.Set(posIdx)
	e := w.Create(mask)

	if _, err := AddComponent[worldTestPosition](w, e); err == nil {
		t.Fatal("AddComponent() on an already-present type returned nil error")
	} else if _, ok := err.(ComponentAlreadyPresentError); !ok {
		t.Errorf("AddComponent() error = %T, want ComponentAlreadyPresentError", err)
	}
}

func TestDestroyAndRecycleBumpsGeneration(t *testing.T) {
	w, posIdx, _, _ := worldTestSetup(t)
	var mask BitMask
	mask.Set(posIdx)

	e1 := w.Create(mask)
	gen1 := w.slotFor(e1).generation

	if err := w.Destroy(e1, false); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if w.IsAlive(e1) {
		t.Error("IsAlive() = true after Destroy()")
	}

	e2 := w.Create(mask)
	if e2 != e1 {
		t.Fatalf("Create() after Destroy() returned %v, want recycled id %v", e2, e1)
	}
	gen2 := w.slotFor(e2).generation
	if gen2 <= gen1 {
		t.Errorf("generation after recycle = %d, want > %d", gen2, gen1)
	}
}

func TestDestroyUnknownEntity(t *testing.T) {
	Config.SetChecked(true)
	defer Config.SetChecked(true)

	w, _, _, _ := worldTestSetup(t)
	err := w.Destroy(Entity(42), false)
	if err == nil {
		t.Fatal("Destroy() on an unknown entity returned nil error")
	}
	if _, ok := err.(UnknownEntityError); !ok {
		t.Errorf("Destroy() error = %T, want UnknownEntityError", err)
	}
}

func TestDestroyChildrenPropagation(t *testing.T) {
	w, posIdx, _, _ := worldTestSetup(t)
	var mask BitMask
	mask.Set(posIdx)

	parent := w.Create(mask)
	child := w.Create(mask)
	grandchild := w.Create(mask)

	if _, err := w.SetParent(child, parent); err != nil {
		t.Fatalf("SetParent(child, parent) error = %v", err)
	}
	if _, err := w.SetParent(grandchild, child); err != nil {
		t.Fatalf("SetParent(grandchild, child) error = %v", err)
	}

	if err := w.Destroy(parent, true); err != nil {
		t.Fatalf("Destroy(parent, true) error = %v", err)
	}
	if w.IsAlive(child) || w.IsAlive(grandchild) {
		t.Error("descendants survived Destroy(parent, destroyChildren=true)")
	}
}

func TestDestroyWithoutChildrenDetachesThem(t *testing.T) {
	w, posIdx, _, _ := worldTestSetup(t)
	var mask BitMask
	mask.Set(posIdx)

	parent := w.Create(mask)
	child := w.Create(mask)
	if _, err := w.SetParent(child, parent); err != nil {
		t.Fatalf("SetParent() error = %v", err)
	}

	if err := w.Destroy(parent, false); err != nil {
		t.Fatalf("Destroy(parent, false) error = %v", err)
	}
	if !w.IsAlive(child) {
		t.Fatal("child was destroyed despite destroyChildren=false")
	}
	if got := w.Parent(child); got != None {
		t.Errorf("Parent(child) = %v after parent destroyed, want None", got)
	}
}

func TestSetParentRejectsSelfAndCycles(t *testing.T) {
	w, posIdx, _, _ := worldTestSetup(t)
	var mask BitMask
	mask.Set(posIdx)

	a := w.Create(mask)
	b := w.Create(mask)

	if _, err := w.SetParent(a, a); err == nil {
		t.Error("SetParent(a, a) returned nil error, want InvalidParentError")
	}

	if _, err := w.SetParent(b, a); err != nil {
		t.Fatalf("SetParent(b, a) error = %v", err)
	}
	if _, err := w.SetParent(a, b); err == nil {
		t.Error("SetParent(a, b) creating a cycle returned nil error, want InvalidParentError")
	}
}

func TestDisableEnablePropagatesToDescendants(t *testing.T) {
	w, posIdx, _, _ := worldTestSetup(t)
	var mask BitMask
	mask.Set(posIdx)

	parent := w.Create(mask)
	child := w.Create(mask)
	if _, err := w.SetParent(child, parent); err != nil {
		t.Fatalf("SetParent() error = %v", err)
	}

	if err := w.Disable(parent); err != nil {
		t.Fatalf("Disable() error = %v", err)
	}
	if w.EffectiveEnabled(parent) {
		t.Error("EffectiveEnabled(parent) = true after Disable()")
	}
	if w.EffectiveEnabled(child) {
		t.Error("EffectiveEnabled(child) = true while ancestor is disabled")
	}

	if err := w.Enable(parent); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	if !w.EffectiveEnabled(child) {
		t.Error("EffectiveEnabled(child) = false after ancestor re-enabled")
	}
}

func TestArrayLifecycleAndResizePreservesPrefix(t *testing.T) {
	w, posIdx, _, _ := worldTestSetup(t)
	var mask BitMask
	mask.Set(posIdx)
	e := w.Create(mask)

	arr, err := CreateArray[int](w, e, 3)
	if err != nil {
		t.Fatalf("CreateArray() error = %v", err)
	}
	arr[0], arr[1], arr[2] = 10, 20, 30

	grown, err := ResizeArray[int](w, e, 5)
	if err != nil {
		t.Fatalf("ResizeArray(grow) error = %v", err)
	}
	if grown[0] != 10 || grown[1] != 20 || grown[2] != 30 {
		t.Errorf("ResizeArray(grow) prefix = %v, want [10 20 30 ...]", grown[:3])
	}
	if grown[3] != 0 || grown[4] != 0 {
		t.Error("ResizeArray(grow) did not zero-initialise new elements")
	}

	shrunk, err := ResizeArray[int](w, e, 2)
	if err != nil {
		t.Fatalf("ResizeArray(shrink) error = %v", err)
	}
	if len(shrunk) != 2 || shrunk[0] != 10 || shrunk[1] != 20 {
		t.Errorf("ResizeArray(shrink) = %v, want [10 20]", shrunk)
	}

	if err := DestroyArray[int](w, e); err != nil {
		t.Fatalf("DestroyArray() error = %v", err)
	}
	if ContainsArray[int](w, e) {
		t.Error("ContainsArray() = true after DestroyArray()")
	}
	if _, err := GetArray[int](w, e); err == nil {
		t.Error("GetArray() after DestroyArray() returned nil error")
	}
}

func TestCreateArrayAlreadyPresent(t *testing.T) {
	w, posIdx, _, _ := worldTestSetup(t)
	var mask BitMask
	mask.Set(posIdx)
	e := w.Create(mask)

	if _, err := CreateArray[int](w, e, 1); err != nil {
		t.Fatalf("first CreateArray() error = %v", err)
	}
	if _, err := CreateArray[int](w, e, 1); err == nil {
		t.Fatal("second CreateArray() returned nil error, want ArrayAlreadyPresentError")
	} else if _, ok := err.(ArrayAlreadyPresentError); !ok {
		t.Errorf("second CreateArray() error = %T, want ArrayAlreadyPresentError", err)
	}
}

func TestReferencesResolveAndGoStaleOnDestroy(t *testing.T) {
	w, posIdx, _, _ := worldTestSetup(t)
	var mask BitMask
	mask.Set(posIdx)

	owner := w.Create(mask)
	target := w.Create(mask)

	idx, err := w.AddReference(owner, target)
	if err != nil {
		t.Fatalf("AddReference() error = %v", err)
	}
	if got := w.Reference(owner, idx); got != target {
		t.Errorf("Reference() = %v, want %v", got, target)
	}

	if err := w.Destroy(target, false); err != nil {
		t.Fatalf("Destroy(target) error = %v", err)
	}
	if got := w.Reference(owner, idx); got != None {
		t.Errorf("Reference() after target destroyed = %v, want None", got)
	}
}

func TestEventBusPublishAndEnqueuePoll(t *testing.T) {
	w, posIdx, _, _ := worldTestSetup(t)
	var mask BitMask
	mask.Set(posIdx)

	var created []Entity
	Subscribe(w.Bus(), func(ev EntityCreated) {
		created = append(created, ev.Entity)
	})

	e := w.Create(mask)
	if len(created) != 1 || created[0] != e {
		t.Errorf("synchronous EntityCreated subscriber saw %v, want [%v]", created, e)
	}

	var polled []int
	Subscribe(w.Bus(), func(n int) { polled = append(polled, n) })
	Enqueue(w.Bus(), 1)
	Enqueue(w.Bus(), 2)
	if len(polled) != 0 {
		t.Fatal("Enqueue() dispatched before Poll()")
	}
	w.Poll()
	if len(polled) != 2 || polled[0] != 1 || polled[1] != 2 {
		t.Errorf("Poll() delivered %v, want [1 2] in FIFO order", polled)
	}
}

func TestInitEntityFillsIslandsAndReturnsRequestedID(t *testing.T) {
	w, posIdx, _, _ := worldTestSetup(t)
	var mask BitMask
	mask.Set(posIdx)

	if err := w.InitEntity(Entity(5)); err != nil {
		t.Fatalf("InitEntity() error = %v", err)
	}
	for id := Entity(1); id < 5; id++ {
		if w.IsAlive(id) {
			t.Errorf("island id %v reported alive before being created", id)
		}
	}
	got := w.Create(mask)
	if got != Entity(5) {
		t.Errorf("Create() after InitEntity(5) = %v, want 5", got)
	}
}
