// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "testing"

// TestClearPreservesRootSemantics covers spec.md §8 scenario 5: after
// Clear(roots), every surviving root still evaluates to the same function,
// and every cache entry that refers to an evicted identifier is gone (I5,
// I6).
func TestClearPreservesRootSemantics(t *testing.T) {
	m := New()
	x0 := m.Declare("x0", false)
	x1 := m.Declare("x1", false)
	a, b := m.VariableNode(x0), m.VariableNode(x1)

	garbage := m.And(a, m.Not(b))
	keep := m.Or(a, b)

	m.Clear([]Node{keep})

	if _, ok := m.records[garbage]; ok {
		// garbage may coincidentally still be reachable from keep; only
		// assert it is gone when it is not a descendant of keep.
		reachable := m.reachableFrom([]Node{keep})
		if !reachable[garbage] {
			t.Errorf("node %d should have been reclaimed", garbage)
		}
	}

	// keep's semantics must be unaffected: rebuilding Or(x0,x1) from scratch
	// must yield the very same identifier. a is not reachable from keep (keep
	// is make(x0, 1, b)), so Clear evicted it and the variable nodes are
	// rebuilt from the variables rather than reused.
	rebuilt := m.Or(m.VariableNode(x0), m.VariableNode(x1))
	if rebuilt != keep {
		t.Errorf("Or(a,b) after Clear = %d, want the surviving root %d", rebuilt, keep)
	}
}

// TestClearPrunesCaches checks that the ite cache retains no entry
// mentioning an identifier Clear just evicted.
func TestClearPrunesCaches(t *testing.T) {
	m := New()
	x0 := m.Declare("x0", false)
	x1 := m.Declare("x1", false)
	x2 := m.Declare("x2", false)
	a, b, c := m.VariableNode(x0), m.VariableNode(x1), m.VariableNode(x2)

	garbage := m.Ite(a, b, c)
	keep := m.And(a, b)

	m.Clear([]Node{keep})
	reachable := m.reachableFrom([]Node{keep})

	for k, v := range m.caches.ite {
		if !alive(k.a, reachable) || !alive(k.b, reachable) || !alive(k.c, reachable) || !alive(v, reachable) {
			t.Errorf("ite cache retained a stale entry %+v -> %d", k, v)
		}
	}
	_ = garbage
}

// TestClearRejectsUnknownRoot covers spec.md §7: Clear on an identifier the
// store does not recognize is an engine invariant violation, not a
// recoverable error.
func TestClearRejectsUnknownRoot(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected Clear on an unknown node to panic")
		} else if _, ok := r.(*InvariantError); !ok {
			t.Fatalf("expected a panic of type *InvariantError, got %T: %v", r, r)
		}
	}()
	m := New()
	m.Clear([]Node{Node(999)})
}

// TestAllocateIDPanicsAtMaxNodeTableSize covers spec.md §7's out-of-memory
// path: exceeding a configured ceiling panics with *OutOfMemoryPanic, a
// distinct, recoverable-by-convention type from *InvariantError.
func TestAllocateIDPanicsAtMaxNodeTableSize(t *testing.T) {
	m := New(MaxNodeTableSize(4))
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected allocation beyond MaxNodeTableSize to panic")
		}
		if _, ok := r.(*OutOfMemoryPanic); !ok {
			t.Fatalf("expected a panic of type *OutOfMemoryPanic, got %T: %v", r, r)
		}
	}()
	for i := 0; i < 8; i++ {
		v := m.Declare(string(rune('a'+i)), false)
		m.VariableNode(v)
	}
}
