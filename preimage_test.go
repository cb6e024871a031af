// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"errors"
	"testing"
)

// buildCounter declares the interleaved (x0, x0', x1, x1') registry and
// builds the delta transition relation for the two-bit counter that cycles
// 00 -> 01 -> 10 -> 11 -> 01, matching spec.md §8 scenario 4 and the
// original transition_system.py example.
func buildCounter(m *Manager) (delta, s00, s01, s10, s11 Node) {
	x0 := m.Declare("x0", false)
	x0p := m.Declare("x0", true)
	x1 := m.Declare("x1", false)
	x1p := m.Declare("x1", true)

	nx0, nx0p := m.VariableNode(x0), m.VariableNode(x0p)
	nx1, nx1p := m.VariableNode(x1), m.VariableNode(x1p)

	s00 = m.And(m.Not(nx0), m.Not(nx1))
	s01 = m.And(m.Not(nx0), nx1)
	s10 = m.And(nx0, m.Not(nx1))
	s11 = m.And(nx0, nx1)

	p01 := m.And(m.Not(nx0p), nx1p)
	p10 := m.And(nx0p, m.Not(nx1p))
	p11 := m.And(nx0p, nx1p)

	t0 := m.And(s00, p01)
	t1 := m.And(s01, p10)
	t2 := m.And(s10, p11)
	t3 := m.And(s11, p01)
	delta = m.Or(m.Or(t0, t1), m.Or(t2, t3))
	return
}

// TestPreImageTransitionSystem covers spec.md §8 scenario 4: the
// predecessors of state 10 under the counter's transition relation are
// exactly state 01.
func TestPreImageTransitionSystem(t *testing.T) {
	m := New()
	delta, _, s01, s10, _ := buildCounter(m)

	pre := m.PreImage(delta, s10)
	if err := m.Err(); err != nil {
		t.Fatalf("PreImage reported an error: %v", err)
	}
	if pre != s01 {
		t.Errorf("PreImage(delta, s10) = %d, want s01 (%d)", pre, s01)
	}
}

// TestPreImageEachState walks every state, not just the one scenario state,
// checking that each predecessor set is exactly the states with a transition
// into it: 01 is entered from both 00 and 11, and nothing enters 00.
func TestPreImageEachState(t *testing.T) {
	m := New()
	delta, s00, s01, s10, s11 := buildCounter(m)

	cases := []struct {
		name   string
		target Node
		want   Node
	}{
		{"pre(01)", s01, m.Or(s00, s11)},
		{"pre(10)", s10, s01},
		{"pre(11)", s11, s10},
		{"pre(00)", s00, zero},
	}
	for _, tc := range cases {
		if got := m.PreImage(delta, tc.target); got != tc.want {
			t.Errorf("%s = %d, want %d", tc.name, got, tc.want)
		}
	}
}

// TestPreImageRejectsBadOrdering covers spec.md §7's malformed-ordering
// error path: a registry whose primed variables are not interleaved must
// not silently compute a wrong answer.
func TestPreImageRejectsBadOrdering(t *testing.T) {
	m := New()
	x0 := m.Declare("x0", false)
	x1 := m.Declare("x1", false)
	x0p := m.Declare("x0", true)
	_ = x1
	_ = x0p

	n0 := m.VariableNode(x0)
	got := m.PreImage(n0, n0)
	if got != zero {
		t.Errorf("PreImage with bad ordering = %d, want 0", got)
	}
	if m.Err() == nil {
		t.Fatalf("expected Err() to report the ordering violation")
	}
	var oe *OrderingError
	if !errors.As(m.Err(), &oe) {
		t.Errorf("Err() = %v, want an *OrderingError", m.Err())
	}
}
