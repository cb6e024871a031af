// Command robddgen is a small worked example, ported from the
// transition-system driver that motivated this package: a two-bit counter
// that cycles 00 -> 01 -> 10 -> 11 -> 01, with a PreImage query asking which
// states can reach state 10 in one step.
//
// This program is deliberately outside the core engine: it is a user-facing
// driver over the public API, not part of the ROBDD manager itself.
package main

import (
	"fmt"
	"os"

	"github.com/cxlvinchau/robdd"
)

func main() {
	m := robdd.New()

	x0 := m.Declare("x0", false)
	x0p := m.Declare("x0", true)
	x1 := m.Declare("x1", false)
	x1p := m.Declare("x1", true)

	nx0, nx0p := m.VariableNode(x0), m.VariableNode(x0p)
	nx1, nx1p := m.VariableNode(x1), m.VariableNode(x1p)

	// States, as conjunctions of literals over (x0, x1).
	s00 := m.And(m.Not(nx0), m.Not(nx1))
	s01 := m.And(m.Not(nx0), nx1)
	s10 := m.And(nx0, m.Not(nx1))
	s11 := m.And(nx0, nx1)

	// Primed states, over (x0', x1').
	p01 := m.And(m.Not(nx0p), nx1p)
	p10 := m.And(nx0p, m.Not(nx1p))
	p11 := m.And(nx0p, nx1p)

	// Transitions 00->01, 01->10, 10->11, 11->01.
	t0 := m.And(s00, p01)
	t1 := m.And(s01, p10)
	t2 := m.And(s10, p11)
	t3 := m.And(s11, p01)
	delta := m.Or(m.Or(t0, t1), m.Or(t2, t3))

	// Which states can reach state 10 in one step?
	pre := m.PreImage(delta, s10)
	if err := m.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	m.Clear([]robdd.Node{delta, pre})

	fmt.Println(m.ToDot())
	fmt.Println(pre)
}
