// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "sort"

// Cube builds the node representing the conjunction of the given variables in
// their positive form — a "cube" in the sense BuDDy's Makeset uses, suitable
// as the second argument to Exist, AppEx and as the target set S of PreImage.
// It is such that Scanset(Cube(vars)) returns the same variables back.
func (m *Manager) Cube(vars []*Variable) Node {
	sorted := append([]*Variable(nil), vars...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].level < sorted[j].level })
	n := one
	for i := len(sorted) - 1; i >= 0; i-- {
		n = m.make(sorted[i], n, zero)
	}
	return n
}

// Scanset returns the variables found by following the high branch of a cube
// built with Cube; the dual operation.
func (m *Manager) Scanset(cube Node) []*Variable {
	var vars []*Variable
	for cube != one {
		m.checkNode("Scanset", cube)
		vars = append(vars, m.variableAt(m.level(cube)))
		cube = m.records[cube].high
	}
	return vars
}

// Exist returns the existential quantification of n over the variables in
// cube (a node built with Cube): the disjunction of n's cofactors over every
// assignment of those variables.
//
// This generalizes the variable-elimination step that PreImage performs
// inline for the interleaved primed/unprimed case (spec.md §4.5) to an
// arbitrary cube, grounded on the teacher's Exist/quantcache.
func (m *Manager) Exist(n, cube Node) Node {
	m.checkNode("Exist", n)
	m.checkNode("Exist", cube)
	return m.exist(n, cube)
}

func (m *Manager) exist(n, cube Node) Node {
	if n == zero || n == one {
		return n
	}
	if cube == one {
		return n
	}
	key := pairKey{a: n, b: cube}
	if res, ok := m.caches.quant[key]; ok {
		m.caches.stats.quantHit++
		return res
	}
	m.caches.stats.quantMiss++

	nLevel, cLevel := m.level(n), m.level(cube)
	var res Node
	switch {
	case cLevel < nLevel:
		// The cube's current variable does not occur below n; skip it.
		res = m.exist(n, m.records[cube].high)
	case cLevel == nLevel:
		v := m.variableAt(nLevel)
		high, low := m.cofactor(n, v)
		rest := m.records[cube].high
		res = m.or(m.exist(high, rest), m.exist(low, rest))
	default: // nLevel < cLevel: n's variable is not being quantified, keep it
		v := m.variableAt(nLevel)
		high, low := m.cofactor(n, v)
		res = m.make(v, m.exist(high, cube), m.exist(low, cube))
	}
	m.caches.quant[key] = res
	return res
}

// AppEx applies op to (a, b) and existentially quantifies the variables in
// cube from the result, in one call. Grounded on the teacher's
// AppEx/appexcache, this implementation composes Apply and Exist rather than
// fusing them into a single recursion (BuDDy's AppEx avoids materializing the
// intermediate apply result); we accept the extra intermediate node because
// this operator is a domain-stack convenience layered on top of the core
// algorithms, not one spec.md's pre_image depends on.
func (m *Manager) AppEx(a, b Node, op Operator, cube Node) Node {
	m.checkNode("AppEx", a)
	m.checkNode("AppEx", b)
	m.checkNode("AppEx", cube)
	return m.Exist(m.Apply(a, b, op), cube)
}

// AndExist returns Exist(And(a, b), cube): the relational composition of a
// and b with the variables in cube quantified away.
func (m *Manager) AndExist(a, b, cube Node) Node {
	return m.AppEx(a, b, OpAnd, cube)
}

// PreImage computes the predecessor states of target under transition
// relation transition, i.e. ∃x'. transition(x,x') ∧ target(x')[x'/x]
// (spec.md §4.5). transition is a relation over interleaved unprimed/primed
// variables; target is expressed over the *unprimed* variables — the
// algorithm exploits the interleaved ordering to interpret target's
// variables as if they were primed, avoiding an explicit rename.
//
// PreImage requires the Manager's variable registry to interleave every
// state bit with its primed counterpart (see ValidateInterleaving). If it is
// not, the malformed-ordering error is recorded on the Manager (see Err) and
// Zero is returned, rather than silently computing a wrong answer.
func (m *Manager) PreImage(transition, target Node) Node {
	m.checkNode("PreImage", transition)
	m.checkNode("PreImage", target)
	if err := m.ValidateInterleaving(); err != nil {
		m.seterror("PreImage: %w", err)
		return zero
	}
	return m.preimage(transition, target)
}

func (m *Manager) preimage(t, s Node) Node {
	if t == zero || s == zero {
		return zero
	}
	if t == one && s == one {
		return one
	}
	key := preimageKey{transition: t, target: s}
	if res, ok := m.caches.preimage[key]; ok {
		m.caches.stats.preimageHit++
		return res
	}
	m.caches.stats.preimageMiss++

	level := min2(m.level(t), m.level(s))
	v := m.variableAt(level)

	var res Node
	if v.primed {
		t1, t0 := m.cofactor(t, v)
		res = m.or(m.preimage(t1, s), m.preimage(t0, s))
	} else {
		vPrimed := m.variableAt(level + 1)
		t1, t0 := m.cofactor(t, v)
		s1, s0 := m.cofactor(s, v)
		t11, t10 := m.cofactor(t1, vPrimed)
		t01, t00 := m.cofactor(t0, vPrimed)
		high := m.or(m.preimage(t11, s1), m.preimage(t10, s0))
		low := m.or(m.preimage(t01, s1), m.preimage(t00, s0))
		res = m.make(v, high, low)
	}

	m.caches.preimage[key] = res
	return res
}
