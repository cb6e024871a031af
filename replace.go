// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "fmt"

// Replacer is a prepared variable renaming, built with NewReplacer and
// applied with Replace. It supplements the distilled spec (which sidesteps
// renaming S onto primed variables by exploiting the interleaved ordering in
// PreImage, see spec.md §4.5) with the general rename facility a symbolic
// model checker eventually needs for other purposes, such as moving a
// primed relation back onto unprimed variables after a PreImage step.
//
// The caller must choose old/new pairs that preserve the relative order of
// every variable that is not being renamed; Replace does not reorder the
// diagram, it only relabels levels in place (I3 is the caller's
// responsibility here, exactly as it is for make's callers elsewhere in this
// package).
type Replacer interface {
	id() int
	image(level int) int
}

type replacer struct {
	rid   int
	table []int // table[level] = new level, identity where unchanged
}

func (r *replacer) id() int           { return r.rid }
func (r *replacer) image(level int) int { return r.table[level] }

// NewReplacer builds a Replacer substituting each old[i] with new[i]. old and
// new must have the same length, and old must not contain the same variable
// twice.
func (m *Manager) NewReplacer(old, new []*Variable) (Replacer, error) {
	if len(old) != len(new) {
		return nil, fmt.Errorf("robdd: NewReplacer: mismatched slice lengths (%d vs %d)", len(old), len(new))
	}
	table := make([]int, len(m.vars))
	for i := range table {
		table[i] = i
	}
	seen := make(map[int]bool, len(old))
	for i, v := range old {
		if seen[v.level] {
			return nil, fmt.Errorf("robdd: NewReplacer: duplicate variable %q in old", v.name)
		}
		seen[v.level] = true
		table[v.level] = new[i].level
	}
	// A fresh id per Replacer, scoped to this Manager, means two different
	// renamings are never confused in the replace cache even if they happen
	// to touch the same nodes; distinct Managers share nothing (spec.md §5),
	// so this counter lives on the Manager rather than as package state.
	id := m.nextReplacerID
	m.nextReplacerID++
	return &replacer{rid: id, table: table}, nil
}

// Replace returns n with every variable renamed according to r.
func (m *Manager) Replace(n Node, r Replacer) Node {
	m.checkNode("Replace", n)
	return m.replace(n, r)
}

func (m *Manager) replace(n Node, r Replacer) Node {
	if n == zero || n == one {
		return n
	}
	key := replaceKey{replacerID: r.id(), n: n}
	if res, ok := m.caches.replace[key]; ok {
		m.caches.stats.replaceHit++
		return res
	}
	m.caches.stats.replaceMiss++

	rec := m.records[n]
	v := m.variableAt(r.image(rec.level))
	high := m.replace(rec.high, r)
	low := m.replace(rec.low, r)
	res := m.make(v, high, low)

	m.caches.replace[key] = res
	return res
}
