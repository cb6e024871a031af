// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Stats returns a human-readable summary of the Manager: variable count,
// live node count, and the hit/miss counters of every operation cache.
// Modeled on the teacher's Stats/gcstats.
func (m *Manager) Stats() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Varnum:    %d\n", len(m.vars))
	fmt.Fprintf(&b, "Nodes:     %d (next id %d, %d free)\n", len(m.records), m.nextID, len(m.freeIDs))
	b.WriteString("==============\n")
	b.WriteString(m.caches.String())
	return b.String()
}

// nodeLabel renders a node's DOT label: "0"/"1" for the terminals, and
// "<name>[_prime]_id_<n>" for a decision node, per spec.md §6.
func (m *Manager) nodeLabel(n Node) string {
	if n == zero {
		return "0"
	}
	if n == one {
		return "1"
	}
	rec := m.records[n]
	v := m.variableAt(rec.level)
	suffix := ""
	if v.primed {
		suffix = "_prime"
	}
	return fmt.Sprintf("%s%s_id_%d", v.name, suffix, int(n))
}

// ToDot renders the Manager's store as a DOT (Graphviz) digraph. With no
// arguments it dumps every live decision node; given one or more roots, it
// restricts the dump to the nodes reachable from them. Edges to the 0
// terminal are elided for readability; edges to 1 are emitted, matching
// spec.md §6.
func (m *Manager) ToDot(roots ...Node) string {
	var b strings.Builder
	// WriteDot on a strings.Builder never fails.
	_ = m.WriteDot(&b, roots...)
	return b.String()
}

// WriteDot is ToDot's streaming counterpart.
func (m *Manager) WriteDot(w io.Writer, roots ...Node) error {
	var ids []Node
	if len(roots) == 0 {
		ids = make([]Node, 0, len(m.records))
		for id := range m.records {
			ids = append(ids, id)
		}
	} else {
		for _, r := range roots {
			m.checkNode("WriteDot", r)
		}
		reachable := m.reachableFrom(roots)
		ids = make([]Node, 0, len(reachable))
		for id := range reachable {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	if _, err := fmt.Fprintln(w, "digraph{"); err != nil {
		return err
	}
	for _, id := range ids {
		rec := m.records[id]
		if rec.high != zero {
			if _, err := fmt.Fprintf(w, "%s -> %s [label=\"1\"]\n", m.nodeLabel(id), m.nodeLabel(rec.high)); err != nil {
				return err
			}
		}
		if rec.low != zero {
			if _, err := fmt.Fprintf(w, "%s -> %s [label=\"0\"]\n", m.nodeLabel(id), m.nodeLabel(rec.low)); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
