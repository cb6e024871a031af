// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// Clear implements spec.md §4.6: it performs a reachability sweep (depth-first,
// over an explicit stack) from roots through child edges, deletes every node record and
// unique-table entry that is not reachable, and prunes every operation-cache
// entry whose key or value mentions an evicted identifier (I5, I6).
//
// roots must be the full set of node identifiers the caller still intends to
// use; any identifier not in roots (and not reachable from one that is)
// becomes dangling, and using it afterwards is undefined (it may now be
// unknown, or it may silently denote a different, newly built function that
// happens to reuse its old identifier).
func (m *Manager) Clear(roots []Node) {
	for _, r := range roots {
		m.checkNode("Clear", r)
	}

	reachable := m.reachableFrom(roots)

	for id, rec := range m.records {
		if reachable[id] {
			continue
		}
		delete(m.unique, uniqueKey{level: rec.level, high: rec.high, low: rec.low})
		delete(m.records, id)
		m.freeIDs = append(m.freeIDs, id)
	}

	m.pruneCaches(reachable)

	if debugEnabled {
		debugLogf("clear: kept %d nodes, freed %d ids now available for reuse", len(m.records), len(m.freeIDs))
	}
}

// reachableFrom computes the set of non-terminal identifiers reachable from
// roots via child edges. Terminals are not included: they are never stored
// and never evicted.
func (m *Manager) reachableFrom(roots []Node) map[Node]bool {
	reachable := make(map[Node]bool, len(m.records))
	queue := make([]Node, 0, len(roots))
	for _, r := range roots {
		if r == zero || r == one {
			continue
		}
		if !reachable[r] {
			reachable[r] = true
			queue = append(queue, r)
		}
	}
	for len(queue) > 0 {
		n := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		rec := m.records[n]
		for _, child := range [2]Node{rec.high, rec.low} {
			if child == zero || child == one || reachable[child] {
				continue
			}
			reachable[child] = true
			queue = append(queue, child)
		}
	}
	return reachable
}

// alive reports whether id is safe to keep referencing after a sweep that
// found reachable to be the surviving set: always true for a terminal, true
// for a decision node iff it is still reachable.
func alive(id Node, reachable map[Node]bool) bool {
	return id == zero || id == one || reachable[id]
}

// pruneCaches implements the precise eviction policy spec.md §9 recommends
// over the simpler "clear everything" alternative: scan each memo table and
// drop only the entries that mention an identifier the sweep just removed.
func (m *Manager) pruneCaches(reachable map[Node]bool) {
	c := m.caches

	for k, v := range c.cofactor {
		if !alive(k.n, reachable) || !alive(v.high, reachable) || !alive(v.low, reachable) {
			delete(c.cofactor, k)
		}
	}
	for k, v := range c.ite {
		if !alive(k.a, reachable) || !alive(k.b, reachable) || !alive(k.c, reachable) || !alive(v, reachable) {
			delete(c.ite, k)
		}
	}
	for k, v := range c.and {
		if !alive(k.a, reachable) || !alive(k.b, reachable) || !alive(v, reachable) {
			delete(c.and, k)
		}
	}
	for k, v := range c.or {
		if !alive(k.a, reachable) || !alive(k.b, reachable) || !alive(v, reachable) {
			delete(c.or, k)
		}
	}
	for k, v := range c.extra {
		if !alive(k.a, reachable) || !alive(k.b, reachable) || !alive(v, reachable) {
			delete(c.extra, k)
		}
	}
	for k, v := range c.quant {
		if !alive(k.a, reachable) || !alive(k.b, reachable) || !alive(v, reachable) {
			delete(c.quant, k)
		}
	}
	for k, v := range c.preimage {
		if !alive(k.transition, reachable) || !alive(k.target, reachable) || !alive(v, reachable) {
			delete(c.preimage, k)
		}
	}
	for k, v := range c.replace {
		if !alive(k.n, reachable) || !alive(v, reachable) {
			delete(c.replace, k)
		}
	}
}
