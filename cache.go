// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "fmt"

// caches bundles the memo tables described in spec.md §2: one each for
// cofactor, ite, and, or and pre_image, plus one shared table ("extra") for
// the domain-stack connectives (xor, nand, ...) that generalize and/or
// through Apply, one ("quant") for Exist (quantify.go), and one for variable
// renaming (replace.go).
//
// Unlike the teacher's fixed-size, open-addressed tables (grounded on
// BuDDy's approach, chosen there to stay CGo-free and to avoid a
// stop-the-world rehash), we key these on Go maps: the precise, per-entry
// cache eviction that Clear performs (gc.go) needs to enumerate entries by
// the identifiers they reference, which a plain map supports directly, and
// there is no fixed node table here whose size these would otherwise have to
// track.
type caches struct {
	cofactor map[cofactorKey]cofactorResult
	ite      map[iteKey]Node
	and      map[pairKey]Node
	or       map[pairKey]Node
	extra    map[applyKey]Node
	quant    map[pairKey]Node
	preimage map[preimageKey]Node
	replace  map[replaceKey]Node

	stats cacheStats
}

type cacheStats struct {
	cofactorHit, cofactorMiss int
	iteHit, iteMiss           int
	andHit, andMiss           int
	orHit, orMiss             int
	extraHit, extraMiss       int
	quantHit, quantMiss       int
	preimageHit, preimageMiss int
	replaceHit, replaceMiss   int
}

type cofactorKey struct {
	n     Node
	level int
}

type cofactorResult struct {
	high, low Node
}

type iteKey struct {
	a, b, c Node
}

type pairKey struct {
	a, b Node
}

type applyKey struct {
	op   Operator
	a, b Node
}

type preimageKey struct {
	transition, target Node
}

type replaceKey struct {
	replacerID int
	n          Node
}

func newCaches(size int) *caches {
	size = primeGte(size)
	return &caches{
		cofactor: make(map[cofactorKey]cofactorResult, size),
		ite:      make(map[iteKey]Node, size),
		and:      make(map[pairKey]Node, size),
		or:       make(map[pairKey]Node, size),
		extra:    make(map[applyKey]Node, size),
		quant:    make(map[pairKey]Node, size),
		preimage: make(map[preimageKey]Node, size),
		replace:  make(map[replaceKey]Node, size),
	}
}

func (c *caches) String() string {
	pct := func(hit, miss int) float64 {
		if hit+miss == 0 {
			return 0
		}
		return (float64(hit) * 100) / float64(hit+miss)
	}
	s := "== Operation caches\n"
	s += fmt.Sprintf(" cofactor:  %d entries, %d hits, %d miss (%.1f%%)\n", len(c.cofactor), c.stats.cofactorHit, c.stats.cofactorMiss, pct(c.stats.cofactorHit, c.stats.cofactorMiss))
	s += fmt.Sprintf(" ite:       %d entries, %d hits, %d miss (%.1f%%)\n", len(c.ite), c.stats.iteHit, c.stats.iteMiss, pct(c.stats.iteHit, c.stats.iteMiss))
	s += fmt.Sprintf(" and:       %d entries, %d hits, %d miss (%.1f%%)\n", len(c.and), c.stats.andHit, c.stats.andMiss, pct(c.stats.andHit, c.stats.andMiss))
	s += fmt.Sprintf(" or:        %d entries, %d hits, %d miss (%.1f%%)\n", len(c.or), c.stats.orHit, c.stats.orMiss, pct(c.stats.orHit, c.stats.orMiss))
	s += fmt.Sprintf(" extra:     %d entries, %d hits, %d miss (%.1f%%)\n", len(c.extra), c.stats.extraHit, c.stats.extraMiss, pct(c.stats.extraHit, c.stats.extraMiss))
	s += fmt.Sprintf(" exist:     %d entries, %d hits, %d miss (%.1f%%)\n", len(c.quant), c.stats.quantHit, c.stats.quantMiss, pct(c.stats.quantHit, c.stats.quantMiss))
	s += fmt.Sprintf(" pre_image: %d entries, %d hits, %d miss (%.1f%%)\n", len(c.preimage), c.stats.preimageHit, c.stats.preimageMiss, pct(c.stats.preimageHit, c.stats.preimageMiss))
	s += fmt.Sprintf(" replace:   %d entries, %d hits, %d miss (%.1f%%)\n", len(c.replace), c.stats.replaceHit, c.stats.replaceMiss, pct(c.stats.replaceHit, c.stats.replaceMiss))
	return s
}
