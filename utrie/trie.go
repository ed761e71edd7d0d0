/*
Package utrie implements a generic, multi-stage, page-deduplicating trie
over the Unicode codepoint domain [0, 0x110000): Trie[V] for O(k) lookup
and Builder[V] for building one from a monotone stream of
(codepoint, value) writes.

The design follows the three-stage fast/small lookup structure of ICU's
UCPTrie (see other_examples/vitessio-vitess__ucptrie.go, reached here via
vitess's icuregex port) and the page-level deduplication ICU's
umutablecptrie_buildImmutable performs during compaction, but none of
ICU's binary serialization format is reproduced — this package only
keeps the algorithmic shape: several stages of page tables, each page
compared by content against previously committed pages of the same
stage so that repeated runs of the domain (long stretches of "not
assigned", or repeated blocks of identical category data) are stored
once. The generic value type and the builder's fluent insert-then-build
shape borrows its naming from golang.org/x/text/internal/triegen's
NewTrie(name).Insert(...).Gen(...) API, generalized from that package's
fixed byte-value trie to an arbitrary comparable V.

License

This project is provided under the terms of the UNLICENSE or the
3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'
*/
package utrie

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/ucore/bits"
)

// tracer traces to ucore.utrie.
func tracer() tracing.Trace {
	return tracing.Select("ucore.utrie")
}

// ErrOrder is returned by Builder.Put/PutRange when a key is not
// monotonically greater than or equal to every previously written key.
var ErrOrder = errors.New("utrie: keys must be inserted in non-decreasing order")

// MaxCodepoint is the highest valid Unicode codepoint, and one past the
// domain this trie covers is MaxCodepoint+1.
const MaxCodepoint = 0x10FFFF

// Domain returns the size of the full codepoint domain, [0, Domain).
const Domain = MaxCodepoint + 1

// stageShape describes one trie stage: its page size is 2^pageBits, and
// the stage's slice of a key, Pᵢ(key), is pageBits bits wide. The shift
// at which that slice starts is derived by shiftFor; index combines the
// slices as "idx = (stage[i-1][idx] << bᵢ) | Pᵢ(key)" (§4.4).
type stageShape struct {
	pageBits int // bᵢ: page size is 2^pageBits
}

func (s stageShape) pageSize() int { return 1 << s.pageBits }

func (s stageShape) pageIndexMask() uint32 { return uint32(s.pageSize() - 1) }

// Trie is an immutable, built lookup structure mapping every codepoint in
// [0, Domain) to a value of type V. It is safe for concurrent use by
// multiple goroutines without synchronization, since nothing about it
// changes after Build returns it (§5).
type Trie[V comparable] struct {
	shapes []stageShape
	data   *bits.MultiArray // stage i<k-1 holds page indices; stage k-1 holds values
	valueOf func(uint64) V
	toWord  func(V) uint64
	fill    V
}

// Get returns the value stored at codepoint c, or the fill value if c
// was never explicitly assigned (§4.4 "Hole policy").
func (t *Trie[V]) Get(c rune) V {
	if c < 0 || int(c) > MaxCodepoint {
		return t.fill
	}
	idx := t.index(uint32(c))
	return t.valueOf(t.data.Get(len(t.shapes)-1, int(idx)))
}

// shiftFor returns the number of low bits owned by stages after i,
// i.e. the bit position at which stage i's page-selecting bits begin.
func shiftFor(shapes []stageShape, i int) int {
	shift := 0
	for j := i + 1; j < len(shapes); j++ {
		shift += shapes[j].pageBits
	}
	return shift
}

// index computes the fully-resolved terminal-stage index for key by
// walking every stage, exactly as specified in §4.4.
func (t *Trie[V]) index(key uint32) uint32 {
	shapes := t.shapes
	idx := (key >> shiftFor(shapes, 0)) & shapes[0].pageIndexMask()
	for i := 1; i < len(shapes); i++ {
		p := (key >> shiftFor(shapes, i)) & shapes[i].pageIndexMask()
		idx = uint32(t.data.Get(i-1, int(idx)))<<shapes[i].pageBits | p
	}
	return idx
}

// Stages returns the number of trie stages, k.
func (t *Trie[V]) Stages() int { return len(t.shapes) }

func (t *Trie[V]) String() string {
	return fmt.Sprintf("utrie.Trie[%d stages, fill=%v]", len(t.shapes), t.fill)
}

// dedupCache maps a page's content fingerprint to the index of the first
// committed page with that content, per stage. It is backed by
// gods/maps/treemap so lookups and insertions during the build stay
// O(log P) in the number of distinct pages ever committed for a stage —
// the same data structure ucd uses for its property-name registry.
type dedupCache struct {
	byStage []*treemap.Map
}

func newDedupCache(stages int) *dedupCache {
	dc := &dedupCache{byStage: make([]*treemap.Map, stages)}
	for i := range dc.byStage {
		dc.byStage[i] = treemap.NewWithStringComparator()
	}
	return dc
}

func (dc *dedupCache) lookup(stage int, fingerprint string) (int, bool) {
	v, found := dc.byStage[stage].Get(fingerprint)
	if !found {
		return 0, false
	}
	return v.(int), true
}

func (dc *dedupCache) record(stage int, fingerprint string, pageIndex int) {
	dc.byStage[stage].Put(fingerprint, pageIndex)
}
