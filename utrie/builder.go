package utrie

import (
	"encoding/binary"

	"github.com/npillmayer/ucore/bits"
)

// Builder accepts a monotone, non-decreasing stream of (key, value) or
// (range, value) writes and produces an immutable Trie once Build is
// called. See §4.4: it maintains a MultiArray with one stage per trie
// level, writes the terminal stage directly (padding domain gaps with
// the fill value), and deduplicates completed pages bottom-up as each
// stage's write cursor crosses a page boundary.
type Builder[V comparable] struct {
	shapes  []stageShape
	data    *bits.MultiArray
	toWord  func(V) uint64
	valueOf func(uint64) V
	fill    V
	dedup   *dedupCache
	// written is the number of codepoints logically processed so far,
	// i.e. the raw key-space write cursor. It is NOT the same as
	// data.Len(term): page dedup can retract and reuse terminal-stage
	// slots, shrinking the physical stage length, while written only
	// ever grows — every Put/PutRange/Build padding decision is made
	// against written, never against the physical stage length.
	written uint32
}

// NewBuilder constructs a Builder for a trie with len(pageBits) stages,
// stage i covering pageBits[i] bits of the codepoint key (so
// sum(pageBits) should be at least 21, enough to address every
// codepoint up to MaxCodepoint). valueWidth is the packed bit width of
// the terminal (value) stage; toWord/valueOf convert V to and from the
// uint64 words the terminal stage stores, and fill is returned by Get
// for any codepoint never explicitly written.
func NewBuilder[V comparable](pageBits []int, valueWidth bits.Width, toWord func(V) uint64, valueOf func(uint64) V, fill V) *Builder[V] {
	if len(pageBits) == 0 {
		panic("utrie: NewBuilder requires at least one stage")
	}
	shapes := make([]stageShape, len(pageBits))
	widths := make([]bits.Width, len(pageBits))
	for i, pb := range pageBits {
		if pb <= 0 {
			panic("utrie: page bit width must be positive")
		}
		shapes[i] = stageShape{pageBits: pb}
		if i == len(pageBits)-1 {
			widths[i] = valueWidth
		} else {
			widths[i] = bits.W32
		}
	}
	data := bits.NewMultiArray(widths, make([]int, len(pageBits)))
	return &Builder[V]{
		shapes:  shapes,
		data:    data,
		toWord:  toWord,
		valueOf: valueOf,
		fill:    fill,
		dedup:   newDedupCache(len(pageBits)),
	}
}

func (b *Builder[V]) pageSize(stage int) int { return b.shapes[stage].pageSize() }

// Put writes v at codepoint key. key must not be smaller than any
// previously written key (or range endpoint); violating this returns
// ErrOrder. Writing the same key a second time is treated as going
// backward and also returns ErrOrder — each codepoint is assigned at
// most once during a build.
func (b *Builder[V]) Put(key rune, v V) error {
	return b.putRange(uint32(key), uint32(key)+1, v)
}

// PutRange writes v at every codepoint in [lo, hi). The same ordering
// rule as Put applies to lo.
func (b *Builder[V]) PutRange(lo, hi rune, v V) error {
	return b.putRange(uint32(lo), uint32(hi), v)
}

func (b *Builder[V]) putRange(lo, hi uint32, v V) error {
	if hi <= lo {
		return nil
	}
	if lo > MaxCodepoint {
		return nil
	}
	if hi > Domain {
		hi = Domain
	}
	term := len(b.shapes) - 1
	if lo < b.written {
		return ErrOrder
	}
	for b.written < lo {
		b.appendValue(term, b.toWord(b.fill))
	}
	word := b.toWord(v)
	for b.written < hi {
		b.appendValue(term, word)
	}
	return nil
}

// appendValue grows stage by one element, writes v at the new slot, and
// checks whether that completed a page — §4.4's per-write commit check.
// For the terminal stage this also advances the logical write cursor
// (written), which page dedup must never be allowed to move backward.
func (b *Builder[V]) appendValue(stage int, v uint64) {
	n := b.data.Len(stage)
	b.data.Resize(stage, n+1)
	b.data.Set(stage, n, v)
	if stage == len(b.shapes)-1 {
		b.written++
	}
	b.maybeCommit(stage)
}

// maybeCommit is the recursive page-dedup step: when stage's cursor has
// just crossed a page boundary, fingerprint the completed page, reuse
// an identical previously-committed page if one exists (retracting the
// duplicate), and record the resulting physical page index one stage
// up. Stage 0 has no parent to record into, so the recursion stops
// there — §4.4's "upward to stage 0".
func (b *Builder[V]) maybeCommit(stage int) {
	if stage == 0 {
		return
	}
	p := b.pageSize(stage)
	n := b.data.Len(stage)
	if n == 0 || n%p != 0 {
		return
	}
	pageStart := n - p
	fp := b.fingerprint(stage, pageStart, p)
	var phys int
	if existing, ok := b.dedup.lookup(stage, fp); ok {
		phys = existing
		tracer().Debugf("utrie: page at stage %d, offset %d duplicates page %d; retracting", stage, pageStart, existing)
		b.data.Resize(stage, pageStart)
	} else {
		phys = pageStart / p
		b.dedup.record(stage, fp, phys)
	}
	b.appendValue(stage-1, uint64(phys))
}

// fingerprint turns the raw backing words of stage's page [start,
// start+count) into a comparable string key for the dedup cache.
func (b *Builder[V]) fingerprint(stage, start, count int) string {
	words := b.data.PageWords(stage, start, count)
	buf := make([]byte, 8*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return string(buf)
}

// Build flushes the terminal stage up to the domain maximum with the
// fill value and returns the finished, immutable Trie.
func (b *Builder[V]) Build() *Trie[V] {
	term := len(b.shapes) - 1
	fillWord := b.toWord(b.fill)
	for b.written < Domain {
		b.appendValue(term, fillWord)
	}
	return &Trie[V]{
		shapes:  b.shapes,
		data:    b.data,
		valueOf: b.valueOf,
		toWord:  b.toWord,
		fill:    b.fill,
	}
}
