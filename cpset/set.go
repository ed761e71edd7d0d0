/*
Package cpset implements Set, an interval-list representation of a set of
Unicode codepoints supporting set algebra with value semantics and
O(log N) membership tests.

A Set is a flat sequence of boundary values b0 < b1 < ... < b2n-1 held in
a uint24.Array: even-indexed positions are interval starts, odd-indexed
positions are interval ends (exclusive). A codepoint x is a member iff
the count of boundaries <= x is odd.

The merge algorithms (union, intersect, subtract) are a direct port of
the four-state "polarity" merge ICU's UnicodeSet uses and that vitess's
uset package keeps faithfully (other_examples/vitessio-vitess__unicode_set.go):
walking both boundary lists together, a 2-bit polarity records which of
the two inputs is "inside" its current interval, and the four polarity
states select which side to advance and which value to emit. Codepoints
here are stored in a uint24.Array (spec's storage budget) instead of
vitess's plain []rune, and the high sentinel is MaxCodepoint+1 rather
than ICU's UNICODESET_HIGH, but the control flow matches.

License

This project is provided under the terms of the UNLICENSE or the
3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'
*/
package cpset

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/ucore/uint24"
)

// tracer traces to ucore.cpset.
func tracer() tracing.Trace {
	return tracing.Select("ucore.cpset")
}

// MaxCodepoint is the highest valid Unicode codepoint.
const MaxCodepoint = 0x10FFFF

// high is one past the last valid codepoint. It doubles as ICU's
// UNICODESET_HIGH loop-terminating sentinel inside the merge algorithms
// in merge.go, but it can also be a genuine boundary: a set whose last
// interval reaches the domain maximum legitimately ends with high.
const high = uint32(MaxCodepoint) + 1

// Set is an ordered, non-overlapping, non-adjacent interval list over
// Unicode codepoints. The zero value is the empty set.
//
// Set has value semantics: every mutating operation (Add, and the
// methods that return a new Set) builds a fresh boundary array rather
// than writing through the one the receiver holds, so a plain Go
// assignment of a Set shares its backing array cheaply and safely —
// there is no risk of one alias's mutation leaking into another's view,
// since there is never any in-place mutation to leak. uint24.Array's own
// copy-on-write Set method exists for its own direct callers, who must
// call Array.Share to register an alias before Set's makeUnique can see
// it; cpset never calls Array.Share (plain Set assignment does not
// either), so cpset cannot use Array.Set safely and does not call it.
// See DESIGN.md's "cpset vs. uint24 COW" entry for why this is the
// deliberate design, not an oversight.
type Set struct {
	b uint24.Array // boundaries; always even length
}

// New returns the empty set.
func New() Set { return Set{} }

// FromIntervals builds a Set from a slice of half-open [a,b) intervals,
// which need not be sorted, merged, or non-overlapping.
func FromIntervals(intervals ...[2]uint32) Set {
	var s Set
	for _, iv := range intervals {
		s.Add(iv[0], iv[1])
	}
	return s
}

func (s Set) boundaries() []uint32 {
	return s.b.ToSlice()
}

// Len returns the number of intervals.
func (s Set) Len() int { return s.b.Len() / 2 }

// Length returns the total number of codepoints in the set: Σ(b - a)
// across intervals.
func (s Set) Length() int {
	n := 0
	for i := 0; i < s.b.Len(); i += 2 {
		n += int(s.b.Get(i+1) - s.b.Get(i))
	}
	return n
}

// Contains reports whether c is a member of s.
//
// Uses lowerBound to find the smallest index i such that c < b[i]; c is
// a member iff i is odd. This is the "count of boundaries <= c is odd"
// contract of §3 expressed via binary search, per §4.3.
func (s Set) Contains(c uint32) bool {
	if c > MaxCodepoint {
		return false
	}
	i := s.lowerBound(c)
	return i&1 != 0
}

// ContainsRange reports whether every codepoint in [a,b) is a member.
func (s Set) ContainsRange(a, b uint32) bool {
	if a >= b {
		return true
	}
	n := s.b.Len()
	i := s.lowerBound(a)
	if i&1 == 0 {
		return false
	}
	if i >= n {
		return true
	}
	return b <= s.b.Get(i)
}

// lowerBound returns the smallest index i such that c < boundary[i]. This
// is the plain form of the §4.3 search; the spec also allows an
// unrolled variant that reduces the search window to a power of two
// first and replaces the remaining comparisons with a branchless
// sequence — the same result, tuned for branch prediction. Plain binary
// search is kept here since nothing in this module is on a hot enough
// path to need the unrolled form.
func (s Set) lowerBound(c uint32) int {
	n := s.b.Len()
	if n == 0 {
		return 0
	}
	if c < s.b.Get(0) {
		return 0
	}
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) >> 1
		if c < s.b.Get(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// Add merges [a,b) into s, coalescing with overlapping or adjacent
// existing intervals. a must be < b.
func (s *Set) Add(a, b uint32) {
	if a >= b {
		return
	}
	if a > MaxCodepoint {
		return
	}
	if b > high {
		b = high
	}
	other := []uint32{a, b}
	s.mergeBuffer(other, 0)
}

// Union returns a new Set containing every codepoint in s or other.
func (s Set) Union(other Set) Set {
	out := s.clone()
	ob := other.boundaries()
	if len(ob) > 0 {
		out.mergeBuffer(ob, 0)
	}
	return out
}

// Intersect returns a new Set containing every codepoint in both s and
// other.
func (s Set) Intersect(other Set) Set {
	out := s.clone()
	out.retain(other.boundaries(), 0)
	return out
}

// Subtract returns a new Set containing every codepoint in s that is not
// in other.
func (s Set) Subtract(other Set) Set {
	out := s.clone()
	out.retain(other.boundaries(), 2)
	return out
}

// SymDiff returns a new Set containing every codepoint in exactly one of
// s or other: (s ∪ other) − (s ∩ other).
func (s Set) SymDiff(other Set) Set {
	return s.Union(other).Subtract(s.Intersect(other))
}

// Invert returns a new Set containing every codepoint NOT in s, within
// [0, MaxCodepoint].
//
// Brings s's boundaries into ICU's "ends in the sentinel" shape
// (appending high unless the last interval already ends there), then
// toggles whether codepoint 0 is a member by dropping or inserting a
// leading 0 — ICU's own Complement, ported from
// other_examples/vitessio-vitess__unicode_set.go. unpad then turns the
// result back into this package's even-length storage shape.
func (s Set) Invert() Set {
	b := s.boundaries()
	full := b
	if len(b) == 0 || b[len(b)-1] != high {
		full = pad(b)
	}
	var out []uint32
	if full[0] == 0 {
		out = full[1:]
	} else {
		out = append([]uint32{0}, full...)
	}
	out = unpad(out)
	if len(out) == 0 {
		return Set{}
	}
	return Set{b: uint24.New(out...)}
}

// Equal reports whether s and other contain exactly the same codepoints.
func (s Set) Equal(other Set) bool {
	return s.b.Equal(other.b)
}

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool { return s.b.Len() == 0 }

// replaceArray builds a fresh uint24.Array from a plain boundary slice.
//
// This deliberately never calls uint24.Array.Set/makeUnique. A cpset.Set
// is an ordinary Go value: `b := a` aliases a's backing buffer without
// ever calling Array.Share, so the trailing refcount stays at 1 even
// though two Sets now alias the same buffer. Array.Set trusts that
// refcount to decide whether it can write in place; calling it here
// would see refcount 1, skip the copy, and mutate a's storage through
// b — silently breaking the value semantics Set promises. Rebuilding a
// fresh array on every mutation needs no aliasing bookkeeping at all, so
// it stays correct under plain assignment. See DESIGN.md's "cpset vs.
// uint24 COW" entry.
func replaceArray(b []uint32) uint24.Array {
	if len(b) == 0 {
		return uint24.Array{}
	}
	return uint24.New(b...)
}

func (s Set) clone() Set {
	b := make([]uint32, s.b.Len())
	for i := range b {
		b[i] = s.b.Get(i)
	}
	return Set{b: uint24.New(b...)}
}

// Interval is a half-open codepoint range [Lo, Hi).
type Interval struct {
	Lo, Hi uint32
}

// Intervals returns the set's intervals in ascending order (§4.3
// byInterval, forward direction; reverse is left to the caller via plain
// slice iteration over the returned copy).
func (s Set) Intervals() []Interval {
	b := s.boundaries()
	out := make([]Interval, 0, len(b)/2)
	for i := 0; i < len(b); i += 2 {
		out = append(out, Interval{Lo: b[i], Hi: b[i+1]})
	}
	return out
}

// Codepoints returns every member codepoint in ascending order (§4.3
// byCodepoint). For large sets prefer Intervals and iterate ranges
// directly; Codepoints materializes the full enumeration.
func (s Set) Codepoints() []uint32 {
	out := make([]uint32, 0, s.Length())
	for _, iv := range s.Intervals() {
		for c := iv.Lo; c < iv.Hi; c++ {
			out = append(out, c)
		}
	}
	return out
}

func (s Set) String() string {
	return fmt.Sprintf("cpset.Set%v", s.Intervals())
}
