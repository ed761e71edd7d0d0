/*
Package grapheme implements §4.7's bare grapheme cluster state machine:
Grapheme, a value type holding one user-perceived character, and
DecodeGrapheme, which splits the next cluster off the front of a string.

This package deliberately does not reuse the teacher's general-purpose
NFA breaker (automata.go's Recognizer/RunePublisher, formerly wired up
in this very file as a UAX#29 Breaker over eleven separate rule
functions): the bare grapheme grammar this module needs has exactly six
states (Start, CR, RI, L, V, LVT), each with a small fixed set of
follow-up classes, and is more directly expressed as one explicit
decode function over classify/consume helpers than as a table of pooled
NFA recognizers subscribed to a RunePublisher. classes.go carries the
property lookups (graphemeExtend, spacingMark, control, the Hangul
partitions) that the old rule table also needed: graphemeExtend is a
cpset.Set over udata's Grapheme_Extend intervals, spacingMark and control
read udata's General_Category trie, and the Hangul partitions are
arithmetic.

License

This project is provided under the terms of the UNLICENSE or the
3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'
*/
package grapheme

import (
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to ucore.grapheme.
func tracer() tracing.Trace {
	return tracing.Select("ucore.grapheme")
}

// Grapheme is one user-perceived character: a base codepoint plus any
// attached combining marks, held as one grapheme cluster. Go strings are
// immutable, so a Grapheme's single field already gives it the value
// semantics a heap-allocated, deep-copying cluster type would: copying a
// Grapheme shares the same read-only bytes the way two string copies
// always do, and there is no separate object for a caller to free.
type Grapheme struct {
	s string
}

// String returns the grapheme cluster's text.
func (g Grapheme) String() string { return g.s }

// Runes returns the grapheme cluster's codepoints.
func (g Grapheme) Runes() []rune { return []rune(g.s) }

// Len returns the number of codepoints in the grapheme cluster.
func (g Grapheme) Len() int { return len([]rune(g.s)) }

// DecodeGrapheme splits the next grapheme cluster off the front of s and
// returns it along with its byte length. Calling DecodeGrapheme on an
// empty string is a contract violation and panics.
func DecodeGrapheme(s string) (Grapheme, int) {
	if s == "" {
		panic("grapheme: DecodeGrapheme called on empty input")
	}
	c, w := utf8.DecodeRuneInString(s)
	pos := w

	switch {
	case c == '\r':
		if pos < len(s) {
			if c2, w2 := utf8.DecodeRuneInString(s[pos:]); c2 == '\n' {
				pos += w2
				return Grapheme{s: s[:pos]}, pos
			}
		}
		return extendFrom(s, pos)
	case isControl(c):
		return Grapheme{s: s[:pos]}, pos
	case isRegionalIndicator(c):
		if pos < len(s) {
			if c2, w2 := utf8.DecodeRuneInString(s[pos:]); isRegionalIndicator(c2) {
				pos += w2
			}
		}
		return extendFrom(s, pos)
	case isHangulL(c):
		pos = consumeWhile(s, pos, isHangulL)
		if pos < len(s) {
			if c2, w2 := utf8.DecodeRuneInString(s[pos:]); isHangulV(c2) || isHangulLVSyllable(c2) {
				pos += w2
				pos = consumeWhile(s, pos, isHangulV)
				pos = consumeWhile(s, pos, isHangulT)
				return extendFrom(s, pos)
			} else if isHangulLVTSyllable(c2) {
				pos += w2
				pos = consumeWhile(s, pos, isHangulT)
				return extendFrom(s, pos)
			}
		}
		return extendFrom(s, pos)
	case isHangulV(c) || isHangulLVSyllable(c):
		pos = consumeWhile(s, pos, isHangulV)
		pos = consumeWhile(s, pos, isHangulT)
		return extendFrom(s, pos)
	case isHangulLVTSyllable(c) || isHangulT(c):
		pos = consumeWhile(s, pos, isHangulT)
		return extendFrom(s, pos)
	default:
		return extendFrom(s, pos)
	}
}

// isRegionalIndicator reports whether c is one of the 26 regional
// indicator symbols (U+1F1E6-U+1F1FF) used to spell two-letter flag
// sequences.
func isRegionalIndicator(c rune) bool {
	return c >= 0x1F1E6 && c <= 0x1F1FF
}

// consumeWhile advances pos over s past every consecutive codepoint
// matching pred, starting at pos.
func consumeWhile(s string, pos int, pred func(rune) bool) int {
	for pos < len(s) {
		c, w := utf8.DecodeRuneInString(s[pos:])
		if !pred(c) {
			break
		}
		pos += w
	}
	return pos
}

// extendFrom finishes decoding a cluster by consuming every trailing
// graphemeExtend or spacingMark codepoint starting at pos, then returns
// the finished Grapheme.
func extendFrom(s string, pos int) (Grapheme, int) {
	pos = consumeWhile(s, pos, func(c rune) bool {
		return isGraphemeExtend(c) || isSpacingMark(c)
	})
	return Grapheme{s: s[:pos]}, pos
}

// Iterator walks a string's grapheme clusters in order.
type Iterator struct {
	s   string
	pos int
}

// NewIterator returns an Iterator over s.
func NewIterator(s string) *Iterator { return &Iterator{s: s} }

// Next returns the next grapheme cluster and true, or the zero Grapheme
// and false once the input is exhausted.
func (it *Iterator) Next() (Grapheme, bool) {
	if it.pos >= len(it.s) {
		return Grapheme{}, false
	}
	g, n := DecodeGrapheme(it.s[it.pos:])
	it.pos += n
	tracer().Debugf("grapheme: decoded %q (%d bytes)", g.s, n)
	return g, true
}

// All decodes every grapheme cluster in s, in order.
func All(s string) []Grapheme {
	if s == "" {
		return nil
	}
	it := NewIterator(s)
	var out []Grapheme
	for {
		g, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, g)
	}
}
