/*
Package bits implements the bit-packed storage substrate used by tries and
other compact tables throughout ucore: PackedBitArray, a view over a word
buffer storing fixed-width values, and MultiArray, several such views
sharing one allocation.

Values are packed by power-of-two widths (1, 2, 4, 8, 16, 32, 64 bits) into
64-bit words. This is the same trade-off the teacher module's own
bidi/trie/hashtrie.go makes for its category/link/sibling tables — small
integers, fixed width, dense storage — generalized here to arbitrary
power-of-two widths instead of one fixed byte width.

License

This project is provided under the terms of the UNLICENSE or the
3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'
*/
package bits

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to ucore.bits.
func tracer() tracing.Trace {
	return tracing.Select("ucore.bits")
}

// CT traces to the core-tracer (kept for parity with sibling packages).
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

const wordBits = 64

// Width is a packed element bit-width. Only power-of-two widths up to the
// word size are supported.
type Width uint8

// Supported widths.
const (
	W1  Width = 1
	W2  Width = 2
	W4  Width = 4
	W8  Width = 8
	W16 Width = 16
	W32 Width = 32
	W64 Width = 64
)

func (w Width) valid() bool {
	switch w {
	case W1, W2, W4, W8, W16, W32, W64:
		return true
	}
	return false
}

// perWord returns how many elements of width w fit in one word.
func (w Width) perWord() int {
	return wordBits / int(w)
}

// mask returns the low-w-bits mask for width w.
func (w Width) mask() uint64 {
	if w == W64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(w)) - 1
}

// wordsFor returns the number of words needed to hold n elements of width w.
func wordsFor(w Width, n int) int {
	if n == 0 {
		return 0
	}
	f := w.perWord()
	return (n + f - 1) / f
}

// PackedArray is a view over a shared word buffer holding a sequence of
// fixed-width unsigned values. Several PackedArrays may alias the same
// buffer at different offsets; see MultiArray.
//
// PackedArray itself does not own words; it is a (buffer, offset, width,
// length) tuple. Callers who need an owned, standalone array should use
// NewOwned.
type PackedArray struct {
	words  []uint64
	offset int // starting word index within words
	width  Width
	length int // logical element count
}

// NewOwned allocates a standalone PackedArray of the given width and
// length, all elements zero.
func NewOwned(width Width, length int) *PackedArray {
	if !width.valid() {
		panic(fmt.Sprintf("bits: invalid packed width %d", width))
	}
	return &PackedArray{
		words:  make([]uint64, wordsFor(width, length)),
		width:  width,
		length: length,
	}
}

// Len returns the logical element count.
func (p *PackedArray) Len() int { return p.length }

// Width returns the element bit-width.
func (p *PackedArray) Width() Width { return p.width }

// Get reads element i.
//
// Given a backing word buffer and a bit-width b that is a power of two,
// element i resides in word ⌊i/f⌋ where f = word_bits/b, at bit offset
// (i mod f)·b. This is the packed access contract of §4.1.
func (p *PackedArray) Get(i int) uint64 {
	if i < 0 || i >= p.length {
		panic(fmt.Sprintf("bits: index %d out of range [0,%d)", i, p.length))
	}
	f := p.width.perWord()
	wi := p.offset + i/f
	shift := uint(i%f) * uint(p.width)
	return (p.words[wi] >> shift) & p.width.mask()
}

// Set writes element i, preserving the other bits in its word.
func (p *PackedArray) Set(i int, v uint64) {
	if i < 0 || i >= p.length {
		panic(fmt.Sprintf("bits: index %d out of range [0,%d)", i, p.length))
	}
	m := p.width.mask()
	if v&^m != 0 {
		panic(fmt.Sprintf("bits: value %d does not fit in %d bits", v, p.width))
	}
	f := p.width.perWord()
	wi := p.offset + i/f
	shift := uint(i%f) * uint(p.width)
	p.words[wi] = (p.words[wi] &^ (m << shift)) | (v << shift)
}

// Fill sets every element to v.
func (p *PackedArray) Fill(v uint64) {
	for i := 0; i < p.length; i++ {
		p.Set(i, v)
	}
}

// rawWords exposes the backing words of this view for page-equality
// comparisons, as MultiArray.PageWords does for utrie.Builder's dedup
// step; nothing outside this package can call it. start/count are in
// elements, not words; the returned slice is only valid for comparison,
// not for stable aliasing across future resizes.
func (p *PackedArray) rawWords(startElem, countElem int) []uint64 {
	f := p.width.perWord()
	wstart := p.offset + startElem/f
	wend := p.offset + wordsFor(p.width, startElem+countElem)
	return p.words[wstart:wend]
}
