package bits

import "fmt"

// stage describes one sub-array of a MultiArray: its bit width, logical
// element length, and the word offset at which it begins within the
// shared buffer.
type stage struct {
	width      Width
	length     int
	wordOffset int
}

func (s *stage) words() int { return wordsFor(s.width, s.length) }

// MultiArray is a contiguous word buffer partitioned into D named
// sub-arrays (stages), each with its own declared bit width. Resizing one
// stage shifts every higher-indexed stage within the buffer and updates
// their stored offsets — see §4.1.
//
// This is the storage substrate for utrie.Trie: stage i holds either
// page indices into stage i+1 (i < k-1) or the terminal values (i = k-1).
type MultiArray struct {
	buf    []uint64
	stages []stage
}

// NewMultiArray constructs a MultiArray with D sub-arrays of the given
// widths and initial lengths. len(widths) must equal len(lengths).
func NewMultiArray(widths []Width, lengths []int) *MultiArray {
	if len(widths) != len(lengths) {
		panic("bits: NewMultiArray: widths and lengths must have the same length")
	}
	ma := &MultiArray{stages: make([]stage, len(widths))}
	off := 0
	for i, w := range widths {
		if !w.valid() {
			panic(fmt.Sprintf("bits: invalid packed width %d for stage %d", w, i))
		}
		ma.stages[i] = stage{width: w, length: lengths[i], wordOffset: off}
		off += ma.stages[i].words()
	}
	ma.buf = make([]uint64, off)
	return ma
}

// Stages returns the number of sub-arrays.
func (ma *MultiArray) Stages() int { return len(ma.stages) }

// Len returns the logical length of stage s.
func (ma *MultiArray) Len(s int) int { return ma.stages[s].length }

// Width returns the bit width of stage s.
func (ma *MultiArray) Width(s int) Width { return ma.stages[s].width }

// Get reads element i of stage s.
func (ma *MultiArray) Get(s, i int) uint64 {
	st := &ma.stages[s]
	if i < 0 || i >= st.length {
		panic(fmt.Sprintf("bits: stage %d index %d out of range [0,%d)", s, i, st.length))
	}
	f := st.width.perWord()
	wi := st.wordOffset + i/f
	shift := uint(i%f) * uint(st.width)
	return (ma.buf[wi] >> shift) & st.width.mask()
}

// Set writes element i of stage s.
func (ma *MultiArray) Set(s, i int, v uint64) {
	st := &ma.stages[s]
	if i < 0 || i >= st.length {
		panic(fmt.Sprintf("bits: stage %d index %d out of range [0,%d)", s, i, st.length))
	}
	m := st.width.mask()
	if v&^m != 0 {
		panic(fmt.Sprintf("bits: value %d does not fit in %d bits (stage %d)", v, st.width, s))
	}
	f := st.width.perWord()
	wi := st.wordOffset + i/f
	shift := uint(i%f) * uint(st.width)
	ma.buf[wi] = (ma.buf[wi] &^ (m << shift)) | (v << shift)
}

// Resize changes the logical length of stage s to newLength, preserving
// existing contents, zeroing any newly created slots, and shifting every
// higher-indexed stage to make (or reclaim) room. This is the resize
// contract of §4.1: on grow, extend and memmove upward; on shrink,
// memmove downward and truncate.
func (ma *MultiArray) Resize(s int, newLength int) {
	st := &ma.stages[s]
	for i := newLength; i < st.length; i++ {
		ma.Set(s, i, 0) // clear dropped slots so a later grow sees zeros
	}
	oldWords := st.words()
	st.length = newLength
	newWords := st.words()
	delta := newWords - oldWords
	if delta == 0 {
		return
	}
	tailStart := st.wordOffset + oldWords
	if delta > 0 {
		ma.buf = append(ma.buf, make([]uint64, delta)...)
		copy(ma.buf[tailStart+delta:], ma.buf[tailStart:len(ma.buf)-delta])
		for i := tailStart; i < tailStart+delta; i++ {
			ma.buf[i] = 0
		}
	} else {
		shrink := -delta
		copy(ma.buf[tailStart-shrink:], ma.buf[tailStart:])
		ma.buf = ma.buf[:len(ma.buf)-shrink]
	}
	for j := s + 1; j < len(ma.stages); j++ {
		ma.stages[j].wordOffset += delta
	}
	tracer().Debugf("resized stage %d to length %d (%+d words)", s, newLength, delta)
}

// TotalWords returns the aggregate backing length in words, which must
// always equal Σ⌈Lᵢ·wᵢ/word_bits⌉ — the MultiArray invariant of §4.1.
func (ma *MultiArray) TotalWords() int { return len(ma.buf) }

// PageWords returns the raw backing words for the half-open element range
// [start,start+count) of stage s, for byte/word-equality comparisons. It
// is used by utrie.Builder to detect duplicate pages; the returned
// slice aliases the live buffer and must not be retained across a Resize.
func (ma *MultiArray) PageWords(s, start, count int) []uint64 {
	st := &ma.stages[s]
	f := st.width.perWord()
	wstart := st.wordOffset + start/f
	wend := st.wordOffset + wordsFor(st.width, start+count)
	return ma.buf[wstart:wend]
}
