package grapheme

import (
	"github.com/npillmayer/ucore/cpset"
	"github.com/npillmayer/ucore/ucd/udata"
)

// graphemeExtend backs the decoder's trailing-extension step; it is
// built once, at package init, from the Grapheme_Extend binary-property
// interval table via cpset.Set's O(log N) Contains — a genuine binary
// property (not a single General_Category value), so cpset is the right
// shape for it, unlike isSpacingMark/isControl below.
var graphemeExtend = cpset.FromIntervals(udata.BinaryProperties["Grapheme_Extend"]...)

func isGraphemeExtend(c rune) bool { return graphemeExtend.Contains(uint32(c)) }

// isSpacingMark reports whether c's General_Category is Mc (Spacing
// Combining Mark), read through udata's trie-backed classification
// rather than a cpset built from the same interval table, since this is
// a single-category membership test, exactly what GeneralCategory's
// utrie.Trie[string] is for.
func isSpacingMark(c rune) bool { return udata.GeneralCategory(uint32(c)) == "Mc" }

// isControl reports whether c is one of the fixed control codepoints that
// terminate a grapheme cluster immediately, before any trailing-extend
// consumption: the General_Category Cc/Zl/Zp codepoints, including the
// NEL, LF, FF and VT codepoints the Cc range already covers. CR is
// excluded here since the CRLF rule handles it separately.
func isControl(c rune) bool {
	if c == '\r' {
		return false
	}
	switch udata.GeneralCategory(uint32(c)) {
	case "Cc", "Zl", "Zp":
		return true
	}
	return false
}

// Hangul jamo and syllable ranges, algorithmic exactly as in norm's
// hangul.go: grapheme clustering and normalization both need the same
// L/V/T/LV/LVT partition of the Hangul block, so both packages carry
// their own copy of these five constants rather than one importing the
// other for a handful of comparisons.
const (
	hangulSBase  = 0xAC00
	hangulLBase  = 0x1100
	hangulVBase  = 0x1161
	hangulTBase  = 0x11A7
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount
	hangulSCount = hangulLCount * hangulNCount
)

func isHangulL(c rune) bool {
	return c >= hangulLBase && c < hangulLBase+hangulLCount
}

func isHangulV(c rune) bool {
	return c >= hangulVBase && c < hangulVBase+hangulVCount
}

func isHangulT(c rune) bool {
	return c > hangulTBase && c < hangulTBase+hangulTCount
}

func isHangulSyllable(c rune) bool {
	return c >= hangulSBase && c < hangulSBase+hangulSCount
}

// isHangulLVSyllable reports whether c is a precomposed Hangul syllable
// with no trailing consonant (T index 0).
func isHangulLVSyllable(c rune) bool {
	if !isHangulSyllable(c) {
		return false
	}
	return (int(c)-hangulSBase)%hangulTCount == 0
}

// isHangulLVTSyllable reports whether c is a precomposed Hangul syllable
// that does carry a trailing consonant.
func isHangulLVTSyllable(c rune) bool {
	return isHangulSyllable(c) && !isHangulLVSyllable(c)
}
