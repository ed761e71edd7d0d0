package norm

import "github.com/npillmayer/ucore/ucd/udata"

// Hangul syllable arithmetic (§4.5 "algorithmic Hangul syllable
// composition/decomposition"), the standard constants from the Unicode
// Standard's Hangul Syllable Decomposition algorithm.
const (
	sBase = 0xAC00
	lBase = 0x1100
	vBase = 0x1161
	tBase = 0x11A7

	lCount = 19
	vCount = 21
	tCount = 28
	nCount = vCount * tCount // 588
	sCount = lCount * nCount // 11172
)

func isHangulSyllable(c uint32) bool { return c >= sBase && c < sBase+sCount }
func isHangulL(c uint32) bool        { return c >= lBase && c < lBase+lCount }
func isHangulV(c uint32) bool        { return c >= vBase && c < vBase+vCount }

// isHangulT reports whether c is a trailing consonant jamo. tBase itself
// is the "no trailing consonant" sentinel, not a jamo, so it is excluded.
func isHangulT(c uint32) bool { return c > tBase && c < tBase+tCount }

// isHangulLV reports whether c is a Hangul syllable with no trailing
// consonant (an exact L+V composition, eligible to absorb a following T).
func isHangulLV(c uint32) bool {
	return isHangulSyllable(c) && (c-sBase)%tCount == 0
}

// decomposeHangul decomposes a precomposed Hangul syllable into its L, V
// and (if present) T jamo. t is 0 when the syllable has no trailing
// consonant.
func decomposeHangul(c uint32) (l, v, t uint32, ok bool) {
	if !isHangulSyllable(c) {
		return 0, 0, 0, false
	}
	sIndex := c - sBase
	l = lBase + sIndex/nCount
	v = vBase + (sIndex%nCount)/tCount
	tIndex := sIndex % tCount
	if tIndex != 0 {
		t = tBase + tIndex
	}
	return l, v, t, true
}

// ComposeJamo implements §8's composeJamo: it composes a leading and
// vowel jamo into their Hangul LV syllable, and optionally a further
// trailing jamo into the LVT syllable. Callers must pass valid jamo
// values; ComposeJamo does not validate its arguments.
func ComposeJamo(l, v uint32, t ...uint32) uint32 {
	lv := sBase + (l-lBase)*nCount + (v-vBase)*tCount
	if len(t) == 0 {
		return lv
	}
	return lv + (t[0] - tBase)
}

// CombiningClass implements §8's combiningClass query.
func CombiningClass(c rune) uint8 {
	return udata.CCC(uint32(c))
}
