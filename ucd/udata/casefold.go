package udata

// caseRanges lists the regular (offset-based) upper/lower pairings this
// dataset covers: ASCII, Latin-1 Supplement letters, Greek, Cyrillic.
// Real UCD case data is a flat bucket table; this dataset has no bucket
// table and keeps these ranges instead, because the mapping happens to
// be a uniform offset across each block.
var caseRanges = []struct {
	upperLo, upperHi uint32 // [upperLo, upperHi), excluding any gap
	gap              uint32 // codepoint inside the range with no mapping, or 0
	offset           uint32 // lower = upper + offset
}{
	{0x41, 0x5B, 0, 0x20},
	{0xC0, 0xDF, 0xD7, 0x20}, // Latin-1: 0xD7 (multiplication sign) is not a letter
	{0x391, 0x3AA, 0x3A2, 0x20},
	{0x410, 0x430, 0, 0x20},
}

// SimpleFold returns the simple (single-codepoint) case fold of c, or c
// itself if c has none. Matches the ASCII/Latin-1/Greek/Cyrillic ranges
// algorithmically rather than through a literal bucket table, since the
// mapping is a uniform per-block offset; ß is excluded (its simple fold
// is itself — only its full fold expands to "ss").
func SimpleFold(c uint32) uint32 {
	for _, r := range caseRanges {
		if c >= r.upperLo && c < r.upperHi && c != r.gap {
			return c + r.offset
		}
	}
	return c
}

// ToLower and ToUpper implement §4.6's simple toLower/toUpper: ASCII fast
// path folded into the same range table as SimpleFold; any codepoint
// outside those ranges maps to itself. That includes ß, which uppercases
// to itself in this dataset (U+1E9E, LATIN CAPITAL LETTER SHARP S, is
// out of this module's representative coverage).
func ToLower(c uint32) uint32 {
	for _, r := range caseRanges {
		if c >= r.upperLo && c < r.upperHi && c != r.gap {
			return c + r.offset
		}
	}
	return c
}

func ToUpper(c uint32) uint32 {
	for _, r := range caseRanges {
		lowerLo, lowerHi := r.upperLo+r.offset, r.upperHi+r.offset
		if c >= lowerLo && c < lowerHi && c != r.gap+r.offset {
			return c - r.offset
		}
	}
	return c
}

// fullFold holds the case folds that expand to more than one codepoint:
// ß (U+00DF) is the canonical example, folding to "ss".
var fullFold = map[uint32][]uint32{
	0x00DF: {0x0073, 0x0073}, // ß -> ss
}

// FullFold returns the full case fold of c: either SimpleFold(c) as a
// single-element sequence, or, for the small set of codepoints with a
// multi-codepoint fold, that sequence.
func FullFold(c uint32) []uint32 {
	if seq, ok := fullFold[c]; ok {
		return seq
	}
	return []uint32{SimpleFold(c)}
}
