package udata

// Canonical maps a precomposed codepoint to its canonical decomposition
// (always base-plus-combining-mark pairs in this representative dataset,
// though the table shape supports longer sequences). Hangul syllable
// decomposition is algorithmic (the L/V/T arithmetic of §4.5) and is not
// carried here.
var Canonical = map[uint32][]uint32{
	0x00C0: {0x0041, 0x0300}, // À
	0x00C1: {0x0041, 0x0301}, // Á
	0x00C2: {0x0041, 0x0302}, // Â
	0x00C3: {0x0041, 0x0303}, // Ã
	0x00C4: {0x0041, 0x0308}, // Ä
	0x00C5: {0x0041, 0x030A}, // Å
	0x00C7: {0x0043, 0x0327}, // Ç
	0x00C8: {0x0045, 0x0300}, // È
	0x00C9: {0x0045, 0x0301}, // É
	0x00CA: {0x0045, 0x0302}, // Ê
	0x00CB: {0x0045, 0x0308}, // Ë
	0x00D1: {0x004E, 0x0303}, // Ñ
	0x00D2: {0x004F, 0x0300}, // Ò
	0x00D3: {0x004F, 0x0301}, // Ó
	0x00D6: {0x004F, 0x0308}, // Ö
	0x00D9: {0x0055, 0x0300}, // Ù
	0x00DA: {0x0055, 0x0301}, // Ú
	0x00DC: {0x0055, 0x0308}, // Ü
	0x00E0: {0x0061, 0x0300}, // à
	0x00E1: {0x0061, 0x0301}, // á
	0x00E2: {0x0061, 0x0302}, // â
	0x00E3: {0x0061, 0x0303}, // ã
	0x00E4: {0x0061, 0x0308}, // ä
	0x00E5: {0x0061, 0x030A}, // å
	0x00E7: {0x0063, 0x0327}, // ç
	0x00E8: {0x0065, 0x0300}, // è
	0x00E9: {0x0065, 0x0301}, // é
	0x00EA: {0x0065, 0x0302}, // ê
	0x00EB: {0x0065, 0x0308}, // ë
	0x00F1: {0x006E, 0x0303}, // ñ
	0x00F2: {0x006F, 0x0300}, // ò
	0x00F3: {0x006F, 0x0301}, // ó
	0x00F6: {0x006F, 0x0308}, // ö
	0x00F9: {0x0075, 0x0300}, // ù
	0x00FA: {0x0075, 0x0301}, // ú
	0x00FC: {0x0075, 0x0308}, // ü
}

// Compatibility maps a codepoint with a compatibility-only decomposition
// (one that NFC/NFD leave alone but NFKC/NFKD apply) to its expansion.
// Entries already covered by Canonical are not repeated here; norm's
// decomposer consults both tables.
var Compatibility = map[uint32][]uint32{
	0x00B2: {0x0032}, // ²
	0x00B3: {0x0033}, // ³
	0x00B9: {0x0031}, // ¹
	0x2070: {0x0030}, // ⁰
	0x2074: {0x0034}, // ⁴
	0x2075: {0x0035}, // ⁵
	0x2076: {0x0036}, // ⁶
	0x2077: {0x0037}, // ⁷
	0x2078: {0x0038}, // ⁸
	0x2079: {0x0039}, // ⁹
}

// composeKey is the lookup key for ComposePairs: a starter codepoint
// followed by a single combining mark.
type composeKey struct {
	starter, mark uint32
}

// ComposePairs is the reverse of Canonical: it maps a (starter, mark) pair
// back to its precomposed codepoint, for canonical composition (§4.5).
// Built once from Canonical so the two tables can never disagree.
var ComposePairs = func() map[composeKey]uint32 {
	m := make(map[composeKey]uint32, len(Canonical))
	for composed, seq := range Canonical {
		if len(seq) == 2 {
			m[composeKey{seq[0], seq[1]}] = composed
		}
	}
	return m
}()

// Compose looks up the precomposed codepoint for a starter followed by a
// single combining mark, as ComposePairs does, with the ok idiom.
func Compose(starter, mark uint32) (uint32, bool) {
	c, ok := ComposePairs[composeKey{starter, mark}]
	return c, ok
}
