package udata

// CombiningClass maps a codepoint to its Canonical_Combining_Class. Any
// codepoint absent from this map has class 0 (Not_Reordered). The four
// spot values §8 tests against (0x05BD, 0x0300, 0x0317, 0x1939) are real
// Unicode values; a selection of further marks from the combining-mark
// block (U+0300-U+030C and some class 220 and 202 marks) carries its real
// values too so canonical reordering has more than four data points to
// sort against. The other marks of that block are absent and read as 0.
var CombiningClass = map[uint32]uint8{
	0x0300: 230, 0x0301: 230, 0x0302: 230, 0x0303: 230, 0x0304: 230,
	0x0305: 230, 0x0306: 230, 0x0307: 230, 0x0308: 230, 0x0309: 230,
	0x030A: 230, 0x030B: 230, 0x030C: 230,
	0x0316: 220, 0x0317: 220, 0x0318: 220, 0x0319: 220,
	0x031C: 220, 0x0324: 220, 0x0325: 220, 0x0329: 220,
	0x0326: 202, 0x0327: 202, 0x0328: 202,
	0x05BD: 22,
	0x1939: 222,
}

// combiningClassTrie is CombiningClass built as a utrie.Trie[uint8]
// (§4.4): CCC is on norm's hot reordering path, so it reads through the
// trie rather than the source map directly.
var combiningClassTrie = uint8Trie(CombiningClass)

// CCC returns the combining class of c, defaulting to 0.
func CCC(c uint32) uint8 {
	return combiningClassTrie.Get(rune(c))
}
