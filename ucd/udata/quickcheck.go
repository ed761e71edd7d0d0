package udata

import "github.com/npillmayer/ucore/utrie"

// QCYes, QCNo and QCMaybe are the three Quick_Check values of §4.5.
// Absent from a QuickCheck table means QCYes.
const (
	QCYes byte = iota
	QCNo
	QCMaybe
)

// QuickCheckNFC and friends give each normalization form's Quick_Check
// table: codepoints whose presence means the anchor scan of §4.5 cannot
// skip over them. Combining marks are QCMaybe for NFC/NFKC (they might
// combine with a preceding starter, or might not) and QCYes for NFD/NFKD
// (decomposed form already wants them loose); precomposed and
// compatibility-decomposable codepoints are QCNo for the forms that would
// rewrite them.
var (
	QuickCheckNFC  = map[uint32]byte{}
	QuickCheckNFD  = map[uint32]byte{}
	QuickCheckNFKC = map[uint32]byte{}
	QuickCheckNFKD = map[uint32]byte{}
)

// quickCheckNFCTrie and friends are the same tables as above, built as
// utrie.Trie[byte] (§4.4) once the maps are fully populated. They cannot
// be ordinary var initializers: Go only runs init functions after every
// package-level variable's own initializer has run, so a var initializer
// here would see the maps still empty. Built inside init instead, right
// after the population loops that fill the source maps.
var (
	quickCheckNFCTrie  *utrie.Trie[byte]
	quickCheckNFDTrie  *utrie.Trie[byte]
	quickCheckNFKCTrie *utrie.Trie[byte]
	quickCheckNFKDTrie *utrie.Trie[byte]
)

func init() {
	for c := range CombiningClass {
		QuickCheckNFC[c] = QCMaybe
		QuickCheckNFKC[c] = QCMaybe
	}
	for composed := range Canonical {
		QuickCheckNFC[composed] = QCYes
		QuickCheckNFD[composed] = QCNo
		QuickCheckNFKC[composed] = QCYes
		QuickCheckNFKD[composed] = QCNo
	}
	for compat := range Compatibility {
		QuickCheckNFC[compat] = QCYes
		QuickCheckNFD[compat] = QCYes
		QuickCheckNFKC[compat] = QCNo
		QuickCheckNFKD[compat] = QCNo
	}

	quickCheckNFCTrie = uint8Trie(QuickCheckNFC)
	quickCheckNFDTrie = uint8Trie(QuickCheckNFD)
	quickCheckNFKCTrie = uint8Trie(QuickCheckNFKC)
	quickCheckNFKDTrie = uint8Trie(QuickCheckNFKD)
}

// QuickCheck returns the Quick_Check value of c for the named form, one
// of "NFC", "NFD", "NFKC", "NFKD", reading through the form's trie.
func QuickCheck(form string, c uint32) byte {
	var trie *utrie.Trie[byte]
	switch form {
	case "NFC":
		trie = quickCheckNFCTrie
	case "NFD":
		trie = quickCheckNFDTrie
	case "NFKC":
		trie = quickCheckNFKCTrie
	case "NFKD":
		trie = quickCheckNFKDTrie
	default:
		return QCYes
	}
	return trie.Get(rune(c))
}
