package udata

import (
	"sort"

	"github.com/npillmayer/ucore/bits"
	"github.com/npillmayer/ucore/utrie"
)

// stringTrie builds a utrie.Trie[string] from a property-name->intervals
// table that partitions the domain — General_Category, Script and Block
// all qualify, since every codepoint belongs to at most one name in each
// of those tables. Every codepoint not covered by any interval reads
// back as fill. Building goes through utrie.NewBuilder exactly as §4.4
// describes: one PutRange per interval, fed in ascending order so the
// builder's monotone-write invariant holds.
func stringTrie(table map[string][][2]uint32, fill string) *utrie.Trie[string] {
	type entry struct {
		lo, hi uint32
		name   string
	}
	index := map[string]uint64{fill: 0}
	byIndex := []string{fill}
	var entries []entry
	for name, intervals := range table {
		if _, ok := index[name]; !ok {
			index[name] = uint64(len(byIndex))
			byIndex = append(byIndex, name)
		}
		for _, iv := range intervals {
			entries = append(entries, entry{iv[0], iv[1], name})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].lo < entries[j].lo })

	toWord := func(s string) uint64 { return index[s] }
	valueOf := func(w uint64) string { return byIndex[w] }

	b := utrie.NewBuilder[string]([]int{7, 7, 7}, bits.W8, toWord, valueOf, fill)
	for _, e := range entries {
		if err := b.PutRange(rune(e.lo), rune(e.hi), e.name); err != nil {
			panic("udata: building property trie: " + err.Error())
		}
	}
	return b.Build()
}

// uint8Trie builds a utrie.Trie[uint8] from a sparse codepoint->value
// map such as CombiningClass or one of the Quick_Check tables, with fill
// 0 for every codepoint the map does not mention. byte and uint8 are the
// same Go type, so this one helper serves both.
func uint8Trie(table map[uint32]uint8) *utrie.Trie[uint8] {
	keys := make([]uint32, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	toWord := func(v uint8) uint64 { return uint64(v) }
	valueOf := func(w uint64) uint8 { return uint8(w) }

	b := utrie.NewBuilder[uint8]([]int{7, 7, 7}, bits.W8, toWord, valueOf, 0)
	for _, k := range keys {
		if err := b.Put(rune(k), table[k]); err != nil {
			panic("udata: building value trie: " + err.Error())
		}
	}
	return b.Build()
}

var (
	generalCategoryTrie = stringTrie(GeneralCategories, "Cn")
	scriptTrie          = stringTrie(Scripts, "")
	blockTrie           = stringTrie(Blocks, "")
)

// GeneralCategory returns c's two-letter General_Category abbreviation
// via a utrie.Trie[string] lookup, or "Cn" (Unassigned) if c falls
// outside this dataset's coverage.
func GeneralCategory(c uint32) string { return generalCategoryTrie.Get(rune(c)) }

// Script returns c's script name via a utrie.Trie[string] lookup, or ""
// if c is not in a script this dataset covers.
func Script(c uint32) string { return scriptTrie.Get(rune(c)) }

// Block returns c's block name via a utrie.Trie[string] lookup, or "" if
// c is not in a block this dataset covers.
func Block(c uint32) string { return blockTrie.Get(rune(c)) }
