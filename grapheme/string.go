package grapheme

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// String is a type to represent a grapheme string, i.e. a sequence of
// "user perceived characters" as defined by Unicode. A grapheme string
// is a read-only data structure.
//
// Finding graphemes from a string is an operation with runtime
// complexity O(N). Clients should not convert large texts into grapheme
// strings in one go, but rather operate on manageable fragments.
type String interface {
	Nth(int) string // return nth grapheme
	Len() int       // length of string in units of user perceived characters
}

// MaxByteLen is the maximum byte count a grapheme string may consist of.
const MaxByteLen int = 32766

// StringFromString creates a grapheme string from a Go string. As
// grapheme strings are not meant to be created for large amounts of
// text, but rather for manageable segments, s is not allowed to exceed
// MaxByteLen bytes.
//
// StringFromString will panic if a larger input string is given.
func StringFromString(s string) String {
	if len(s) > MaxByteLen {
		panic(fmt.Sprintf("grapheme.String may not be built from more than %d bytes, have %d",
			MaxByteLen, len(s)))
	}
	if start := positionOfFirstLegalRune(s); start > 0 {
		s = s[start:]
	} else if start < 0 {
		s = ""
	}
	if len(s) < math.MaxUint8 {
		return makeShortString(s)
	}
	return makeMidString(s)
}

// StringFromBytes creates a grapheme string from an array of bytes.
func StringFromBytes(b []byte) String {
	return StringFromString(string(b))
}

// --- Short version ---------------------------------------------------------

type shortString struct {
	content string
	breaks  []uint8
}

func makeShortString(s string) String {
	gstr := &shortString{content: s}
	if s == "" {
		return gstr
	}
	gstr.breaks = make([]uint8, 1, len(s)/4+1)
	gstr.breaks[0] = 0
	it := NewIterator(s)
	br := 0
	for {
		g, ok := it.Next()
		if !ok {
			break
		}
		br += len(g.s)
		gstr.breaks = append(gstr.breaks, uint8(br))
	}
	return gstr
}

func (gstr *shortString) Nth(n int) string {
	if n < 0 || n > maxInt(len(gstr.breaks)-2, 0) {
		panic(fmt.Sprintf("grapheme string index out of bounds, [%d] in [0:%d]",
			n, maxInt(len(gstr.breaks)-2, 0)))
	} else if len(gstr.breaks) < 2 {
		return ""
	}
	l, r := gstr.breaks[n], gstr.breaks[n+1]
	return gstr.content[l:r]
}

func (gstr *shortString) Len() int {
	if len(gstr.breaks) < 2 {
		return 0
	}
	return len(gstr.breaks) - 1
}

// --- Mid version -------------------------------------------------------------

type midString struct {
	content string
	breaks  []uint16
}

func makeMidString(s string) String {
	gstr := &midString{content: s}
	if s == "" {
		return gstr
	}
	gstr.breaks = make([]uint16, 1, len(s)/4+1)
	gstr.breaks[0] = 0
	it := NewIterator(s)
	br := 0
	for {
		g, ok := it.Next()
		if !ok {
			break
		}
		br += len(g.s)
		gstr.breaks = append(gstr.breaks, uint16(br))
	}
	return gstr
}

func (gstr *midString) Nth(n int) string {
	if n < 0 || n > maxInt(len(gstr.breaks)-2, 0) {
		panic(fmt.Sprintf("grapheme string index out of bounds, [%d] in [0:%d]",
			n, maxInt(len(gstr.breaks)-2, 0)))
	} else if len(gstr.breaks) < 2 {
		return ""
	}
	l, r := gstr.breaks[n], gstr.breaks[n+1]
	return gstr.content[l:r]
}

func (gstr *midString) Len() int {
	if len(gstr.breaks) < 2 {
		return 0
	}
	return len(gstr.breaks) - 1
}

// ---------------------------------------------------------------------------

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// positionOfFirstLegalRune is kept for symmetry with the teacher's
// original trimming behaviour: a grapheme string built from input with a
// broken leading byte sequence starts at the first legal rune instead of
// panicking.
func positionOfFirstLegalRune(s string) int {
	for i := 0; i < len(s); {
		if utf8.RuneStart(s[i]) {
			if r, _ := utf8.DecodeRuneInString(s[i:]); r != utf8.RuneError {
				return i
			}
		}
		i++
	}
	return -1
}
