/*
Package udata is the "opaque external collaborator" of §1/§6: a small,
hand-authored but real (not mocked) Unicode dataset covering enough of
General_Category, Script, Block, a fixed set of binary properties,
combining class, canonical/compatibility decomposition, Quick_Check and
case-fold buckets to exercise ucd, norm, casefold and grapheme end to
end, and to satisfy the concrete scenarios of §8.

Coverage is intentionally far short of the full UCD — ASCII, Latin-1,
Greek, Cyrillic, a representative slice of Han and the Hangul blocks —
since the subject of this module is the lookup/normalization engine, not
data completeness. Nothing downstream should assume any codepoint outside
this coverage is classified correctly; the core's consumers (ucd, norm,
casefold, grapheme) treat these tables exactly as they would a full
generated one.

License

This project is provided under the terms of the UNLICENSE or the
3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'
*/
package udata

// GeneralCategories maps a two-letter General_Category abbreviation to its
// representative interval list.
var GeneralCategories = map[string][][2]uint32{
	"Lu": {{0x41, 0x5B}, {0xC0, 0xD7}, {0xD8, 0xDF}, {0x391, 0x3A2}, {0x3A3, 0x3AC}, {0x410, 0x430}},
	"Ll": {{0x61, 0x7B}, {0xDF, 0xF7}, {0xF8, 0x100}, {0x3AC, 0x3CA}, {0x430, 0x450}},
	"Lt": {{0x1C5, 0x1C6}, {0x1C8, 0x1C9}, {0x1CB, 0x1CC}, {0x1F2, 0x1F3}},
	"Lo": {{0x4E00, 0x9FFF}, {0xAC00, 0xD7A4}, {0x3041, 0x3097}},
	"Lm": {{0x2B0, 0x2C2}},
	"Mn": {{0x300, 0x370}},
	"Mc": {{0x903, 0x905}},
	"Me": {{0x488, 0x48A}},
	"Nd": {{0x30, 0x3A}},
	"Nl": {{0x2160, 0x2183}},
	"No": {{0xB2, 0xB4}, {0xB9, 0xBA}, {0xBC, 0xBF}, {0x2070, 0x2071}, {0x2074, 0x207A}},
	"Pc": {{0x5F, 0x60}},
	"Pd": {{0x2D, 0x2E}},
	"Ps": {{0x28, 0x29}, {0x5B, 0x5C}, {0x7B, 0x7C}},
	"Pe": {{0x29, 0x2A}, {0x5D, 0x5E}, {0x7D, 0x7E}},
	"Pi": {{0x2018, 0x2019}, {0x201C, 0x201D}},
	"Pf": {{0x2019, 0x201A}, {0x201D, 0x201E}},
	"Po": {{0x21, 0x23}, {0x25, 0x28}, {0x2A, 0x2B}, {0x2C, 0x2D}, {0x2E, 0x30}, {0x3A, 0x3C}, {0x3F, 0x41}, {0x5C, 0x5D}},
	"Sm": {{0x2B, 0x2C}, {0x3C, 0x3F}, {0xD7, 0xD8}, {0xF7, 0xF8}},
	"Sc": {{0x24, 0x25}, {0xA2, 0xA6}},
	"Sk": {{0x5E, 0x5F}, {0x60, 0x61}, {0xA8, 0xA9}, {0xAF, 0xB0}, {0xB4, 0xB5}, {0xB8, 0xB9}},
	"So": {{0xA6, 0xA7}, {0xA9, 0xAA}, {0xAE, 0xAF}, {0xB0, 0xB1}},
	"Zs": {{0x20, 0x21}, {0xA0, 0xA1}},
	"Zl": {{0x2028, 0x2029}},
	"Zp": {{0x2029, 0x202A}},
	"Cc": {{0x0, 0x20}, {0x7F, 0xA0}},
	"Cf": {{0xAD, 0xAE}, {0x200B, 0x2010}, {0x2060, 0x2065}},
}

// Scripts maps a script name to its representative interval list.
var Scripts = map[string][][2]uint32{
	"Latin":    {{0x41, 0x5B}, {0x61, 0x7B}, {0xC0, 0xD7}, {0xD8, 0xF7}, {0xF8, 0x100}},
	"Greek":    {{0x370, 0x400}},
	"Cyrillic": {{0x400, 0x500}},
	"Han":      {{0x4E00, 0x9FFF}},
	"Hangul":   {{0x1100, 0x1200}, {0x3130, 0x3190}, {0xAC00, 0xD7A4}},
	"Common":   {{0x0, 0x41}, {0x5B, 0x61}, {0x7B, 0xC0}, {0xD7, 0xD8}, {0xF7, 0xF8}},
}

// Blocks maps a block name to its interval.
var Blocks = map[string][][2]uint32{
	"Basic Latin":             {{0x0, 0x80}},
	"Latin-1 Supplement":      {{0x80, 0x100}},
	"Combining Diacritical Marks": {{0x300, 0x370}},
	"Hangul Jamo":             {{0x1100, 0x1200}},
	"Hangul Syllables":        {{0xAC00, 0xD7A4}},
}

// BinaryProperties maps a fixed binary property name to its interval list.
var BinaryProperties = map[string][][2]uint32{
	"White_Space":      {{0x9, 0xE}, {0x20, 0x21}, {0x85, 0x86}, {0xA0, 0xA1}, {0x2028, 0x202A}},
	"Alphabetic":       {{0x41, 0x5B}, {0x61, 0x7B}, {0xC0, 0xD7}, {0xD8, 0xF7}, {0xF8, 0x100}, {0x370, 0x400}, {0x400, 0x500}, {0x4E00, 0x9FFF}, {0xAC00, 0xD7A4}},
	"Uppercase":        GeneralCategories["Lu"],
	"Lowercase":        GeneralCategories["Ll"],
	"Grapheme_Extend":  {{0x300, 0x370}, {0x488, 0x48A}},
	"Grapheme_Base":    {{0x20, 0x2FF}, {0x370, 0x483}, {0x48A, 0x4FF}, {0x4E00, 0x9FFF}, {0xAC00, 0xD7A4}},
}
