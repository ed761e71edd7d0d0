/*
Package casefold implements §4.6's case folding and comparison: sicmp
(simple case-insensitive compare), icmp (full case-insensitive compare,
which may consume more than one codepoint from one side via a
multi-codepoint fold bucket such as ß -> "ss"), and toLower/toUpper.

It supplements §4.6 with locale sensitivity (§4.9 of SPEC_FULL.md):
default case folding maps Turkic dotless/dotted I incorrectly for tr/az
locales, so Mode selects between DefaultFold and TurkicFold, and
SystemLocale/ModeForLocale detect and apply the right one the way
uax11.ContextFromEnvironment detects the host's East Asian width context.

License

This project is provided under the terms of the UNLICENSE or the
3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'
*/
package casefold

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/ucore/ucd/udata"
	"golang.org/x/text/language"
)

// tracer traces to ucore.casefold.
func tracer() tracing.Trace {
	return tracing.Select("ucore.casefold")
}

// Mode selects the case-folding rule set.
type Mode int

const (
	// DefaultFold applies Unicode's default case folding.
	DefaultFold Mode = iota
	// TurkicFold additionally applies the Unicode 3.2 'T' mapping: ASCII
	// 'I' folds to dotless ı (U+0131) rather than 'i', and İ (U+0130)
	// folds to 'i' with no combining dot above, per the documented
	// Turkic exception ICU's ucase.c (reached here via
	// other_examples/vitessio-vitess__fold.go's comment block) carries
	// for tr/az locales.
	TurkicFold
)

const (
	dotlessI       = 0x0131
	capitalIWithDot = 0x0130
)

// SystemLocale detects the host's IETF locale tag via jibber_jabber,
// falling back to language.Und on error exactly as uax11.ContextFromEnvironment
// falls back to "en-US" on jj.DetectIETF failure.
func SystemLocale() language.Tag {
	tag, err := jj.DetectIETF()
	if err != nil {
		tracer().Infof("casefold: could not detect system locale, using Und: %v", err)
		return language.Und
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		tracer().Infof("casefold: could not parse detected locale %q, using Und: %v", tag, err)
		return language.Und
	}
	return parsed
}

// ModeForLocale returns TurkicFold iff tag's base language is Turkish or
// Azerbaijani, else DefaultFold.
func ModeForLocale(tag language.Tag) Mode {
	base, confidence := tag.Base()
	if confidence == language.No {
		return DefaultFold
	}
	switch base.String() {
	case "tr", "az":
		return TurkicFold
	default:
		return DefaultFold
	}
}

// simpleFold returns the simple case fold of c under mode.
func simpleFold(c uint32, mode Mode) uint32 {
	if mode == TurkicFold {
		switch c {
		case 'I':
			return dotlessI
		case capitalIWithDot:
			return 'i'
		}
	}
	return udata.SimpleFold(c)
}

// fullFold returns the full case fold of c under mode, as a sequence of
// one or more codepoints.
func fullFold(c uint32, mode Mode) []uint32 {
	if mode == TurkicFold {
		switch c {
		case 'I':
			return []uint32{dotlessI}
		case capitalIWithDot:
			return []uint32{'i'}
		}
	}
	return udata.FullFold(c)
}

// sicmp compares a and b codepoint-by-codepoint under simple case
// folding: -1, 0 or 1, as strings.Compare would, and only ever consumes
// exactly one codepoint from each side per comparison step.
func sicmp(a, b []rune, mode Mode) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		fa, fb := simpleFold(uint32(a[i]), mode), simpleFold(uint32(b[i]), mode)
		if fa != fb {
			if fa < fb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// icmp compares a and b under full case folding. Each side is expanded
// through fullFold (so a bucket match, such as ß -> "ss", may consume
// 1..N codepoints' worth of the other side's remaining input once both
// sides are expanded) and the two resulting flat fold sequences are
// compared; this reaches the same result §4.6 describes via a streaming
// consume-as-you-go comparator, just by folding eagerly first rather than
// tracking a variable consumption window — simpler, at the cost of
// allocating the two folded sequences up front rather than streaming.
func icmp(a, b []rune, mode Mode) int {
	return compareSeq(flatten(a, mode), flatten(b, mode))
}

func flatten(s []rune, mode Mode) []uint32 {
	out := make([]uint32, 0, len(s))
	for _, r := range s {
		out = append(out, fullFold(uint32(r), mode)...)
	}
	return out
}

func compareSeq(a, b []uint32) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for k := 0; k < n; k++ {
		if a[k] != b[k] {
			if a[k] < b[k] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// toLower and toUpper implement §4.6's single-codepoint case mappings.
func toLower(c uint32, mode Mode) uint32 {
	if mode == TurkicFold {
		switch c {
		case 'I':
			return dotlessI
		case capitalIWithDot:
			return 'i'
		}
	}
	return udata.ToLower(c)
}

func toUpper(c uint32, mode Mode) uint32 {
	if mode == TurkicFold {
		switch c {
		case dotlessI:
			return 'I'
		case 'i':
			return capitalIWithDot
		}
	}
	return udata.ToUpper(c)
}

// Sicmp, Icmp, ToLower and ToUpper are the spec's unparameterized entry
// points, using DefaultFold — every operation spec.md names, unchanged.
func Sicmp(a, b string) int { return sicmp([]rune(a), []rune(b), DefaultFold) }
func Icmp(a, b string) int  { return icmp([]rune(a), []rune(b), DefaultFold) }
func ToLower(c rune) rune   { return rune(toLower(uint32(c), DefaultFold)) }
func ToUpper(c rune) rune   { return rune(toUpper(uint32(c), DefaultFold)) }

// SicmpMode, IcmpMode, ToLowerMode and ToUpperMode take an explicit Mode,
// for callers that have already resolved a locale via ModeForLocale.
func SicmpMode(a, b string, mode Mode) int { return sicmp([]rune(a), []rune(b), mode) }
func IcmpMode(a, b string, mode Mode) int  { return icmp([]rune(a), []rune(b), mode) }
func ToLowerMode(c rune, mode Mode) rune   { return rune(toLower(uint32(c), mode)) }
func ToUpperMode(c rune, mode Mode) rune   { return rune(toUpper(uint32(c), mode)) }
