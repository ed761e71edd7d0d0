/*
Package ucd implements the "external interfaces" surface of §6: decoding
the compressed interval streams the precompiled Unicode tables are shipped
as, and resolving a requested property name (Script, Block, General
Category, or one of the fixed binary properties, plus the composed names
"L", "graphical", "any", "ascii") to a cpset.Set.

The data this package resolves names against lives in ucd/udata, which the
core treats as an opaque external collaborator (§1): ucd builds its sets
from udata's interval tables, plus the two fixed ranges "any" and "ascii"
and unions of those sets for the composed names.

License

This project is provided under the terms of the UNLICENSE or the
3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'
*/
package ucd

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/ucore/cpset"
)

// tracer traces to ucore.ucd.
func tracer() tracing.Trace {
	return tracing.Select("ucore.ucd")
}

// ErrMalformedStream is returned by DecodeIntervals when the input ends
// mid-sequence (a lead byte promises payload bytes that are not there).
var ErrMalformedStream = errors.New("ucd: malformed compressed interval stream")

// domainEnd is the implicit closing boundary an odd-length decoded value
// stream gets, per §6: "an odd-length stream implies an implicit trailing
// end at 0x110000".
const domainEnd = uint32(0x110000)

// DecodeIntervals decodes a first-difference, variable-length-integer
// encoded interval stream (§6) into a cpset.Set.
//
// Each byte either carries a complete 7-bit delta (top bit 0), or is a
// lead byte introducing one (0b100xxxxx, 13-bit total) or two
// (0b101xxxxx, 21-bit total) payload bytes. Decoded values are cumulative
// deltas forming alternating interval-open/interval-close boundaries; an
// odd number of decoded values means the final open boundary's matching
// close is the implicit domain end.
func DecodeIntervals(stream []byte) (cpset.Set, error) {
	var values []uint32
	cur := uint32(0)
	i := 0
	for i < len(stream) {
		b := stream[i]
		var delta uint32
		switch {
		case b&0x80 == 0:
			delta = uint32(b)
			i++
		case b&0xE0 == 0x80:
			if i+1 >= len(stream) {
				return cpset.Set{}, ErrMalformedStream
			}
			delta = uint32(b&0x1F)<<8 | uint32(stream[i+1])
			i += 2
		case b&0xE0 == 0xA0:
			if i+2 >= len(stream) {
				return cpset.Set{}, ErrMalformedStream
			}
			delta = uint32(b&0x1F)<<16 | uint32(stream[i+1])<<8 | uint32(stream[i+2])
			i += 3
		default:
			return cpset.Set{}, ErrMalformedStream
		}
		cur += delta
		values = append(values, cur)
	}
	if len(values)%2 == 1 {
		values = append(values, domainEnd)
	}
	var set cpset.Set
	for j := 0; j < len(values); j += 2 {
		set.Add(values[j], values[j+1])
	}
	tracer().Debugf("ucd: decoded %d intervals from a %d-byte stream", len(values)/2, len(stream))
	return set, nil
}

// EncodeIntervals is the inverse of DecodeIntervals: it produces the
// compressed first-difference stream for set's boundaries. Within this
// module only the package tests call it; udata ships its properties as
// plain interval literals.
func EncodeIntervals(set cpset.Set) []byte {
	var out []byte
	prev := uint32(0)
	for _, iv := range set.Intervals() {
		out = appendVarint(out, iv.Lo-prev)
		prev = iv.Lo
		out = appendVarint(out, iv.Hi-prev)
		prev = iv.Hi
	}
	return out
}

func appendVarint(out []byte, v uint32) []byte {
	switch {
	case v < 1<<7:
		return append(out, byte(v))
	case v < 1<<13:
		return append(out, 0x80|byte(v>>8), byte(v))
	case v < 1<<21:
		return append(out, 0xA0|byte(v>>16), byte(v>>8), byte(v))
	default:
		panic("ucd: value too large for the compressed interval encoding")
	}
}
