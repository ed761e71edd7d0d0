/*
Package ucore is the engine room underneath a Unicode primitives library:
codepoint sets, a compressed multi-stage trie, and a normalization engine,
plus the case-folding and grapheme-cluster machinery built on top of them.

Description

Classification predicates, case-insensitive comparison and the four
Normalization Forms all reduce, at the bottom, to one of two things: a
membership test against an interval list, or a lookup in a small bit-packed
table. This module builds those two primitives once, carefully, and then
builds everything else — normalization, case folding, grapheme iteration —
on top of them.

	cpset.Set        — interval-list codepoint sets with value semantics
	utrie.Trie[V]     — a generic N-stage lookup table
	norm.Form         — NFC / NFD / NFKC / NFKD
	casefold          — simple and full case-insensitive comparison
	grapheme          — user-perceived character iteration

Contents

Sub-packages are organized leaves-first:

	bits    — PackedBitArray / MultiArray, the bit-packed storage substrate
	uint24  — a copy-on-write array of 24-bit integers
	cpset   — CodepointSet, built on uint24
	utrie   — Trie / TrieBuilder, built on bits
	ucd     — varint interval decoding and property-name resolution
	norm    — the normalization engine, built on utrie (via ucd/udata)
	casefold — case folding and comparison, built on ucd/udata's case tables
	grapheme — grapheme cluster iteration, built on cpset and utrie
	cmd/gensetcode — source-code emitter for a frozen property predicate

Out of scope (see spec.md and SPEC_FULL.md Non-goals): locale-tailored
collation, the bidirectional algorithm, line breaking, UTS#46, and CLDR
property coverage beyond General_Category/Script/Block plus a fixed set
of binary properties.

License

This project is provided under the terms of the UNLICENSE or the
3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license. Licenses are
reproduced in the license file in the root folder of this module.
*/
package ucore

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
