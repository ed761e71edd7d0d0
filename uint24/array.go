/*
Package uint24 implements Array, a copy-on-write array of 24-bit unsigned
integers. It is the storage beneath cpset.Set's sorted interval-boundary
list: Unicode codepoints fit in 21 bits, so packing them into 3-byte cells
needs three quarters of the memory of 4-byte integers, and three eighths
of that of 8-byte integers, for a large codepoint set.

Storage layout follows §4.2 literally: the backing allocation is N×3
payload bytes followed by a 3-byte reference-count slot, so a shared
array and its live reference count travel together in one allocation —
the same "one buffer, one lifetime" discipline the teacher module applies
to its own tries (bidi/trie/hashtrie.go keeps link/sibling/ch as one
co-allocated set of parallel slices).

License

This project is provided under the terms of the UNLICENSE or the
3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'
*/
package uint24

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to ucore.uint24.
func tracer() tracing.Trace {
	return tracing.Select("ucore.uint24")
}

// MaxValue is the largest value an Array element can hold.
const MaxValue = 0xFFFFFF

// Array is a copy-on-write array of 24-bit unsigned integers. The zero
// value is a valid empty array.
//
// An alias registered through Share shares the backing buffer via the
// trailing reference count, and Set on either copy performs
// copy-if-shared first. Plain Go assignment of an Array also aliases the
// buffer but does not touch the reference count, so Set on such a copy
// writes through to the other. The reference
// count itself is NOT thread-safe (§5): an Array must not be mutated from
// one goroutine while aliased-and-read from another without external
// synchronization.
type Array struct {
	buf []byte // len == 3*n + 3; last 3 bytes are the refcount, little-endian
	n   int
}

// New creates an Array holding the given values.
func New(values ...uint32) Array {
	var a Array
	if len(values) == 0 {
		return a
	}
	a.buf = make([]byte, 3*len(values)+3)
	a.n = len(values)
	for i, v := range values {
		a.putPayload(i, v)
	}
	a.setRefcount(1)
	return a
}

// Len returns the number of elements.
func (a Array) Len() int { return a.n }

func (a Array) payloadOffset(i int) int { return 3 * i }

func (a Array) getPayload(i int) uint32 {
	o := a.payloadOffset(i)
	return uint32(a.buf[o]) | uint32(a.buf[o+1])<<8 | uint32(a.buf[o+2])<<16
}

func (a Array) putPayload(i int, v uint32) {
	o := a.payloadOffset(i)
	a.buf[o] = byte(v)
	a.buf[o+1] = byte(v >> 8)
	a.buf[o+2] = byte(v >> 16)
}

func (a Array) refcountOffset() int { return 3 * a.n }

func (a Array) refcount() uint32 {
	o := a.refcountOffset()
	return uint32(a.buf[o]) | uint32(a.buf[o+1])<<8 | uint32(a.buf[o+2])<<16
}

func (a Array) setRefcount(v uint32) {
	o := a.refcountOffset()
	a.buf[o] = byte(v)
	a.buf[o+1] = byte(v >> 8)
	a.buf[o+2] = byte(v >> 16)
}

// Get returns element i.
func (a Array) Get(i int) uint32 {
	if i < 0 || i >= a.n {
		panic(fmt.Sprintf("uint24: index %d out of range [0,%d)", i, a.n))
	}
	return a.getPayload(i)
}

// Set writes v at index i, performing copy-on-write first if the backing
// buffer is shared. v must fit in 24 bits; writing a larger value is a
// contract violation (§4.2) and panics.
func (a *Array) Set(i int, v uint32) {
	if i < 0 || i >= a.n {
		panic(fmt.Sprintf("uint24: index %d out of range [0,%d)", i, a.n))
	}
	if v > MaxValue {
		panic(fmt.Sprintf("uint24: value %d exceeds 24-bit range", v))
	}
	a.makeUnique()
	a.putPayload(i, v)
}

// makeUnique performs copy-if-shared: if refcount > 1, it allocates a
// fresh buffer, copies the payload (not the refcount), decrements the old
// refcount, and installs the new buffer with refcount 1.
func (a *Array) makeUnique() {
	if a.buf == nil {
		return
	}
	if a.refcount() <= 1 {
		return
	}
	tracer().Debugf("uint24: copy-on-write for array of length %d", a.n)
	newBuf := make([]byte, len(a.buf))
	copy(newBuf, a.buf[:3*a.n])
	old := a.buf
	a.decref(old)
	a.buf = newBuf
	a.setRefcount(1)
}

func (a Array) decref(buf []byte) {
	o := 3 * a.n
	v := uint32(buf[o]) | uint32(buf[o+1])<<8 | uint32(buf[o+2])<<16
	if v == 0 {
		return // already released by another copy's Set racing without sync; see §5
	}
	v--
	buf[o] = byte(v)
	buf[o+1] = byte(v >> 8)
	buf[o+2] = byte(v >> 16)
}

// Share returns a shallow copy of a that aliases the same backing buffer,
// incrementing the reference count. Ordinary Go assignment of an Array
// value aliases the buffer without this increment; Share is the only way
// to register an alias that Set's copy-on-write will recognize.
func (a Array) Share() Array {
	if a.buf == nil {
		return a
	}
	a.setRefcount(a.refcount() + 1)
	return Array{buf: a.buf, n: a.n}
}

// Append returns a new Array with v appended. If the receiver's buffer is
// unshared and has no spare room, Append still allocates, since Array
// does not keep capacity headroom (§4.2 describes no such headroom); the
// returned Array is always independently owned with refcount 1.
func (a Array) Append(v uint32) Array {
	if v > MaxValue {
		panic(fmt.Sprintf("uint24: value %d exceeds 24-bit range", v))
	}
	out := Array{buf: make([]byte, 3*(a.n+1)+3), n: a.n + 1}
	if a.buf != nil {
		copy(out.buf, a.buf[:3*a.n])
	}
	out.putPayload(a.n, v)
	out.setRefcount(1)
	return out
}

// Slice returns a new, independently-owned Array holding elements
// [lo,hi) of a.
func (a Array) Slice(lo, hi int) Array {
	if lo < 0 || hi > a.n || lo > hi {
		panic(fmt.Sprintf("uint24: slice [%d:%d] out of range for length %d", lo, hi, a.n))
	}
	out := Array{buf: make([]byte, 3*(hi-lo)+3), n: hi - lo}
	if hi > lo {
		copy(out.buf, a.buf[3*lo:3*hi])
	}
	out.setRefcount(1)
	return out
}

// Equal reports whether a and b hold the same sequence of values.
func (a Array) Equal(b Array) bool {
	if a.n != b.n {
		return false
	}
	for i := 0; i < a.n; i++ {
		if a.getPayload(i) != b.getPayload(i) {
			return false
		}
	}
	return true
}

// ToSlice copies the array's contents into a plain []uint32.
func (a Array) ToSlice() []uint32 {
	out := make([]uint32, a.n)
	for i := range out {
		out[i] = a.getPayload(i)
	}
	return out
}

// refcountForTesting exposes the raw refcount for white-box COW tests.
func (a Array) refcountForTesting() uint32 {
	if a.buf == nil {
		return 0
	}
	return a.refcount()
}
