package ucd

import (
	"testing"

	"github.com/npillmayer/ucore/cpset"
)

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"White_Space":   "whitespace",
		"white-space":    "whitespace",
		"  WHITE SPACE ": "whitespace",
		"Lu":             "lu",
	}
	for in, want := range cases {
		if got := NormalizeName(in); got != want {
			t.Errorf("NormalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolveComposedNames(t *testing.T) {
	any, ok := Resolve("any")
	if !ok || !any.ContainsRange(0, 0x110000) {
		t.Fatalf("any did not resolve to the full domain")
	}
	ascii, ok := Resolve("ASCII")
	if !ok || !ascii.ContainsRange(0, 0x80) || ascii.Contains(0x80) {
		t.Fatalf("ascii did not resolve to [0, 0x80)")
	}
	l, ok := Resolve("L")
	if !ok {
		t.Fatal("L did not resolve")
	}
	if !l.Contains('A') || !l.Contains('a') || l.Contains('1') {
		t.Errorf("L should contain letters and exclude digits")
	}
}

func TestResolveUnknown(t *testing.T) {
	if _, ok := Resolve("NoSuchProperty"); ok {
		t.Error("expected unknown property to not resolve")
	}
	if _, err := ResolveOrErr("NoSuchProperty"); err != ErrUnknownProperty {
		t.Errorf("expected ErrUnknownProperty, got %v", err)
	}
}

func TestDecodeIntervalsRoundTrip(t *testing.T) {
	set := cpset.FromIntervals([2]uint32{0x41, 0x5B}, [2]uint32{0x100, 0x180})
	stream := EncodeIntervals(set)
	decoded, err := DecodeIntervals(stream)
	if err != nil {
		t.Fatalf("DecodeIntervals: %v", err)
	}
	if !decoded.Equal(set) {
		t.Errorf("round trip mismatch: got %v, want %v", decoded, set)
	}
}

func TestDecodeIntervalsOddLengthImplicitEnd(t *testing.T) {
	// A single 7-bit delta (just 0x41) is an odd-length value stream: the
	// implicit close is the domain end.
	decoded, err := DecodeIntervals([]byte{0x41})
	if err != nil {
		t.Fatalf("DecodeIntervals: %v", err)
	}
	if !decoded.Contains(0x41) || !decoded.Contains(0x10FFFF) {
		t.Errorf("expected the implicit close at the domain end, got %v", decoded)
	}
}

func TestDecodeIntervalsMalformed(t *testing.T) {
	// A 13-bit lead byte with no payload byte following it.
	if _, err := DecodeIntervals([]byte{0x80}); err != ErrMalformedStream {
		t.Errorf("expected ErrMalformedStream, got %v", err)
	}
	// A 21-bit lead byte with only one payload byte following it.
	if _, err := DecodeIntervals([]byte{0xA0, 0x01}); err != ErrMalformedStream {
		t.Errorf("expected ErrMalformedStream, got %v", err)
	}
}

func TestDecodeIntervalsWideDelta(t *testing.T) {
	// The first delta, 0 -> 0x1041, needs the 13-bit lead form.
	stream := EncodeIntervals(cpset.FromIntervals([2]uint32{0x1041, 0x1100}))
	decoded, err := DecodeIntervals(stream)
	if err != nil {
		t.Fatalf("DecodeIntervals: %v", err)
	}
	if !decoded.ContainsRange(0x1041, 0x1100) {
		t.Errorf("wide-delta round trip failed: %v", decoded)
	}
}
