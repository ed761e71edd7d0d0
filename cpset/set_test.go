package cpset

import (
	"reflect"
	"testing"
)

func ivals(s Set) [][2]uint32 {
	out := make([][2]uint32, 0, s.Len())
	for _, iv := range s.Intervals() {
		out = append(out, [2]uint32{iv.Lo, iv.Hi})
	}
	return out
}

func TestContains(t *testing.T) {
	s := FromIntervals([2]uint32{10, 20}, [2]uint32{40, 60})
	for _, c := range []uint32{10, 15, 19, 40, 59} {
		if !s.Contains(c) {
			t.Errorf("expected %d to be a member", c)
		}
	}
	for _, c := range []uint32{9, 20, 39, 60, 100} {
		if s.Contains(c) {
			t.Errorf("expected %d to NOT be a member", c)
		}
	}
}

// TestAddCoalesces is the concrete scenario of §8 item 6.
func TestAddCoalesces(t *testing.T) {
	s := FromIntervals([2]uint32{10, 20}, [2]uint32{40, 60})
	s.Add(5, 15)
	want := [][2]uint32{{5, 20}, {40, 60}}
	if got := ivals(s); !reflect.DeepEqual(got, want) {
		t.Fatalf("after add(5,15): got %v, want %v", got, want)
	}

	s.Add(3, 37)
	want = [][2]uint32{{3, 37}, {40, 60}}
	if got := ivals(s); !reflect.DeepEqual(got, want) {
		t.Fatalf("after add(3,37): got %v, want %v", got, want)
	}
}

// TestSubtract is the concrete scenario of §8 item 6.
func TestSubtract(t *testing.T) {
	a := FromIntervals([2]uint32{20, 40}, [2]uint32{60, 80}, [2]uint32{100, 140}, [2]uint32{150, 200})
	b := FromIntervals([2]uint32{30, 60}, [2]uint32{75, 120})
	got := ivals(a.Subtract(b))
	want := [][2]uint32{{20, 30}, {60, 75}, {120, 140}, {150, 200}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("subtract: got %v, want %v", got, want)
	}
}

func TestUnion(t *testing.T) {
	a := FromIntervals([2]uint32{0, 10}, [2]uint32{50, 60})
	b := FromIntervals([2]uint32{5, 20}, [2]uint32{100, 110})
	got := ivals(a.Union(b))
	want := [][2]uint32{{0, 20}, {50, 60}, {100, 110}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("union: got %v, want %v", got, want)
	}
}

func TestIntersect(t *testing.T) {
	a := FromIntervals([2]uint32{0, 10}, [2]uint32{20, 40})
	b := FromIntervals([2]uint32{5, 25}, [2]uint32{35, 50})
	got := ivals(a.Intersect(b))
	want := [][2]uint32{{5, 10}, {20, 25}, {35, 40}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("intersect: got %v, want %v", got, want)
	}
}

func TestInvert(t *testing.T) {
	a := FromIntervals([2]uint32{10, 20})
	got := ivals(a.Invert())
	want := [][2]uint32{{0, 10}, {20, high}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("invert: got %v, want %v", got, want)
	}
	// double invert must round-trip.
	back := a.Invert().Invert()
	if !back.Equal(a) {
		t.Fatalf("double invert did not round-trip: got %v", ivals(back))
	}
}

func TestInvertEmptyAndFull(t *testing.T) {
	empty := New()
	got := ivals(empty.Invert())
	want := [][2]uint32{{0, high}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("invert empty: got %v, want %v", got, want)
	}
	full := empty.Invert()
	got2 := ivals(full.Invert())
	if len(got2) != 0 {
		t.Fatalf("invert full: got %v, want empty", got2)
	}
}

// TestSetAlgebraLaws checks the commutativity/associativity/idempotence
// laws of §8 over a handful of overlapping sets.
func TestSetAlgebraLaws(t *testing.T) {
	a := FromIntervals([2]uint32{0, 10}, [2]uint32{20, 30})
	b := FromIntervals([2]uint32{5, 25})
	c := FromIntervals([2]uint32{8, 22}, [2]uint32{50, 60})

	if !a.Union(b).Equal(b.Union(a)) {
		t.Error("union not commutative")
	}
	if !a.Intersect(b).Equal(b.Intersect(a)) {
		t.Error("intersect not commutative")
	}
	if !a.Union(b).Union(c).Equal(a.Union(b.Union(c))) {
		t.Error("union not associative")
	}
	if !a.Intersect(b).Intersect(c).Equal(a.Intersect(b.Intersect(c))) {
		t.Error("intersect not associative")
	}
	if !a.Union(a).Equal(a) {
		t.Error("union not idempotent")
	}
	if !a.Intersect(a).Equal(a) {
		t.Error("intersect not idempotent")
	}
	if !a.SymDiff(b).Equal(a.Union(b).Subtract(a.Intersect(b))) {
		t.Error("symdiff does not match (a∪b)-(a∩b)")
	}
}

func TestContainsRange(t *testing.T) {
	s := FromIntervals([2]uint32{10, 20})
	if !s.ContainsRange(12, 18) {
		t.Error("expected [12,18) to be contained")
	}
	if s.ContainsRange(15, 25) {
		t.Error("did not expect [15,25) to be contained")
	}
}

func TestLength(t *testing.T) {
	s := FromIntervals([2]uint32{0, 10}, [2]uint32{100, 105})
	if got := s.Length(); got != 15 {
		t.Fatalf("Length() = %d, want 15", got)
	}
}

func TestCodepoints(t *testing.T) {
	s := FromIntervals([2]uint32{5, 8})
	got := s.Codepoints()
	want := []uint32{5, 6, 7}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Codepoints() = %v, want %v", got, want)
	}
}

// TestValueSemantics checks that mutating a cloned Set via Add does not
// affect the original, per §4.3's copy-on-write value semantics.
func TestValueSemantics(t *testing.T) {
	a := FromIntervals([2]uint32{0, 10})
	b := a
	b.Add(20, 30)
	if a.Len() != 1 {
		t.Fatalf("mutating b leaked into a: a has %d intervals", a.Len())
	}
	if b.Len() != 2 {
		t.Fatalf("b should have 2 intervals, has %d", b.Len())
	}
}

// TestValueSemanticsSameBoundaryCount guards against a tempting but
// unsound optimization: extending b's single interval leaves it with the
// same boundary count as a (2: one lo, one hi), so a naive "same length,
// write in place" shortcut would be able to reuse a.b's backing array.
// That would be wrong — a and b alias the same uint24.Array via plain Go
// assignment, which never calls Array.Share, so Array.Set's
// copy-on-write could not tell they are aliased and would mutate a's
// storage through b. replaceArray always rebuilds instead, so a must
// stay untouched here regardless of boundary-count coincidences.
func TestValueSemanticsSameBoundaryCount(t *testing.T) {
	a := FromIntervals([2]uint32{0, 10})
	b := a
	b.Add(5, 15)
	if !a.Equal(FromIntervals([2]uint32{0, 10})) {
		t.Fatalf("mutating b leaked into a: a = %v", a)
	}
	if !b.Equal(FromIntervals([2]uint32{0, 15})) {
		t.Fatalf("b should be [0,15), got %v", b)
	}
}
