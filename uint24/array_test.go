package uint24

import "testing"

func TestArrayGetSet(t *testing.T) {
	a := New(1, 2, 3, 4)
	if a.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", a.Len())
	}
	a.Set(2, 99)
	if got := a.Get(2); got != 99 {
		t.Fatalf("Get(2) = %d, want 99", got)
	}
	if got := a.Get(0); got != 1 {
		t.Fatalf("Get(0) = %d, want 1", got)
	}
}

func TestArraySetOutOfRangeValuePanics(t *testing.T) {
	a := New(1, 2, 3)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic writing a value over 24 bits")
		}
	}()
	a.Set(0, MaxValue+1)
}

func TestArrayIndexOutOfRangePanics(t *testing.T) {
	a := New(1, 2, 3)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range index")
		}
	}()
	a.Get(3)
}

// TestArrayCopyOnWrite is the concrete COW scenario of §8: two aliases of
// the same array, one written to, must not observe each other's mutation,
// and after the copy-on-write each holds its own buffer with refcount 1.
func TestArrayCopyOnWrite(t *testing.T) {
	orig := New(10, 20, 30)
	alias := orig.Share()

	if got := orig.refcountForTesting(); got != 2 {
		t.Fatalf("refcount after Share() = %d, want 2", got)
	}

	alias.Set(1, 999)

	if got := orig.Get(1); got != 20 {
		t.Fatalf("orig.Get(1) = %d, want 20 (mutation leaked into original)", got)
	}
	if got := alias.Get(1); got != 999 {
		t.Fatalf("alias.Get(1) = %d, want 999", got)
	}
	if got := orig.refcountForTesting(); got != 1 {
		t.Fatalf("orig refcount after alias copy-on-write = %d, want 1", got)
	}
	if got := alias.refcountForTesting(); got != 1 {
		t.Fatalf("alias refcount after its own copy-on-write = %d, want 1", got)
	}
}

func TestArrayAppend(t *testing.T) {
	a := New(1, 2, 3)
	b := a.Append(4)
	if a.Len() != 3 {
		t.Fatalf("Append mutated receiver length: %d", a.Len())
	}
	if b.Len() != 4 || b.Get(3) != 4 {
		t.Fatalf("Append result wrong: len=%d, last=%d", b.Len(), b.Get(3))
	}
}

func TestArraySlice(t *testing.T) {
	a := New(10, 20, 30, 40, 50)
	s := a.Slice(1, 4)
	want := []uint32{20, 30, 40}
	got := s.ToSlice()
	if len(got) != len(want) {
		t.Fatalf("Slice length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slice[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestArrayEqual(t *testing.T) {
	a := New(1, 2, 3)
	b := New(1, 2, 3)
	c := New(1, 2, 4)
	if !a.Equal(b) {
		t.Error("expected a.Equal(b)")
	}
	if a.Equal(c) {
		t.Error("expected !a.Equal(c)")
	}
}

func TestEmptyArray(t *testing.T) {
	var a Array
	if a.Len() != 0 {
		t.Fatalf("zero value Len() = %d, want 0", a.Len())
	}
	b := a.Append(5)
	if b.Len() != 1 || b.Get(0) != 5 {
		t.Fatalf("Append to empty array failed")
	}
}
