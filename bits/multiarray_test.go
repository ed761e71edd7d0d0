package bits

import "testing"

func TestMultiArrayGetSetPerStage(t *testing.T) {
	ma := NewMultiArray([]Width{W8, W16, W32}, []int{10, 10, 10})
	for i := 0; i < 10; i++ {
		ma.Set(0, i, uint64(i))
		ma.Set(1, i, uint64(i*100))
		ma.Set(2, i, uint64(i*100000))
	}
	for i := 0; i < 10; i++ {
		if got := ma.Get(0, i); got != uint64(i) {
			t.Errorf("stage0[%d] = %d, want %d", i, got, i)
		}
		if got := ma.Get(1, i); got != uint64(i*100) {
			t.Errorf("stage1[%d] = %d, want %d", i, got, i*100)
		}
		if got := ma.Get(2, i); got != uint64(i*100000) {
			t.Errorf("stage2[%d] = %d, want %d", i, got, i*100000)
		}
	}
}

func TestMultiArrayTotalWordsInvariant(t *testing.T) {
	widths := []Width{W1, W4, W16}
	lengths := []int{130, 17, 5}
	ma := NewMultiArray(widths, lengths)
	want := 0
	for i, w := range widths {
		want += wordsFor(w, lengths[i])
	}
	if ma.TotalWords() != want {
		t.Fatalf("TotalWords() = %d, want %d", ma.TotalWords(), want)
	}
}

func TestMultiArrayGrowShiftsHigherStages(t *testing.T) {
	ma := NewMultiArray([]Width{W32, W32}, []int{2, 2})
	ma.Set(0, 0, 1)
	ma.Set(0, 1, 2)
	ma.Set(1, 0, 10)
	ma.Set(1, 1, 20)

	ma.Resize(0, 6) // grow stage 0; stage 1 must shift up but keep its values

	if ma.Get(0, 0) != 1 || ma.Get(0, 1) != 2 {
		t.Fatalf("stage 0 values corrupted by resize")
	}
	for i := 2; i < 6; i++ {
		if ma.Get(0, i) != 0 {
			t.Errorf("new slot %d not zeroed, got %d", i, ma.Get(0, i))
		}
	}
	if ma.Get(1, 0) != 10 || ma.Get(1, 1) != 20 {
		t.Fatalf("stage 1 values lost after stage 0 grew: got %d, %d", ma.Get(1, 0), ma.Get(1, 1))
	}

	want := wordsFor(W32, 6) + wordsFor(W32, 2)
	if ma.TotalWords() != want {
		t.Fatalf("TotalWords() after grow = %d, want %d", ma.TotalWords(), want)
	}
}

func TestMultiArrayShrinkPreservesHigherStages(t *testing.T) {
	ma := NewMultiArray([]Width{W8, W8}, []int{8, 2})
	for i := 0; i < 8; i++ {
		ma.Set(0, i, uint64(i))
	}
	ma.Set(1, 0, 111)
	ma.Set(1, 1, 222)

	ma.Resize(0, 3)

	for i := 0; i < 3; i++ {
		if got := ma.Get(0, i); got != uint64(i) {
			t.Errorf("stage 0[%d] = %d, want %d", i, got, i)
		}
	}
	if ma.Get(1, 0) != 111 || ma.Get(1, 1) != 222 {
		t.Fatalf("stage 1 values lost after stage 0 shrank")
	}
}
