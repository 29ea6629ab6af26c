package datagen

import (
	"slices"
	"testing"
)

func TestFillDeterministic(t *testing.T) {
	a := make([]int64, 1000)
	b := make([]int64, 1000)
	Fill(a, 0x1234)
	Fill(b, 0x1234)
	if !slices.Equal(a, b) {
		t.Error("Same seed produced different fills")
	}

	Fill(b, 0x5678)
	if slices.Equal(a, b) {
		t.Error("Different seeds produced identical fills")
	}
}

func TestFillPrefixStable(t *testing.T) {
	// Values depend only on (seed, index), so a shorter fill is a prefix of
	// a longer one.
	long := make([]int64, 200)
	short := make([]int64, 50)
	Fill(long, 42)
	Fill(short, 42)
	if !slices.Equal(short, long[:50]) {
		t.Error("Fill is not prefix-stable across lengths")
	}
}

func TestFillBounded(t *testing.T) {
	a := make([]int64, 1000)
	FillBounded(a, 0x1234, 10)
	for i, v := range a {
		if v < 0 || v >= 10 {
			t.Fatalf("index %d: value %d outside [0, 10)", i, v)
		}
	}
}

func TestFillShapes(t *testing.T) {
	t.Run("reversed", func(t *testing.T) {
		a := make([]int64, 100)
		FillReversed(a)
		if a[0] != 100 || a[99] != 1 {
			t.Errorf("expected 100..1, got ends %d, %d", a[0], a[99])
		}
		if slices.IsSorted(a) {
			t.Error("Reversed fill should be descending")
		}
	})

	t.Run("sorted", func(t *testing.T) {
		a := make([]int64, 100)
		FillSorted(a)
		if !slices.IsSorted(a) || a[0] != 1 || a[99] != 100 {
			t.Errorf("expected 1..100, got ends %d, %d", a[0], a[99])
		}
	})

	t.Run("constant", func(t *testing.T) {
		a := make([]int64, 10)
		FillConstant(a, 42)
		for _, v := range a {
			if v != 42 {
				t.Fatalf("expected 42, got %d", v)
			}
		}
	})
}
