// task_test.go tests the recursion controller: the serial fallback, the
// end-to-end stability guarantee (through the comparator-carrying sorter,
// since equal cmp.Ordered values are indistinguishable from outside), and
// element types beyond int64.
package forksort

import (
	"slices"
	"strings"
	"testing"
)

func TestSerialFallbackSortsRange(t *testing.T) {
	rng := newTestRNG(t)
	primary := make([]int64, 333)
	for i := range primary {
		primary[i] = rng.Int64N(50)
	}
	want := slices.Clone(primary)
	slices.Sort(want)

	s := newIntSorter(primary, make([]int64, len(primary)))
	s.serial(0, len(primary)-1)

	if !slices.Equal(primary, want) {
		t.Error("serial sort mismatch with reference")
	}
}

func TestSortStability(t *testing.T) {
	type pair struct {
		key int64
		idx int
	}
	rng := newTestRNG(t)

	for _, cutoff := range []int{0, 2, 4} {
		primary := make([]pair, 1000)
		for i := range primary {
			// Few distinct keys: every key group has many members
			primary[i] = pair{key: rng.Int64N(10), idx: i}
		}

		err := sortFunc(primary, make([]pair, len(primary)), cutoff,
			func(a, b pair) bool { return a.key < b.key })
		if err != nil {
			t.Fatalf("cutoff=%d: %v", cutoff, err)
		}

		for i := 1; i < len(primary); i++ {
			if primary[i-1].key > primary[i].key {
				t.Fatalf("cutoff=%d: not sorted at %d", cutoff, i)
			}
			if primary[i-1].key == primary[i].key && primary[i-1].idx >= primary[i].idx {
				t.Fatalf("cutoff=%d: stability violated at %d: idx %d before %d",
					cutoff, i, primary[i-1].idx, primary[i].idx)
			}
		}
	}
}

func TestSortStrings(t *testing.T) {
	primary := strings.Split("pear fig apple mango fig banana kiwi apple", " ")
	want := slices.Clone(primary)
	slices.Sort(want)

	if err := Sort(primary, make([]string, len(primary)), 2); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(primary, want) {
		t.Errorf("expected %v, got %v", want, primary)
	}
}

func TestSortFloats(t *testing.T) {
	primary := []float64{3.5, -0.25, 3.5, 0, 11, -7.75}
	want := slices.Clone(primary)
	slices.Sort(want)

	if err := Sort(primary, make([]float64, len(primary)), 1); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(primary, want) {
		t.Errorf("expected %v, got %v", want, primary)
	}
}
