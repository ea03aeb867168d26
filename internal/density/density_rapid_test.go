package density

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

// --- Generators ---

// genContiguous builds an exhaustive set by cutting [0, inf) at random points.
func genContiguous() *rapid.Generator[[]Threshold] {
	return rapid.Custom(func(t *rapid.T) []Threshold {
		n := rapid.IntRange(1, 8).Draw(t, "n")
		list := make([]Threshold, 0, n)
		lo := 0
		for i := 0; i < n-1; i++ {
			width := rapid.IntRange(1, 10).Draw(t, fmt.Sprintf("width%d", i))
			list = append(list, Threshold{Match: Between(lo, lo+width-1), Level: i})
			lo += width
		}
		list = append(list, Threshold{Match: AtLeast(lo), Level: n - 1})
		return rapid.Permutation(list).Draw(t, "order")
	})
}

// --- Property Tests ---

func TestRapidDefault_TotalAndDeterministic(t *testing.T) {
	thresholds := Default()
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(0, 1<<30).Draw(t, "count")

		a, err := thresholds.Classify(count)
		if err != nil {
			t.Fatalf("Classify(%d): %v", count, err)
		}
		b, _ := thresholds.Classify(count)
		if a != b {
			t.Fatalf("Classify(%d) not deterministic: %d vs %d", count, a, b)
		}
		if a < 0 || a > 4 {
			t.Fatalf("Classify(%d) = %d, outside 0..4", count, a)
		}
	})
}

func TestRapidDefault_Monotonic(t *testing.T) {
	thresholds := Default()
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.IntRange(0, 100).Draw(t, "a")
		b := rapid.IntRange(a, 100).Draw(t, "b")

		la, _ := thresholds.Classify(a)
		lb, _ := thresholds.Classify(b)
		if la > lb {
			t.Fatalf("Classify(%d) = %d > Classify(%d) = %d", a, la, b, lb)
		}
	})
}

func TestRapidNew_ContiguousSetsAreExhaustive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		list := genContiguous().Draw(t, "thresholds")

		thresholds, err := New(list...)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		count := rapid.IntRange(0, 1000).Draw(t, "count")
		if _, err := thresholds.Classify(count); err != nil {
			t.Fatalf("Classify(%d): %v", count, err)
		}
	})
}

func TestRapidNew_DroppingARangeLeavesAGap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		list := genContiguous().Draw(t, "thresholds")
		if len(list) < 2 {
			t.Skip("need at least two ranges")
		}
		drop := rapid.IntRange(0, len(list)-1).Draw(t, "drop")
		rest := append(append([]Threshold(nil), list[:drop]...), list[drop+1:]...)

		if _, err := New(rest...); err == nil {
			t.Fatalf("New without %v succeeded, expected ErrNotExhaustive", list[drop].Match)
		}
	})
}
