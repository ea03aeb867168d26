// Package density buckets per-day commit counts into a small number of levels.
package density

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrNotExhaustive is returned when a threshold set leaves some count unclassified.
var ErrNotExhaustive = errors.New("density thresholds do not cover every count")

// ClassificationError reports a count that matched no threshold.
// It indicates a broken threshold set, never bad user input.
type ClassificationError struct {
	Count int
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("no density threshold matches count %d", e.Count)
}

// Predicate matches counts in the inclusive range [Min, Max].
// With Unbounded set, Max is ignored and there is no upper limit.
type Predicate struct {
	Min       int
	Max       int
	Unbounded bool
}

// Exactly matches a single count.
func Exactly(n int) Predicate { return Predicate{Min: n, Max: n} }

// Between matches lo..hi inclusive.
func Between(lo, hi int) Predicate { return Predicate{Min: lo, Max: hi} }

// AtLeast matches lo and everything above it.
func AtLeast(lo int) Predicate { return Predicate{Min: lo, Unbounded: true} }

// Matches reports whether count falls within the predicate.
func (p Predicate) Matches(count int) bool {
	return count >= p.Min && (p.Unbounded || count <= p.Max)
}

func (p Predicate) String() string {
	if p.Unbounded {
		return fmt.Sprintf(">=%d", p.Min)
	}
	if p.Min == p.Max {
		return fmt.Sprintf("=%d", p.Min)
	}
	return fmt.Sprintf("%d..%d", p.Min, p.Max)
}

// Threshold pairs a predicate with the level it assigns.
type Threshold struct {
	Match Predicate
	Level int
}

// Thresholds is an ordered, validated threshold set. The first match wins.
type Thresholds struct {
	list []Threshold
}

// New validates the thresholds and returns them as a set.
// Every non-negative count must be matched by at least one predicate.
func New(list ...Threshold) (Thresholds, error) {
	for i, th := range list {
		p := th.Match
		if p.Min < 0 {
			return Thresholds{}, fmt.Errorf("threshold %d: minimum %d is negative", i, p.Min)
		}
		if !p.Unbounded && p.Max < p.Min {
			return Thresholds{}, fmt.Errorf("threshold %d: maximum %d is below minimum %d", i, p.Max, p.Min)
		}
		if th.Level < 0 {
			return Thresholds{}, fmt.Errorf("threshold %d: level %d is negative", i, th.Level)
		}
	}
	if gap, ok := firstUncovered(list); ok {
		return Thresholds{}, fmt.Errorf("%w: first unmatched count is %d", ErrNotExhaustive, gap)
	}
	return Thresholds{list: append([]Threshold(nil), list...)}, nil
}

// MustNew is like New but panics on an invalid set.
func MustNew(list ...Threshold) Thresholds {
	t, err := New(list...)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns the production thresholds: 0, 1-2, 3-5, 6-7, 8+.
func Default() Thresholds {
	return MustNew(
		Threshold{Match: Exactly(0), Level: 0},
		Threshold{Match: Between(1, 2), Level: 1},
		Threshold{Match: Between(3, 5), Level: 2},
		Threshold{Match: Between(6, 7), Level: 3},
		Threshold{Match: AtLeast(8), Level: 4},
	)
}

// Classify returns the level of the first predicate matching count.
func (t Thresholds) Classify(count int) (int, error) {
	for _, th := range t.list {
		if th.Match.Matches(count) {
			return th.Level, nil
		}
	}
	return 0, &ClassificationError{Count: count}
}

// MaxLevel returns the highest level any threshold assigns.
func (t Thresholds) MaxLevel() int {
	maxLevel := 0
	for _, th := range t.list {
		if th.Level > maxLevel {
			maxLevel = th.Level
		}
	}
	return maxLevel
}

// List returns a copy of the thresholds in evaluation order.
func (t Thresholds) List() []Threshold {
	return append([]Threshold(nil), t.list...)
}

// firstUncovered sweeps the predicate ranges in ascending order of Min and
// returns the smallest non-negative count none of them match.
func firstUncovered(list []Threshold) (int, bool) {
	preds := make([]Predicate, len(list))
	for i, th := range list {
		preds[i] = th.Match
	}
	sort.Slice(preds, func(i, j int) bool { return preds[i].Min < preds[j].Min })

	next := 0
	for _, p := range preds {
		if p.Min > next {
			return next, true
		}
		if p.Unbounded {
			return 0, false
		}
		if p.Max >= next {
			if p.Max == math.MaxInt {
				return 0, false
			}
			next = p.Max + 1
		}
	}
	return next, true
}
