// Package burst finds concentrated activity in per-day commit counts.
package burst

import (
	"github.com/masmgr/commitheat/internal/aggregation"
	"github.com/masmgr/commitheat/internal/calendar"
)

// DefaultWindowDays is one grid column.
const DefaultWindowDays = 7

// Window is a run of consecutive days and the commits inside it.
type Window struct {
	Start calendar.Date
	End   calendar.Date
	Count int
}

// Calculator measures bursts over a fixed-length window of days.
type Calculator struct {
	windowDays int
}

// NewCalculator creates a new burst calculator.
func NewCalculator(windowDays int) *Calculator {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &Calculator{windowDays: windowDays}
}

// BusiestWindow returns the earliest window of windowDays days inside r with the most commits.
// A range shorter than the window yields the whole range.
func (c *Calculator) BusiestWindow(counts aggregation.DateCounts, r calendar.Range) Window {
	days := r.Days()
	size := min(c.windowDays, days)

	// Two-pointer sliding sum: O(days).
	sum := 0
	for i := range size {
		sum += counts.Get(r.Start.AddDays(i))
	}
	best := Window{Start: r.Start, End: r.Start.AddDays(size - 1), Count: sum}

	for right := size; right < days; right++ {
		sum += counts.Get(r.Start.AddDays(right))
		sum -= counts.Get(r.Start.AddDays(right - size))
		if sum > best.Count {
			best = Window{Start: r.Start.AddDays(right - size + 1), End: r.Start.AddDays(right), Count: sum}
		}
	}
	return best
}

// Score is the share of all commits in r that fall in the busiest window, in [0, 1].
// Zero commits score 0.
func (c *Calculator) Score(counts aggregation.DateCounts, r calendar.Range) float64 {
	total := 0
	for d := range r.Each() {
		total += counts.Get(d)
	}
	if total == 0 {
		return 0.0
	}
	return float64(c.BusiestWindow(counts, r).Count) / float64(total)
}

// Streaks returns the longest run of consecutive active days in r and the run ending on r.End.
func Streaks(counts aggregation.DateCounts, r calendar.Range) (longest, current int) {
	for d := range r.Each() {
		if counts.Get(d) > 0 {
			current++
			longest = max(longest, current)
		} else {
			current = 0
		}
	}
	return longest, current
}
