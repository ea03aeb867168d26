package aggregation

import (
	"iter"
	"sort"

	"github.com/masmgr/commitheat/internal/calendar"
)

// DateCounts maps a calendar date to the number of commits authored on it.
type DateCounts map[calendar.Date]int

// CountByDate consumes dates in a single pass. Input order does not matter.
// The first error from the sequence is returned together with the counts gathered so far.
func CountByDate(dates iter.Seq2[calendar.Date, error]) (DateCounts, error) {
	counts := make(DateCounts)
	for d, err := range dates {
		if err != nil {
			return counts, err
		}
		counts[d]++
	}
	return counts, nil
}

// Get returns the count for d, or 0 when absent.
func (c DateCounts) Get(d calendar.Date) int {
	return c[d]
}

// Total returns the sum of all counts.
func (c DateCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Max returns the highest single-day count.
func (c DateCounts) Max() int {
	maxCount := 0
	for _, n := range c {
		if n > maxCount {
			maxCount = n
		}
	}
	return maxCount
}

// Dates returns the keys in ascending order.
func (c DateCounts) Dates() []calendar.Date {
	dates := make([]calendar.Date, 0, len(c))
	for d := range c {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}
