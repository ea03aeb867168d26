// Package entropy measures how evenly activity is spread over buckets.
package entropy

import (
	"math"

	"github.com/masmgr/commitheat/internal/aggregation"
	"github.com/masmgr/commitheat/internal/calendar"
)

// Normalized returns the Shannon entropy of weights divided by log2(len(weights)).
// Returns a value between 0 and 1:
//   - 0 = everything in one bucket, or no weight at all
//   - 1 = weight spread evenly over every bucket
//
// Negative weights are treated as zero.
func Normalized(weights []int) float64 {
	if len(weights) < 2 {
		return 0.0
	}

	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return 0.0
	}

	// -Σ(p_i × log2(p_i))
	h := 0.0
	for _, w := range weights {
		if w > 0 {
			p := float64(w) / float64(total)
			h -= p * math.Log2(p)
		}
	}

	normalized := h / math.Log2(float64(len(weights)))
	return max(0.0, min(normalized, 1.0))
}

// WeekdayTotals sums the counts inside r per weekday, Sunday=0.
func WeekdayTotals(counts aggregation.DateCounts, r calendar.Range) [7]int {
	var totals [7]int
	for d := range r.Each() {
		totals[d.Weekday()] += counts.Get(d)
	}
	return totals
}

// WeekdaySpread is the normalized entropy of the weekday totals inside r.
func WeekdaySpread(counts aggregation.DateCounts, r calendar.Range) float64 {
	totals := WeekdayTotals(counts, r)
	return Normalized(totals[:])
}
