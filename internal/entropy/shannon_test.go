package entropy

import (
	"math"
	"testing"
	"time"

	"github.com/masmgr/commitheat/internal/aggregation"
	"github.com/masmgr/commitheat/internal/calendar"
)

func TestNormalized(t *testing.T) {
	tests := []struct {
		name     string
		weights  []int
		expected float64
	}{
		{name: "Empty", weights: nil, expected: 0.0},
		{name: "Single bucket", weights: []int{5}, expected: 0.0},
		{name: "All zero", weights: []int{0, 0, 0}, expected: 0.0},
		{name: "One bucket used", weights: []int{0, 9, 0, 0}, expected: 0.0},
		{name: "Two even buckets", weights: []int{3, 3}, expected: 1.0},
		{name: "Half of four buckets", weights: []int{2, 2, 0, 0}, expected: 0.5},
		{name: "Negative ignored", weights: []int{4, -4, 4, 0}, expected: 0.5},
		{name: "Uniform week", weights: []int{1, 1, 1, 1, 1, 1, 1}, expected: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalized(tt.weights)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Normalized(%v) = %f, expected %f", tt.weights, result, tt.expected)
			}
		})
	}
}

func TestNormalized_Skewed(t *testing.T) {
	// Uneven split sits strictly between the extremes.
	result := Normalized([]int{9, 1})
	if result <= 0.0 || result >= 1.0 {
		t.Errorf("Normalized([9 1]) = %f, expected in (0,1)", result)
	}
	if Normalized([]int{5, 5}) <= result {
		t.Error("an even split must score higher than a skewed one")
	}
}

func TestWeekdayTotals(t *testing.T) {
	// 2024-01-01 is a Monday.
	r := calendar.Range{Start: calendar.NewDate(2024, time.January, 1), End: calendar.NewDate(2024, time.January, 14)}
	counts := aggregation.DateCounts{
		calendar.NewDate(2024, time.January, 1):  2,
		calendar.NewDate(2024, time.January, 8):  3,
		calendar.NewDate(2024, time.January, 7):  1,
		calendar.NewDate(2024, time.January, 20): 9, // outside
	}

	got := WeekdayTotals(counts, r)
	want := [7]int{1, 5, 0, 0, 0, 0, 0}
	if got != want {
		t.Errorf("WeekdayTotals() = %v, expected %v", got, want)
	}
}

func TestWeekdaySpread(t *testing.T) {
	r := calendar.Range{Start: calendar.NewDate(2024, time.January, 1), End: calendar.NewDate(2024, time.January, 7)}

	mondays := aggregation.DateCounts{calendar.NewDate(2024, time.January, 1): 4}
	if got := WeekdaySpread(mondays, r); got != 0.0 {
		t.Errorf("WeekdaySpread(one weekday) = %f, expected 0.0", got)
	}

	everyDay := aggregation.DateCounts{}
	for d := range r.Each() {
		everyDay[d] = 2
	}
	if got := WeekdaySpread(everyDay, r); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("WeekdaySpread(every day) = %f, expected 1.0", got)
	}
}
