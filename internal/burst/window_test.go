package burst

import (
	"math"
	"testing"
	"time"

	"github.com/masmgr/commitheat/internal/aggregation"
	"github.com/masmgr/commitheat/internal/calendar"
)

func day(month time.Month, d int) calendar.Date {
	return calendar.NewDate(2024, month, d)
}

func TestNewCalculator(t *testing.T) {
	tests := []struct {
		name       string
		windowDays int
		want       int
	}{
		{name: "Positive window", windowDays: 14, want: 14},
		{name: "Zero defaults", windowDays: 0, want: DefaultWindowDays},
		{name: "Negative defaults", windowDays: -5, want: DefaultWindowDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := NewCalculator(tt.windowDays)
			if calc.windowDays != tt.want {
				t.Errorf("windowDays = %d, expected %d", calc.windowDays, tt.want)
			}
		})
	}
}

func TestBusiestWindow(t *testing.T) {
	january := calendar.Range{Start: day(time.January, 1), End: day(time.January, 31)}

	tests := []struct {
		name   string
		counts aggregation.DateCounts
		r      calendar.Range
		want   Window
	}{
		{
			name:   "Empty picks the first window",
			counts: aggregation.DateCounts{},
			r:      january,
			want:   Window{Start: day(time.January, 1), End: day(time.January, 7)},
		},
		{
			name:   "Cluster in the middle",
			counts: aggregation.DateCounts{day(time.January, 2): 1, day(time.January, 10): 3, day(time.January, 14): 4, day(time.January, 20): 2},
			r:      january,
			want:   Window{Start: day(time.January, 8), End: day(time.January, 14), Count: 7},
		},
		{
			name:   "Ties keep the earliest",
			counts: aggregation.DateCounts{day(time.January, 1): 2, day(time.January, 20): 2},
			r:      january,
			want:   Window{Start: day(time.January, 1), End: day(time.January, 7), Count: 2},
		},
		{
			name:   "Short range is one window",
			counts: aggregation.DateCounts{day(time.January, 2): 5},
			r:      calendar.Range{Start: day(time.January, 1), End: day(time.January, 3)},
			want:   Window{Start: day(time.January, 1), End: day(time.January, 3), Count: 5},
		},
		{
			name:   "Counts outside the range are ignored",
			counts: aggregation.DateCounts{day(time.February, 1): 50, day(time.January, 31): 1},
			r:      january,
			want:   Window{Start: day(time.January, 25), End: day(time.January, 31), Count: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCalculator(7).BusiestWindow(tt.counts, tt.r)
			if got != tt.want {
				t.Errorf("BusiestWindow() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	january := calendar.Range{Start: day(time.January, 1), End: day(time.January, 31)}
	calc := NewCalculator(7)

	if got := calc.Score(aggregation.DateCounts{}, january); got != 0.0 {
		t.Errorf("Score(empty) = %f, expected 0.0", got)
	}

	counts := aggregation.DateCounts{day(time.January, 3): 3, day(time.January, 25): 1}
	if got := calc.Score(counts, january); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Score() = %f, expected 0.75", got)
	}
}

func TestStreaks(t *testing.T) {
	r := calendar.Range{Start: day(time.January, 1), End: day(time.January, 10)}

	tests := []struct {
		name        string
		active      []int
		wantLongest int
		wantCurrent int
	}{
		{name: "None", active: nil, wantLongest: 0, wantCurrent: 0},
		{name: "Single", active: []int{4}, wantLongest: 1, wantCurrent: 0},
		{name: "Longest in the middle", active: []int{1, 3, 4, 5, 9}, wantLongest: 3, wantCurrent: 0},
		{name: "Current at the end", active: []int{2, 8, 9, 10}, wantLongest: 3, wantCurrent: 3},
		{name: "Every day", active: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, wantLongest: 10, wantCurrent: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := aggregation.DateCounts{}
			for _, d := range tt.active {
				counts[day(time.January, d)] = 1
			}
			longest, current := Streaks(counts, r)
			if longest != tt.wantLongest || current != tt.wantCurrent {
				t.Errorf("Streaks() = (%d, %d), expected (%d, %d)", longest, current, tt.wantLongest, tt.wantCurrent)
			}
		})
	}
}
