package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestDateOf_UsesTimestampLocation(t *testing.T) {
	// 23:30 at UTC-5 is already the next day in UTC.
	loc := time.FixedZone("EST", -5*60*60)
	ts := time.Date(2024, 1, 1, 23, 30, 0, 0, loc)

	got := DateOf(ts)
	want := Date{Year: 2024, Month: time.January, Day: 1}
	if got != want {
		t.Fatalf("DateOf(%v) = %v, want %v", ts, got, want)
	}
}

func TestDate_Weekday(t *testing.T) {
	tests := []struct {
		date Date
		want int
	}{
		{date: NewDate(2023, time.December, 31), want: 0}, // Sunday
		{date: NewDate(2024, time.January, 1), want: 1},
		{date: NewDate(2024, time.January, 3), want: 3},
		{date: NewDate(2024, time.January, 6), want: 6}, // Saturday
	}

	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			if got := tt.date.Weekday(); got != tt.want {
				t.Fatalf("Weekday() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDate_AddDays(t *testing.T) {
	d := NewDate(2024, time.February, 28)

	if got := d.AddDays(1); got != NewDate(2024, time.February, 29) {
		t.Fatalf("AddDays(1) = %v, want 2024-02-29", got)
	}
	if got := d.AddDays(2); got != NewDate(2024, time.March, 1) {
		t.Fatalf("AddDays(2) = %v, want 2024-03-01", got)
	}
	if got := d.AddDays(-59); got != NewDate(2023, time.December, 31) {
		t.Fatalf("AddDays(-59) = %v, want 2023-12-31", got)
	}
}

func TestDate_DaysUntil(t *testing.T) {
	a := NewDate(2024, time.January, 1)
	b := NewDate(2024, time.December, 31)
	if got := a.DaysUntil(b); got != 365 {
		t.Fatalf("DaysUntil = %d, want 365", got)
	}
	if got := b.DaysUntil(a); got != -365 {
		t.Fatalf("DaysUntil reversed = %d, want -365", got)
	}
}

func TestParseDate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		got, err := ParseDate("2025-12-31")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != NewDate(2025, time.December, 31) {
			t.Fatalf("ParseDate = %v, want 2025-12-31", got)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		if _, err := ParseDate("31-12-2025"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestDate_MonthAbbrev(t *testing.T) {
	if got := NewDate(2024, time.September, 1).MonthAbbrev(); got != "Sep" {
		t.Fatalf("MonthAbbrev() = %q, want %q", got, "Sep")
	}
}

func TestNewRange(t *testing.T) {
	start := NewDate(2024, time.January, 2)
	end := NewDate(2024, time.January, 1)

	if _, err := NewRange(start, end); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("NewRange(reversed) error = %v, want ErrInvalidRange", err)
	}

	r, err := NewRange(end, end)
	if err != nil {
		t.Fatalf("NewRange(single day): %v", err)
	}
	if r.Days() != 1 {
		t.Fatalf("Days() = %d, want 1", r.Days())
	}
}

func TestRange_ContainsAndEach(t *testing.T) {
	r := Range{Start: NewDate(2023, time.December, 30), End: NewDate(2024, time.January, 2)}

	var days []Date
	for d := range r.Each() {
		days = append(days, d)
	}
	if len(days) != 4 || len(days) != r.Days() {
		t.Fatalf("Each yielded %d days, want 4", len(days))
	}
	if days[0] != r.Start || days[3] != r.End {
		t.Fatalf("Each bounds = %v..%v, want %v..%v", days[0], days[3], r.Start, r.End)
	}

	if !r.Contains(r.Start) || !r.Contains(r.End) {
		t.Fatal("range must contain its bounds")
	}
	if r.Contains(r.Start.AddDays(-1)) || r.Contains(r.End.AddDays(1)) {
		t.Fatal("range must not contain days outside its bounds")
	}
}

func TestYearOf(t *testing.T) {
	r := YearOf(NewDate(2026, time.October, 18))
	if r.Start != NewDate(2026, time.January, 1) || r.End != NewDate(2026, time.December, 31) {
		t.Fatalf("YearOf = %v", r)
	}
	if r.Days() != 365 {
		t.Fatalf("Days() = %d, want 365", r.Days())
	}
}
