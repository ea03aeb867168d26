package calendar

import (
	"fmt"
	"iter"
	"time"
)

// Range is an inclusive span of calendar days.
type Range struct {
	Start Date
	End   Date
}

// NewRange validates and returns the range [start, end].
func NewRange(start, end Date) (Range, error) {
	if start.After(end) {
		return Range{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}
	return Range{Start: start, End: end}, nil
}

// YearOf returns January 1 through December 31 of the year containing d.
func YearOf(d Date) Range {
	return Range{
		Start: Date{Year: d.Year, Month: time.January, Day: 1},
		End:   Date{Year: d.Year, Month: time.December, Day: 31},
	}
}

// Contains reports whether d lies within the range, bounds included.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days returns the number of days covered, bounds included.
func (r Range) Days() int {
	return r.Start.DaysUntil(r.End) + 1
}

// Each yields every day from Start to End in order.
func (r Range) Each() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.Start; !d.After(r.End); d = d.AddDays(1) {
			if !yield(d) {
				return
			}
		}
	}
}

func (r Range) String() string {
	return r.Start.String() + " => " + r.End.String()
}
