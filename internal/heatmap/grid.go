// Package heatmap lays per-day commit counts out on a 7-row, Sunday-first calendar grid.
package heatmap

import (
	"fmt"

	"github.com/masmgr/commitheat/internal/aggregation"
	"github.com/masmgr/commitheat/internal/calendar"
	"github.com/masmgr/commitheat/internal/density"
)

// DaysPerWeek is the number of grid rows.
const DaysPerWeek = 7

// DayLabels are the row labels, Sunday first.
var DayLabels = [DaysPerWeek]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Cell is one grid position.
type Cell struct {
	Date    calendar.Date // zero for padding cells
	Count   int
	Level   int
	Padding bool
}

// MonthBoundary marks the column where a month's first cell lands.
type MonthBoundary struct {
	Column int
	Label  string
}

// Grid is the laid-out heatmap. Rows are indexed Sunday=0 .. Saturday=6.
// Rows past the last date of a partial final week are shorter; they are never padded.
type Grid struct {
	Range  calendar.Range
	Rows   [DaysPerWeek][]Cell
	Months []MonthBoundary
}

// Build walks r day by day, classifying each day's count with thresholds.
func Build(r calendar.Range, counts aggregation.DateCounts, thresholds density.Thresholds) (*Grid, error) {
	if r.Start.After(r.End) {
		return nil, fmt.Errorf("%w: %s", calendar.ErrInvalidRange, r)
	}

	g := &Grid{Range: r}

	// Leading padding aligns the first real day into its weekday row.
	offset := r.Start.Weekday()
	for row := 0; row < offset; row++ {
		g.Rows[row] = append(g.Rows[row], Cell{Padding: true})
	}

	for day := range r.Days() {
		d := r.Start.AddDays(day)
		row := d.Weekday()

		if day == 0 {
			g.Months = append(g.Months, MonthBoundary{Column: 0, Label: d.MonthAbbrev()})
		} else if d.Day == 1 {
			g.Months = append(g.Months, MonthBoundary{Column: len(g.Rows[row]), Label: d.MonthAbbrev()})
		}

		count := counts.Get(d)
		level, err := thresholds.Classify(count)
		if err != nil {
			return nil, fmt.Errorf("classify %s: %w", d, err)
		}
		g.Rows[row] = append(g.Rows[row], Cell{Date: d, Count: count, Level: level})
	}

	return g, nil
}

// Levels returns the density level of every cell, row by row.
func (g *Grid) Levels() [DaysPerWeek][]int {
	var levels [DaysPerWeek][]int
	for row, cells := range g.Rows {
		levels[row] = make([]int, len(cells))
		for i, c := range cells {
			levels[row][i] = c.Level
		}
	}
	return levels
}

// Columns returns the number of week columns, i.e. the length of the longest row.
func (g *Grid) Columns() int {
	cols := 0
	for _, cells := range g.Rows {
		if len(cells) > cols {
			cols = len(cells)
		}
	}
	return cols
}

// Total returns the sum of the raw counts of all real cells.
func (g *Grid) Total() int {
	total := 0
	for _, cells := range g.Rows {
		for _, c := range cells {
			total += c.Count
		}
	}
	return total
}

// Cells yields every real (non-padding) cell with its row and column, in date order.
func (g *Grid) Cells() []PlacedCell {
	placed := make([]PlacedCell, 0, g.Range.Days())
	offset := g.Range.Start.Weekday()
	for day := range g.Range.Days() {
		// Day n sits in column (n + offset) / 7 of its weekday row.
		pos := day + offset
		row, col := pos%DaysPerWeek, pos/DaysPerWeek
		placed = append(placed, PlacedCell{Row: row, Column: col, Cell: g.Rows[row][col]})
	}
	return placed
}

// PlacedCell is a cell with its grid coordinates.
type PlacedCell struct {
	Row    int
	Column int
	Cell
}
