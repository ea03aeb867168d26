package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/masmgr/commitheat/internal/heatmap"
)

// JSONWriter writes heatmap reports as JSON.
type JSONWriter struct{}

// JSONReport is the JSON output structure for a heatmap.
type JSONReport struct {
	Start         string              `json:"start"`
	End           string              `json:"end"`
	Repositories  []string            `json:"repositories"`
	Authors       []string            `json:"authors,omitempty"`
	Branches      []string            `json:"branches,omitempty"`
	GeneratedAt   string              `json:"generatedAt"`
	TotalCommits  int                 `json:"totalCommits"`
	ActiveDays    int                 `json:"activeDays"`
	MaxCount      int                 `json:"maxCount"`
	BusiestDay    *string             `json:"busiestDay,omitempty"`
	BusiestWeek   *JSONWindow         `json:"busiestWeek,omitempty"`
	LongestStreak int                 `json:"longestStreak"`
	CurrentStreak int                 `json:"currentStreak"`
	WeekdaySpread float64             `json:"weekdaySpread"`
	Months        []JSONMonthBoundary `json:"months"`
	Rows          []JSONRow           `json:"rows"`
}

// JSONWindow is the busiest run of consecutive days.
type JSONWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Count int    `json:"count"`
}

// JSONMonthBoundary marks where a month starts.
type JSONMonthBoundary struct {
	Column int    `json:"column"`
	Label  string `json:"label"`
}

// JSONRow is one weekday row.
type JSONRow struct {
	Day   string     `json:"day"`
	Cells []JSONCell `json:"cells"`
}

// JSONCell is one grid cell. Padding cells have no date.
type JSONCell struct {
	Date  *string `json:"date"`
	Count int     `json:"count"`
	Level int     `json:"level"`
}

// Write outputs the heatmap report as JSON.
func (w *JSONWriter) Write(out io.Writer, report *HeatmapReport, options OutputOptions) error {
	g := report.Grid
	summary := summarize(g)

	jsonReport := JSONReport{
		Start:         g.Range.Start.String(),
		End:           g.Range.End.String(),
		Repositories:  report.Repositories,
		Authors:       report.Authors,
		Branches:      report.Branches,
		GeneratedAt:   report.GeneratedAt.Format(time.RFC3339),
		TotalCommits:  summary.TotalCommits,
		ActiveDays:    summary.ActiveDays,
		MaxCount:      summary.MaxCount,
		BusiestDay:    dateString(summary.BusiestDay),
		LongestStreak: summary.LongestStreak,
		CurrentStreak: summary.CurrentStreak,
		WeekdaySpread: summary.WeekdaySpread,
		Months:        make([]JSONMonthBoundary, 0, len(g.Months)),
		Rows:          make([]JSONRow, 0, heatmap.DaysPerWeek),
	}

	if w := summary.BusiestWeek; w.Count > 0 {
		jsonReport.BusiestWeek = &JSONWindow{Start: w.Start.String(), End: w.End.String(), Count: w.Count}
	}
	for _, m := range g.Months {
		jsonReport.Months = append(jsonReport.Months, JSONMonthBoundary{Column: m.Column, Label: m.Label})
	}
	for row, cells := range g.Rows {
		jr := JSONRow{Day: heatmap.DayLabels[row], Cells: make([]JSONCell, 0, len(cells))}
		for _, c := range cells {
			jr.Cells = append(jr.Cells, JSONCell{Date: dateString(c.Date), Count: c.Count, Level: c.Level})
		}
		jsonReport.Rows = append(jsonReport.Rows, jr)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonReport)
}
