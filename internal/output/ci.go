package output

import (
	"encoding/json"
	"io"
)

// CIWriter writes heatmap reports as NDJSON (one JSON object per line) for CI pipelines.
type CIWriter struct{}

// CISummary is the first line of CI output, containing aggregate statistics.
type CISummary struct {
	Type          string `json:"type"`
	Start         string `json:"start"`
	End           string `json:"end"`
	TotalCommits  int    `json:"totalCommits"`
	ActiveDays    int    `json:"activeDays"`
	MaxCount      int    `json:"maxCount"`
	BusiestWeek   int    `json:"busiestWeek"`
	LongestStreak int    `json:"longestStreak"`
}

// CIDayEntry represents a single active day in CI output.
type CIDayEntry struct {
	Type  string `json:"type"`
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// Write outputs the summary line followed by one line per day with commits.
func (w *CIWriter) Write(out io.Writer, report *HeatmapReport, options OutputOptions) error {
	g := report.Grid
	summary := summarize(g)
	encoder := json.NewEncoder(out)

	if err := encoder.Encode(CISummary{
		Type:          "summary",
		Start:         g.Range.Start.String(),
		End:           g.Range.End.String(),
		TotalCommits:  summary.TotalCommits,
		ActiveDays:    summary.ActiveDays,
		MaxCount:      summary.MaxCount,
		BusiestWeek:   summary.BusiestWeek.Count,
		LongestStreak: summary.LongestStreak,
	}); err != nil {
		return err
	}

	for _, p := range g.Cells() {
		if p.Count == 0 {
			continue
		}
		if err := encoder.Encode(CIDayEntry{Type: "day", Date: p.Date.String(), Count: p.Count, Level: p.Level}); err != nil {
			return err
		}
	}
	return nil
}
