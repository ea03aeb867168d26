package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/masmgr/commitheat/internal/heatmap"
)

// CSVWriter writes one CSV line per day in the range.
type CSVWriter struct{}

// Write outputs the heatmap report as CSV.
func (w *CSVWriter) Write(out io.Writer, report *HeatmapReport, options OutputOptions) error {
	writer := csv.NewWriter(out)

	if err := writer.Write([]string{"Date", "Weekday", "Row", "Column", "Count", "Level"}); err != nil {
		return err
	}

	for _, p := range report.Grid.Cells() {
		row := []string{
			p.Date.String(),
			heatmap.DayLabels[p.Row],
			strconv.Itoa(p.Row),
			strconv.Itoa(p.Column),
			strconv.Itoa(p.Count),
			strconv.Itoa(p.Level),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
