package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/masmgr/commitheat/internal/heatmap"
)

// ConsoleWriter prints the heatmap as colored text, one line per weekday.
type ConsoleWriter struct{}

// Write outputs the heatmap to the console.
func (w *ConsoleWriter) Write(out io.Writer, report *HeatmapReport, options OutputOptions) error {
	g := report.Grid
	palette := NewPalette(options.Shade, !options.NoColor)
	character := options.Character
	if character == "" {
		character = "▧"
	}
	cell := character + " "

	if _, err := fmt.Fprintln(out, g.Range.String()); err != nil {
		return err
	}

	if options.ShowMonths {
		if _, err := fmt.Fprintln(out, "   "+monthLabelRow(g, cellWidth(cell))); err != nil {
			return err
		}
	}

	for row, cells := range g.Rows {
		var line strings.Builder
		line.WriteString(heatmap.DayLabels[row])
		line.WriteString(" ")
		for _, c := range cells {
			line.WriteString(palette.Paint(c.Level, cell))
		}
		if _, err := fmt.Fprintln(out, line.String()); err != nil {
			return err
		}
	}

	return nil
}

// monthLabelRow places each month label above the column where the month starts.
// A label that would overlap the previous one is dropped.
func monthLabelRow(g *heatmap.Grid, width int) string {
	line := []rune(strings.Repeat(" ", g.Columns()*width))
	next := 0
	for _, m := range g.Months {
		pos := m.Column * width
		label := []rune(m.Label)
		if pos < next || pos+len(label) > len(line) {
			continue
		}
		copy(line[pos:], label)
		next = pos + len(label) + 1
	}
	return strings.TrimRight(string(line), " ")
}

// cellWidth is the number of terminal columns one cell occupies.
func cellWidth(cell string) int {
	return len([]rune(cell))
}
