package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/masmgr/commitheat/internal/heatmap"
)

// levelGlyphs render density levels in plain text.
var levelGlyphs = [MaxLevel + 1]string{"·", "░", "▒", "▓", "█"}

// MarkdownWriter writes heatmap reports as Markdown.
type MarkdownWriter struct{}

// Write outputs the heatmap report as Markdown.
func (w *MarkdownWriter) Write(out io.Writer, report *HeatmapReport, options OutputOptions) error {
	g := report.Grid
	summary := summarize(g)

	var b strings.Builder
	b.WriteString("# Commit Activity Heatmap\n\n")
	fmt.Fprintf(&b, "**Period:** %s to %s\n\n", g.Range.Start, g.Range.End)
	fmt.Fprintf(&b, "**Repositories:** %s\n\n", escapeMarkdown(strings.Join(report.Repositories, ", ")))
	if len(report.Authors) > 0 {
		fmt.Fprintf(&b, "**Authors:** %s\n\n", escapeMarkdown(strings.Join(report.Authors, ", ")))
	}
	if len(report.Branches) > 0 {
		fmt.Fprintf(&b, "**Branches:** %s\n\n", escapeMarkdown(strings.Join(report.Branches, ", ")))
	}
	fmt.Fprintf(&b, "**Total Commits:** %d on %d active day(s)\n\n", summary.TotalCommits, summary.ActiveDays)
	if summary.MaxCount > 0 {
		fmt.Fprintf(&b, "**Busiest Day:** %s (%d commits)\n\n", summary.BusiestDay, summary.MaxCount)
		w := summary.BusiestWeek
		fmt.Fprintf(&b, "**Busiest Week:** %s to %s (%d commits)\n\n", w.Start, w.End, w.Count)
		fmt.Fprintf(&b, "**Longest Streak:** %d day(s), current %d\n\n", summary.LongestStreak, summary.CurrentStreak)
		fmt.Fprintf(&b, "**Weekday Spread:** %.2f\n\n", summary.WeekdaySpread)
	}

	// Header row carries month labels at the columns where months start.
	cols := g.Columns()
	header := make([]string, cols)
	for _, m := range g.Months {
		if m.Column < cols && header[m.Column] == "" {
			header[m.Column] = m.Label
		}
	}
	b.WriteString("| Day |")
	for _, h := range header {
		fmt.Fprintf(&b, " %s |", h)
	}
	b.WriteString("\n|-----|")
	b.WriteString(strings.Repeat("---|", cols))
	b.WriteString("\n")

	for row, cells := range g.Rows {
		fmt.Fprintf(&b, "| %s |", heatmap.DayLabels[row])
		for i := 0; i < cols; i++ {
			glyph := " "
			if i < len(cells) && !cells[i].Padding {
				glyph = levelGlyphs[max(0, min(cells[i].Level, MaxLevel))]
			}
			fmt.Fprintf(&b, " %s |", glyph)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n**Legend:** ")
	for level, glyph := range levelGlyphs {
		if level > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s=%d", glyph, level)
	}
	b.WriteString("\n")

	_, err := io.WriteString(out, b.String())
	return err
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
