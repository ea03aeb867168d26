package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/masmgr/commitheat/internal/aggregation"
	"github.com/masmgr/commitheat/internal/burst"
	"github.com/masmgr/commitheat/internal/calendar"
	"github.com/masmgr/commitheat/internal/entropy"
	"github.com/masmgr/commitheat/internal/heatmap"
)

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

// isTerminal reports whether out is an interactive terminal.
func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// reportSummary holds figures shared by every format.
type reportSummary struct {
	TotalCommits int
	ActiveDays   int
	MaxCount     int
	BusiestDay   calendar.Date

	BusiestWeek   burst.Window
	LongestStreak int
	CurrentStreak int
	WeekdaySpread float64 // 0 = one weekday only, 1 = even across the week
}

func summarize(g *heatmap.Grid) reportSummary {
	var s reportSummary
	counts := aggregation.DateCounts{}
	for _, p := range g.Cells() {
		if p.Count > 0 {
			counts[p.Date] = p.Count
		}
		s.TotalCommits += p.Count
		if p.Count > 0 {
			s.ActiveDays++
		}
		if p.Count > s.MaxCount {
			s.MaxCount = p.Count
			s.BusiestDay = p.Date
		}
	}
	s.BusiestWeek = burst.NewCalculator(burst.DefaultWindowDays).BusiestWindow(counts, g.Range)
	s.LongestStreak, s.CurrentStreak = burst.Streaks(counts, g.Range)
	s.WeekdaySpread = entropy.WeekdaySpread(counts, g.Range)
	return s
}

func dateString(d calendar.Date) *string {
	if d.IsZero() {
		return nil
	}
	s := d.String()
	return &s
}
