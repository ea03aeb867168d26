package output

import (
	"fmt"
	"io"
	"time"

	"github.com/masmgr/commitheat/internal/heatmap"
)

// Compile-time interface conformance checks.
var (
	_ ReportWriter = (*ConsoleWriter)(nil)
	_ ReportWriter = (*JSONWriter)(nil)
	_ ReportWriter = (*CSVWriter)(nil)
	_ ReportWriter = (*MarkdownWriter)(nil)
	_ ReportWriter = (*CIWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatCI       OutputFormat = "ci"
)

// ParseFormat parses an output format name. Unknown names are an error.
func ParseFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "console":
		return FormatConsole, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "ci", "ndjson":
		return FormatCI, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected console, json, csv, markdown, ci)", s)
	}
}

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
	Character  string
	Shade      RGB
	ShowMonths bool
	NoColor    bool
}

// HeatmapReport holds a finished grid and the request that produced it.
type HeatmapReport struct {
	Repositories []string
	Authors      []string
	Branches     []string
	GeneratedAt  time.Time
	Grid         *heatmap.Grid
}

// ReportWriter writes heatmap reports.
type ReportWriter interface {
	Write(out io.Writer, report *HeatmapReport, options OutputOptions) error
}

// NewReportWriter creates a report writer for the specified format.
func NewReportWriter(format OutputFormat) ReportWriter {
	switch format {
	case FormatJSON:
		return &JSONWriter{}
	case FormatCSV:
		return &CSVWriter{}
	case FormatMarkdown:
		return &MarkdownWriter{}
	case FormatCI:
		return &CIWriter{}
	default:
		return &ConsoleWriter{}
	}
}

// Render writes report to options.OutputPath, or stdout when no path is set.
func Render(report *HeatmapReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	if !isTerminal(out) {
		options.NoColor = true
	}
	return NewReportWriter(options.Format).Write(out, report, options)
}
