package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/commitheat/internal/calendar"
	"github.com/masmgr/commitheat/internal/output"
)

// now is replaced in tests that depend on the default range.
var now = time.Now

func init() {
	// -v belongs to --verbose.
	cli.VersionFlag = &cli.BoolFlag{Name: "version", Usage: "print the version"}
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "commitheat",
		Usage:   "Commit activity heatmap for Git repositories",
		Version: "1.0.0",
		Commands: []*cli.Command{
			HeatmapCmd(),
			ConfigCmd(),
		},
		Flags:  heatmapFlags(),
		Action: heatmapAction,
	}
}

// heatmapFlags are shared by the root action and the heatmap command.
func heatmapFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository (can be specified multiple times)",
			Value:   cli.NewStringSlice("."),
		},
		&cli.StringSliceFlag{
			Name:    "author",
			Aliases: []string{"a"},
			Usage:   "Author email or name to count (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch name or glob pattern (default: every local branch)",
		},
		&cli.StringFlag{
			Name:    "start",
			Aliases: []string{"s"},
			Usage:   "First day shown (YYYY-MM-DD, default: January 1 of this year)",
		},
		&cli.StringFlag{
			Name:    "end",
			Aliases: []string{"e"},
			Usage:   "Last day shown (YYYY-MM-DD, default: December 31 of this year)",
		},
		&cli.StringFlag{
			Name:    "character",
			Aliases: []string{"c"},
			Usage:   "Character drawn for each day",
		},
		&cli.StringFlag{
			Name:    "shade",
			Aliases: []string{"sh"},
			Usage:   "Base color as R;G;B",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, csv, markdown, ci)",
			Value:   "console",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.BoolFlag{
			Name:  "months",
			Usage: "Print a month label row above the grid",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "History reader (go-git, git-cli)",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to configuration file",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Print repository progress to stderr",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
	}
}

// parseDateFlag parses a YYYY-MM-DD flag, falling back to def when unset.
func parseDateFlag(name, s string, def calendar.Date) (calendar.Date, error) {
	if s == "" {
		return def, nil
	}
	d, err := calendar.ParseDate(s)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("invalid %s date: %s (expected YYYY-MM-DD)", name, s)
	}
	return d, nil
}

// dateRangeFlags builds the requested range. Unset bounds default to the current year.
func dateRangeFlags(c *cli.Context) (calendar.Range, error) {
	year := calendar.YearOf(calendar.DateOf(now()))

	start, err := parseDateFlag("start", c.String("start"), year.Start)
	if err != nil {
		return calendar.Range{}, err
	}
	end, err := parseDateFlag("end", c.String("end"), year.End)
	if err != nil {
		return calendar.Range{}, err
	}
	return calendar.NewRange(start, end)
}

// outputFormatFlag parses the output format flag.
func outputFormatFlag(c *cli.Context) (output.OutputFormat, error) {
	return output.ParseFormat(c.String("format"))
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
