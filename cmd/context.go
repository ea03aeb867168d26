package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/commitheat/config"
	"github.com/masmgr/commitheat/internal/collector"
	"github.com/masmgr/commitheat/internal/density"
	"github.com/masmgr/commitheat/internal/git"
	"github.com/masmgr/commitheat/internal/log"
	"github.com/masmgr/commitheat/internal/output"
)

// CommandContext holds the validated state a heatmap run needs.
// Everything is checked here so the collector never starts on bad input.
type CommandContext struct {
	Config     *config.Config
	Request    collector.Request
	Thresholds density.Thresholds
	Open       git.OpenFunc
	Output     output.OutputOptions
	Logger     *log.Logger
}

// NewCommandContext creates a context from CLI flags and the loaded configuration.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	if c.Bool("no-color") {
		color.NoColor = true
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	r, err := dateRangeFlags(c)
	if err != nil {
		return nil, err
	}

	repos := c.StringSlice("repo")
	if len(repos) == 0 {
		return nil, errors.New("at least one repository is required")
	}
	for _, repo := range repos {
		if strings.TrimSpace(repo) == "" {
			return nil, errors.New("repository path must not be empty")
		}
	}

	format, err := outputFormatFlag(c)
	if err != nil {
		return nil, err
	}
	shade, err := output.ParseShade(cfg.Display.Shade)
	if err != nil {
		return nil, err
	}
	thresholds, err := cfg.Thresholds()
	if err != nil {
		return nil, err
	}
	backend, err := git.ParseBackend(cfg.Source.Backend)
	if err != nil {
		return nil, err
	}
	open, err := git.Opener(backend)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Config: cfg,
		Request: collector.Request{
			Repositories: repos,
			Authors:      c.StringSlice("author"),
			Branches:     c.StringSlice("branch"),
			Range:        r,
		},
		Thresholds: thresholds,
		Open:       open,
		Output: output.OutputOptions{
			Format:     format,
			OutputPath: c.String("output"),
			Character:  cfg.Display.Character,
			Shade:      shade,
			ShowMonths: cfg.Display.ShowMonths,
			NoColor:    c.Bool("no-color"),
		},
		Logger: log.New(errWriter(c), c.Bool("verbose")),
	}, nil
}

// loadConfig loads configuration from file or defaults, applies flag overrides, and validates the result.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.IsSet("character") {
		cfg.Display.Character = c.String("character")
	}
	if c.IsSet("shade") {
		cfg.Display.Shade = c.String("shade")
	}
	if c.IsSet("months") {
		cfg.Display.ShowMonths = c.Bool("months")
	}
	if c.IsSet("backend") {
		cfg.Source.Backend = c.String("backend")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func errWriter(c *cli.Context) io.Writer {
	if c.App != nil && c.App.ErrWriter != nil {
		return c.App.ErrWriter
	}
	return os.Stderr
}
