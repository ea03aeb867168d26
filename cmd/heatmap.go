package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/commitheat/internal/aggregation"
	"github.com/masmgr/commitheat/internal/collector"
	"github.com/masmgr/commitheat/internal/heatmap"
	"github.com/masmgr/commitheat/internal/log"
	"github.com/masmgr/commitheat/internal/output"
)

// HeatmapCmd returns the heatmap command. The root action runs the same thing.
func HeatmapCmd() *cli.Command {
	return &cli.Command{
		Name:    "heatmap",
		Aliases: []string{"hm"},
		Usage:   "Render the commit activity heatmap",
		Flags:   heatmapFlags(),
		Action:  heatmapAction,
	}
}

func heatmapAction(c *cli.Context) error {
	cc, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	ctx := log.WithLogger(c.Context, cc.Logger)
	report, err := buildReport(ctx, cc)
	if err != nil {
		return err
	}

	return output.Render(report, cc.Output)
}

// buildReport runs collection, aggregation and layout. Nothing is rendered
// unless every repository was read successfully.
func buildReport(ctx context.Context, cc *CommandContext) (*output.HeatmapReport, error) {
	logger := log.FromContext(ctx)
	req := cc.Request

	logger.Debugf("collecting %s from %d repositories", req.Range, len(req.Repositories))

	col := collector.New(cc.Open, logger)
	col.OnStats(func(s collector.Stats) {
		logger.Infof("%s: %d commits on %d branch(es), %d counted", s.Repository, s.Unique, s.Branches, s.Matched)
	})

	counts, err := aggregation.CountByDate(col.Dates(ctx, req))
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	if counts.Total() == 0 {
		logger.Warnf("no matching commits in %s", req.Range)
	}

	grid, err := heatmap.Build(req.Range, counts, cc.Thresholds)
	if err != nil {
		return nil, fmt.Errorf("failed to build heatmap: %w", err)
	}

	return &output.HeatmapReport{
		Repositories: req.Repositories,
		Authors:      req.Authors,
		Branches:     req.Branches,
		GeneratedAt:  now(),
		Grid:         grid,
	}, nil
}
