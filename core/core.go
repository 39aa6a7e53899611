// Package core implements the burndown and velocity analytics engine:
// series alignment, scale mapping, metric derivation, chart rendering and
// trend classification, plus the orchestration entrypoints the CLI and MCP
// surfaces call into.
package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/northstarwang/burnlens/internal/chart"
	"github.com/northstarwang/burnlens/internal/contract"
	"github.com/northstarwang/burnlens/internal/outwriter"
	"github.com/northstarwang/burnlens/schema"
)

// PrepareBurndown normalizes a loaded record for analysis: a missing ideal
// line is generated from the sprint span, and a violated ideal-line invariant
// is surfaced as a warning rather than a failure since the engine degrades
// gracefully on bad input.
func PrepareBurndown(b *schema.SprintBurndown) {
	if b == nil {
		return
	}
	if len(b.IdealLine) == 0 && !b.StartDate.IsZero() && !b.EndDate.IsZero() {
		b.IdealLine = BuildIdealLine(b.StartDate.Time, b.EndDate.Time, b.TotalPoints)
	}
	if len(b.IdealLine) > 0 {
		if err := schema.CheckIdealLine(b); err != nil {
			contract.LogWarn("Ideal line invariant violated", err)
		}
	}
}

// RenderBurndownSVG renders a burndown record into a standalone SVG document.
func RenderBurndownSVG(b *schema.SprintBurndown, opts RenderOptions) []byte {
	surface := chart.NewSVGSurface()
	RenderBurndown(surface, b, opts)
	return surface.Document()
}

// ExecuteBurndownReport loads a burndown record, renders the chart when a
// chart file is configured, optionally records the summary snapshot, and
// prints the summary metrics in the configured output format.
func ExecuteBurndownReport(_ context.Context, cfg *contract.Config, store contract.HistoryStore) error {
	start := time.Now()

	b, err := LoadSprintBurndown(cfg.InputFile)
	if err != nil {
		return err
	}
	PrepareBurndown(b)

	summary := Summarize(b, cfg.OnTrackSlack)

	if cfg.ChartFile != "" {
		opts := DefaultRenderOptions(float64(outwriter.GetChartWidth(cfg)))
		opts.Height = float64(cfg.ChartHeight)
		opts.ShowIdealLine = cfg.ShowIdealLine
		doc := RenderBurndownSVG(b, opts)
		if err := os.WriteFile(cfg.ChartFile, doc, 0o644); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
	}

	if cfg.Record && store != nil {
		if err := store.RecordSummary(b, summary, time.Now()); err != nil {
			contract.LogWarn("History recording failed", err)
		}
	}

	return outwriter.PrintBurndownSummary(summary, b, cfg, time.Since(start))
}

// ExecuteVelocityReport classifies a velocity trend from a JSON file or,
// when no file is given, from the recorded history of the configured team.
func ExecuteVelocityReport(_ context.Context, cfg *contract.Config, store contract.HistoryStore) error {
	var records []schema.TeamVelocity
	var err error

	switch {
	case cfg.InputFile != "":
		records, err = LoadVelocityHistory(cfg.InputFile)
		if err != nil {
			return err
		}
	case store != nil && cfg.Team != "":
		records, err = store.ListVelocity(cfg.Team)
		if err != nil {
			return fmt.Errorf("failed to read velocity history: %w", err)
		}
	default:
		return errors.New("an input file or --team with a history backend is required")
	}

	// History rows come back ordered; file input makes no such promise.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PeriodStart.Before(records[j].PeriodStart.Time)
	})

	if cfg.Record && cfg.InputFile != "" && store != nil {
		for _, r := range records {
			if err := store.RecordVelocity(r); err != nil {
				contract.LogWarn("History recording failed", err)
				break
			}
		}
	}

	trend := AnalyzeVelocity(records, VelocityOptions{
		RecentWindow: cfg.RecentWindow,
		Tolerance:    cfg.TrendTolerance,
	})
	return outwriter.PrintVelocityResults(trend, records, cfg)
}

// ExecuteProgressReport prints a completion report for a batch of task
// progress records.
func ExecuteProgressReport(_ context.Context, cfg *contract.Config) error {
	records, err := LoadTaskProgress(cfg.InputFile)
	if err != nil {
		return err
	}
	return outwriter.PrintProgressResults(records, cfg)
}
