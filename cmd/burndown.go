package cmd

import (
	"github.com/northstarwang/burnlens/core"
	"github.com/northstarwang/burnlens/internal/contract"
	"github.com/spf13/cobra"
)

// burndownCmd summarizes a sprint burndown and optionally renders its chart.
var burndownCmd = &cobra.Command{
	Use:   "burndown <input-file>",
	Short: "Summarize a sprint burndown and render its chart.",
	Long: `Analyze a sprint burndown record and report progress metrics.

Aligns recorded data points against the ideal line, derives completed and
remaining story points, computes the completion percentage and decides
whether the sprint is on track, helping you:
- See at a glance whether a sprint will land
- Catch scope creep when remaining work stops falling
- Produce burndown charts for standups and sprint reviews
- Keep a snapshot history for retrospectives

Examples:
  # Summarize a sprint from a JSON export
  burnlens burndown sprint-42.json

  # Render the chart alongside the summary
  burnlens burndown sprint-42.json --chart-file sprint-42.svg

  # Tighten the on-track threshold
  burnlens burndown sprint-42.json --slack 0.05

  # Record the snapshot for trend tracking
  burnlens burndown sprint-42.json --record --history-backend sqlite

  # Export the data points to CSV
  burnlens burndown sprint-42.json --output csv --output-file points.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBurndownReport(rootCtx, cfg, historyStore); err != nil {
			contract.LogFatal("Cannot run burndown report", err)
		}
	},
}
