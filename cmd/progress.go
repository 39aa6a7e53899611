package cmd

import (
	"github.com/northstarwang/burnlens/core"
	"github.com/northstarwang/burnlens/internal/contract"
	"github.com/spf13/cobra"
)

// progressCmd reports per-task completion percentages.
var progressCmd = &cobra.Command{
	Use:   "progress <input-file>",
	Short: "Report completion percentages for task progress records.",
	Long: `Derive completion percentages for a batch of task progress records.

Each record carries a current and a target value for one metric type
(story points, tasks or hours). Percentages are clamped to 0-100 and a
zero target reports as 0 rather than failing.

Examples:
  # Report progress from a JSON export
  burnlens progress tasks.json

  # Emit JSON for downstream tooling
  burnlens progress tasks.json --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteProgressReport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run progress report", err)
		}
	},
}
