package cmd

import (
	"github.com/northstarwang/burnlens/core"
	"github.com/northstarwang/burnlens/internal/contract"
	"github.com/spf13/cobra"
)

// velocityCmd classifies a team's velocity trend.
var velocityCmd = &cobra.Command{
	Use:   "velocity [input-file]",
	Short: "Classify a team's velocity trend from period history.",
	Long: `Compare recent and earlier velocity averages and classify the trend.

Reads closed velocity periods from a JSON file, or from the history backend
when --team is given without a file, and reports whether the team's
throughput is improving, declining or stable, helping you:
- Ground sprint planning in real throughput numbers
- Spot a slowdown before it becomes a missed release
- Separate noise from genuine velocity shifts with a tolerance band

Examples:
  # Classify a trend from a JSON export
  burnlens velocity velocity.json

  # Read from recorded history instead of a file
  burnlens velocity --team platform --history-backend sqlite

  # Widen the stable band to 20%
  burnlens velocity velocity.json --trend-tolerance 0.2

  # Compare only the last three periods against the rest
  burnlens velocity velocity.json --recent-window 3

  # Record the periods while classifying
  burnlens velocity velocity.json --record --history-backend sqlite --team platform`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteVelocityReport(rootCtx, cfg, historyStore); err != nil {
			contract.LogFatal("Cannot run velocity report", err)
		}
	},
}
