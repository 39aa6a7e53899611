// Package cmd defines the command-line interface for burnlens.
package cmd

import (
	"github.com/northstarwang/burnlens/internal/contract"
	"github.com/northstarwang/burnlens/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(burndownCmd)
	rootCmd.AddCommand(velocityCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Float64("slack", schema.DefaultOnTrackSlack, "On-track slack fraction applied over the ideal remaining")
	rootCmd.PersistentFlags().Float64("trend-tolerance", schema.DefaultTrendTolerance, "Relative tolerance band for the stable trend classification")
	rootCmd.PersistentFlags().Int("recent-window", 0, "Number of most recent periods in the trend comparison window (0 = auto)")
	rootCmd.PersistentFlags().StringP("team", "t", "", "Team identifier for history reads and writes")
	rootCmd.PersistentFlags().Bool("record", false, "Record results into the history backend")
	rootCmd.PersistentFlags().String("history-backend", "", "History backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of burndownCmd to Viper
	burndownCmd.Flags().Int("chart-height", schema.DefaultChartHeight, "Chart height in pixels")
	burndownCmd.Flags().Int("chart-width", 0, "Chart width in pixels (0 = derive from terminal width)")
	burndownCmd.Flags().String("chart-file", "", "Optional path to write an SVG chart to")
	burndownCmd.Flags().Bool("no-ideal-line", false, "Omit the dashed ideal line from the chart")
	if err := viper.BindPFlags(burndownCmd.Flags()); err != nil {
		contract.LogFatal("Error binding burndown flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
