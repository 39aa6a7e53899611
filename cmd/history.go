package cmd

import (
	"errors"
	"fmt"

	"github.com/northstarwang/burnlens/internal/contract"
	"github.com/northstarwang/burnlens/internal/history"
	"github.com/northstarwang/burnlens/internal/parquet"
	"github.com/northstarwang/burnlens/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need store access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as the SQLite default so that bare
	// "burnlens history status" inspects the local database file.
	backend := schema.DatabaseBackend(backendStr)
	if backendStr == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidHistoryBackends[backend]; !ok {
		return fmt.Errorf("invalid history backend: %s", backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Team = viper.GetString("team")

	store, err := history.NewStore(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to initialize history store: %w", err)
	}
	historyStore = store

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	backend := schema.DatabaseBackend(backendStr)
	if backendStr == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidHistoryBackends[backend]; !ok {
		return fmt.Errorf("invalid history backend: %s", backendStr)
	}

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for migrate command.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// historyCmd focused on history data management.
//
// Note: History subcommands use minimal initialization (historySetup) instead
// of the full sharedSetup used by report commands. This avoids report config
// processing for simple store operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage recorded burndown snapshots and velocity history",
	Long: `Manage the recorded history of burndown snapshots and velocity periods.

When reports run with --record, Burnlens stores:
- Burndown summary snapshots (progress, remaining, on-track status)
- Closed velocity periods per team

This enables trend classification across sprints and data export for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show history statistics
  export  - Export velocity history to Parquet
  clear   - Remove all recorded history
  migrate - Run database schema migrations

Examples:
  # Check history status
  burnlens history status

  # Export a team's velocity history for analytics
  burnlens history export --team platform --output-file velocity.parquet`,
}

// historyStatusCmd shows history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display history statistics and connection details",
	Long: `Show row counts for the recorded history tables.

Use this to:
- Verify recording is enabled and working
- Monitor data accumulation over time
- Debug backend connection issues

Examples:
  # Check history status
  burnlens history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		counts, err := historyStore.Status()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		history.PrintStatus(cfg.HistoryBackend, counts)
	},
}

// historyClearCmd clears the recorded history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded burndown and velocity history",
	Long: `Delete all stored burndown snapshots and velocity periods.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  burnlens history export --team platform --output-file backup.parquet
  burnlens history clear`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := historyStore.Clear(); err != nil {
			contract.LogFatal("Failed to clear history", err)
		}
		fmt.Println("History cleared successfully.")
	},
}

// historyExportCmd exports velocity history to a Parquet file.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export velocity history to Parquet for BI tools and analytics",
	Long: `Export a team's recorded velocity periods to Parquet format.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --team and --output-file parameters

Examples:
  # Export all recorded periods for a team
  burnlens history export --team platform --output-file velocity.parquet

  # Use with DuckDB for analysis
  duckdb -c "SELECT * FROM read_parquet('velocity.parquet') LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := exportVelocityHistory(); err != nil {
			contract.LogFatal("Failed to export history", err)
		}
	},
}

func exportVelocityHistory() error {
	if cfg.Team == "" {
		return errors.New("--team is required for export")
	}
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for export")
	}
	records, err := historyStore.ListVelocity(cfg.Team)
	if err != nil {
		return err
	}
	if err := parquet.WriteVelocityParquet(records, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Printf("Exported %d velocity periods to %s\n", len(records), cfg.OutputFile)
	return nil
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the history store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  burnlens history migrate

  # Migrate to specific version
  burnlens history migrate --target-version 1

  # Rollback to previous version
  burnlens history migrate --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := history.Migrate(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
