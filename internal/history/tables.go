package history

import (
	"database/sql"
	"fmt"

	"github.com/northstarwang/burnlens/schema"
)

// createHistoryTables creates the history tables when they don't exist yet.
// The migrate command manages versioned schema changes on top of this base.
func createHistoryTables(db *sql.DB, backend schema.DatabaseBackend) error {
	tables := []struct {
		name  string
		query string
	}{
		{snapshotsTable, getCreateSnapshotsQuery(backend)},
		{velocityTable, getCreateVelocityQuery(backend)},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}
	return nil
}

// getCreateSnapshotsQuery returns the CREATE TABLE query for burnlens_snapshots.
func getCreateSnapshotsQuery(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return `
			CREATE TABLE IF NOT EXISTS ` + snapshotsTable + ` (
				snapshot_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				burndown_id VARCHAR(100) NOT NULL,
				sprint_id VARCHAR(100) NOT NULL,
				burndown_type VARCHAR(20) NOT NULL,
				captured_at DATETIME(6) NOT NULL,
				progress_percent DOUBLE NOT NULL,
				on_track BOOLEAN NOT NULL,
				total_points DOUBLE NOT NULL,
				remaining DOUBLE NOT NULL,
				completed DOUBLE NOT NULL,
				has_data BOOLEAN NOT NULL
			);
		`

	case schema.PostgreSQLBackend:
		return `
			CREATE TABLE IF NOT EXISTS ` + snapshotsTable + ` (
				snapshot_id BIGSERIAL PRIMARY KEY,
				burndown_id TEXT NOT NULL,
				sprint_id TEXT NOT NULL,
				burndown_type TEXT NOT NULL,
				captured_at TIMESTAMPTZ NOT NULL,
				progress_percent DOUBLE PRECISION NOT NULL,
				on_track BOOLEAN NOT NULL,
				total_points DOUBLE PRECISION NOT NULL,
				remaining DOUBLE PRECISION NOT NULL,
				completed DOUBLE PRECISION NOT NULL,
				has_data BOOLEAN NOT NULL
			);
		`

	default: // SQLite
		return `
			CREATE TABLE IF NOT EXISTS ` + snapshotsTable + ` (
				snapshot_id INTEGER PRIMARY KEY AUTOINCREMENT,
				burndown_id TEXT NOT NULL,
				sprint_id TEXT NOT NULL,
				burndown_type TEXT NOT NULL,
				captured_at TEXT NOT NULL,
				progress_percent REAL NOT NULL,
				on_track BOOLEAN NOT NULL,
				total_points REAL NOT NULL,
				remaining REAL NOT NULL,
				completed REAL NOT NULL,
				has_data BOOLEAN NOT NULL
			);
		`
	}
}

// getCreateVelocityQuery returns the CREATE TABLE query for burnlens_velocity.
func getCreateVelocityQuery(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return `
			CREATE TABLE IF NOT EXISTS ` + velocityTable + ` (
				velocity_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				team_id VARCHAR(100) NOT NULL,
				period VARCHAR(20) NOT NULL,
				period_start VARCHAR(10) NOT NULL,
				period_end VARCHAR(10) NOT NULL,
				planned_points DOUBLE NOT NULL,
				completed_points DOUBLE NOT NULL,
				team_size INT NOT NULL,
				available_hours DOUBLE NOT NULL,
				INDEX idx_velocity_team (team_id, period_start)
			);
		`

	case schema.PostgreSQLBackend:
		return `
			CREATE TABLE IF NOT EXISTS ` + velocityTable + ` (
				velocity_id BIGSERIAL PRIMARY KEY,
				team_id TEXT NOT NULL,
				period TEXT NOT NULL,
				period_start TEXT NOT NULL,
				period_end TEXT NOT NULL,
				planned_points DOUBLE PRECISION NOT NULL,
				completed_points DOUBLE PRECISION NOT NULL,
				team_size INT NOT NULL,
				available_hours DOUBLE PRECISION NOT NULL
			);
		`

	default: // SQLite
		return `
			CREATE TABLE IF NOT EXISTS ` + velocityTable + ` (
				velocity_id INTEGER PRIMARY KEY AUTOINCREMENT,
				team_id TEXT NOT NULL,
				period TEXT NOT NULL,
				period_start TEXT NOT NULL,
				period_end TEXT NOT NULL,
				planned_points REAL NOT NULL,
				completed_points REAL NOT NULL,
				team_size INTEGER NOT NULL,
				available_hours REAL NOT NULL
			);
		`
	}
}
