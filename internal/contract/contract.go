// Package contract holds the validated configuration, shared interfaces and
// small utilities that every other part of burnlens builds on.
package contract

import (
	"time"

	"github.com/northstarwang/burnlens/schema"
)

// HistoryStore persists analytics outputs: burndown summaries captured at
// render time and velocity records captured at period close. The store is
// append-only; nothing updates or versions past rows.
type HistoryStore interface {
	// RecordSummary appends a burndown summary snapshot.
	RecordSummary(b *schema.SprintBurndown, summary schema.BurndownSummary, capturedAt time.Time) error

	// RecordVelocity appends one closed velocity period.
	RecordVelocity(v schema.TeamVelocity) error

	// ListVelocity returns a team's velocity history, oldest first.
	ListVelocity(teamID string) ([]schema.TeamVelocity, error)

	// Status returns row counts per table for diagnostics.
	Status() (map[string]int64, error)

	// Clear removes all stored history.
	Clear() error

	// Close releases the underlying database handle.
	Close() error
}
