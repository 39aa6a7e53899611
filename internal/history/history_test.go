package history

import (
	"testing"
	"time"

	"github.com/northstarwang/burnlens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayAt(year int, month time.Month, d int) schema.Date {
	return schema.NewDate(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
}

func TestStore_NoneBackend(t *testing.T) {
	store, err := NewStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// All operations should be no-ops without error
	assert.NoError(t, store.RecordSummary(&schema.SprintBurndown{}, schema.BurndownSummary{}, time.Now()))
	assert.NoError(t, store.RecordVelocity(schema.TeamVelocity{}))

	records, err := store.ListVelocity("platform")
	assert.NoError(t, err)
	assert.Empty(t, records)

	counts, err := store.Status()
	assert.NoError(t, err)
	assert.Empty(t, counts)

	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Close())
}

func TestStore_UnsupportedBackend(t *testing.T) {
	_, err := NewStore(schema.DatabaseBackend("oracle"), "")
	assert.ErrorContains(t, err, "unsupported backend")
}

func TestStore_SQLite(t *testing.T) {
	// Use in-memory SQLite for testing
	store, err := NewStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Record a burndown snapshot
	b := &schema.SprintBurndown{ID: "b-1", SprintID: "sprint-42", Type: schema.SprintBurndownType}
	summary := schema.BurndownSummary{
		ProgressPercent: 25,
		OnTrack:         true,
		TotalPoints:     20,
		Remaining:       15,
		Completed:       5,
		HasData:         true,
	}
	require.NoError(t, store.RecordSummary(b, summary, time.Now()))

	// Record velocity periods out of order
	require.NoError(t, store.RecordVelocity(schema.TeamVelocity{
		TeamID:          "platform",
		Period:          schema.SprintPeriod,
		PeriodStart:     dayAt(2024, 1, 15),
		PeriodEnd:       dayAt(2024, 1, 28),
		PlannedPoints:   30,
		CompletedPoints: 28,
		TeamSize:        5,
	}))
	require.NoError(t, store.RecordVelocity(schema.TeamVelocity{
		TeamID:          "platform",
		Period:          schema.SprintPeriod,
		PeriodStart:     dayAt(2024, 1, 1),
		PeriodEnd:       dayAt(2024, 1, 14),
		PlannedPoints:   30,
		CompletedPoints: 24,
		TeamSize:        5,
		AvailableHours:  320,
	}))
	require.NoError(t, store.RecordVelocity(schema.TeamVelocity{
		TeamID:          "web",
		Period:          schema.SprintPeriod,
		PeriodStart:     dayAt(2024, 1, 1),
		PeriodEnd:       dayAt(2024, 1, 14),
		PlannedPoints:   10,
		CompletedPoints: 8,
		TeamSize:        3,
	}))

	// ListVelocity filters by team and returns oldest first
	records, err := store.ListVelocity("platform")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-01-01", records[0].PeriodStart.Key())
	assert.Equal(t, 24.0, records[0].CompletedPoints)
	assert.Equal(t, 320.0, records[0].AvailableHours)
	assert.Equal(t, "2024-01-15", records[1].PeriodStart.Key())

	// Status reports per-table counts
	counts, err := store.Status()
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[snapshotsTable])
	assert.Equal(t, int64(3), counts[velocityTable])

	// Clear removes everything
	require.NoError(t, store.Clear())
	counts, err = store.Status()
	require.NoError(t, err)
	assert.Equal(t, int64(0), counts[snapshotsTable])
	assert.Equal(t, int64(0), counts[velocityTable])
}

func TestStore_SQLiteFile(t *testing.T) {
	dbPath := t.TempDir() + "/history.db"

	store, err := NewStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.RecordVelocity(schema.TeamVelocity{
		TeamID:      "platform",
		Period:      schema.SprintPeriod,
		PeriodStart: dayAt(2024, 1, 1),
		PeriodEnd:   dayAt(2024, 1, 14),
	}))
	require.NoError(t, store.Close())

	// Data survives reopening the same file
	store, err = NewStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	records, err := store.ListVelocity("platform")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
