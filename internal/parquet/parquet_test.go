package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/northstarwang/burnlens/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBurndownPointRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	rowSchema := parquet.SchemaOf(new(BurndownPointRow))
	require.NotNil(t, rowSchema)

	expectedColumns := []string{
		"burndown_id",
		"date",
		"remaining",
		"completed",
		"timestamp",
	}
	for _, colName := range expectedColumns {
		col, ok := rowSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestVelocityRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	rowSchema := parquet.SchemaOf(new(VelocityRow))
	require.NotNil(t, rowSchema)

	expectedColumns := []string{
		"team_id",
		"period",
		"period_start",
		"period_end",
		"planned_points",
		"completed_points",
		"velocity",
		"team_size",
		"available_hours",
	}
	for _, colName := range expectedColumns {
		col, ok := rowSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteBurndownPointsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "points.parquet")

	b := &schema.SprintBurndown{
		ID: "b-1",
		DataPoints: []schema.BurndownPoint{
			{
				Date:      schema.NewDate(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)),
				Remaining: 15,
				Completed: 5,
				Timestamp: time.Date(2024, 1, 3, 17, 0, 0, 0, time.UTC),
			},
		},
	}

	err := WriteBurndownPointsParquet(b, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[BurndownPointRow](file)
	defer func() { _ = reader.Close() }()

	rows := make([]BurndownPointRow, 1)
	n, _ := reader.Read(rows)
	require.Equal(t, 1, n)
	assert.Equal(t, "b-1", rows[0].BurndownID)
	assert.Equal(t, 15.0, rows[0].Remaining)
}

func TestWriteVelocityParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "velocity.parquet")

	records := []schema.TeamVelocity{
		{
			TeamID:          "platform",
			Period:          schema.SprintPeriod,
			PeriodStart:     schema.NewDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			PeriodEnd:       schema.NewDate(time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)),
			PlannedPoints:   30,
			CompletedPoints: 24,
			TeamSize:        5,
			AvailableHours:  320,
		},
		{
			TeamID:          "platform",
			Period:          schema.SprintPeriod,
			PeriodStart:     schema.NewDate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
			PeriodEnd:       schema.NewDate(time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC)),
			PlannedPoints:   30,
			CompletedPoints: 28,
			TeamSize:        5,
		},
	}

	err := WriteVelocityParquet(records, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[VelocityRow](file)
	defer func() { _ = reader.Close() }()

	rows := make([]VelocityRow, 2)
	n, _ := reader.Read(rows)
	require.Equal(t, 2, n)
	assert.Equal(t, 24.0, rows[0].Velocity)
	require.NotNil(t, rows[0].AvailableHours)
	assert.Equal(t, 320.0, *rows[0].AvailableHours)
	assert.Nil(t, rows[1].AvailableHours, "missing capacity should stay null")
}
