// Package parquet provides data structures and functions for exporting
// burnlens analytics to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/northstarwang/burnlens/schema"
	"github.com/parquet-go/parquet-go"
)

// BurndownPointRow is one observed burndown sample in warehouse form.
type BurndownPointRow struct {
	// BurndownID identifies the parent burndown record
	BurndownID string `parquet:"burndown_id,snappy"`

	// Date is the calendar day the sample belongs to
	Date time.Time `parquet:"date,snappy"`

	// Remaining is the story points still open on that day
	Remaining float64 `parquet:"remaining,snappy"`

	// Completed is the story points closed on that day
	Completed float64 `parquet:"completed,snappy"`

	// Timestamp is when the sample was recorded
	Timestamp time.Time `parquet:"timestamp,snappy"`
}

// VelocityRow is one closed velocity period in warehouse form.
type VelocityRow struct {
	// TeamID identifies the team the period belongs to
	TeamID string `parquet:"team_id,snappy"`

	// Period is the cadence the record covers (sprint, week, month, quarter)
	Period string `parquet:"period,snappy"`

	// PeriodStart and PeriodEnd bound the period
	PeriodStart time.Time `parquet:"period_start,snappy"`
	PeriodEnd   time.Time `parquet:"period_end,snappy"`

	// PlannedPoints is the committed scope at period start
	PlannedPoints float64 `parquet:"planned_points,snappy"`

	// CompletedPoints is the scope closed by period end
	CompletedPoints float64 `parquet:"completed_points,snappy"`

	// Velocity is the derived work rate for the period
	Velocity float64 `parquet:"velocity,snappy"`

	// TeamSize is the headcount during the period
	TeamSize int32 `parquet:"team_size,snappy"`

	// AvailableHours is the capacity during the period (nullable)
	AvailableHours *float64 `parquet:"available_hours,optional,snappy"`
}

// WriteBurndownPointsParquet writes a burndown's samples to a Parquet file.
func WriteBurndownPointsParquet(b *schema.SprintBurndown, outputPath string) error {
	rows := make([]BurndownPointRow, 0, len(b.DataPoints))
	for _, p := range b.DataPoints {
		rows = append(rows, BurndownPointRow{
			BurndownID: b.ID,
			Date:       p.Date.Time,
			Remaining:  p.Remaining,
			Completed:  p.Completed,
			Timestamp:  p.Timestamp,
		})
	}
	return writeParquet(rows, outputPath)
}

// WriteVelocityParquet writes velocity records to a Parquet file.
func WriteVelocityParquet(records []schema.TeamVelocity, outputPath string) error {
	rows := make([]VelocityRow, 0, len(records))
	for _, r := range records {
		row := VelocityRow{
			TeamID:          r.TeamID,
			Period:          string(r.Period),
			PeriodStart:     r.PeriodStart.Time,
			PeriodEnd:       r.PeriodEnd.Time,
			PlannedPoints:   r.PlannedPoints,
			CompletedPoints: r.CompletedPoints,
			Velocity:        r.Velocity(),
			TeamSize:        int32(r.TeamSize),
		}
		if r.AvailableHours > 0 {
			hours := r.AvailableHours
			row.AvailableHours = &hours
		}
		rows = append(rows, row)
	}
	return writeParquet(rows, outputPath)
}

// writeParquet writes any row slice to a Parquet file using struct schema
// inference from the row type's tags.
func writeParquet[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
