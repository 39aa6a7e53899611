package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/northstarwang/burnlens/internal/contract"
	"github.com/northstarwang/burnlens/schema"
)

// velocityReport is the JSON envelope pairing the classification with the
// history it was derived from.
type velocityReport struct {
	Trend   schema.VelocityTrend  `json:"trend"`
	Records []schema.TeamVelocity `json:"records"`
}

// writeJSONResultsForVelocity marshals the trend and history to JSON and writes it.
func writeJSONResultsForVelocity(w io.Writer, trend schema.VelocityTrend, records []schema.TeamVelocity) error {
	return writeJSON(w, velocityReport{Trend: trend, Records: records})
}

// writeCSVResultsForVelocity writes the period history to a CSV writer.
func writeCSVResultsForVelocity(w *csv.Writer, records []schema.TeamVelocity, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
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
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, r := range records {
		row := []string{
			r.TeamID,
			string(r.Period),
			contract.FormatDate(r.PeriodStart.Time),
			contract.FormatDate(r.PeriodEnd.Time),
			fmtFloat(r.PlannedPoints),
			fmtFloat(r.CompletedPoints),
			fmtFloat(r.Velocity()),
			fmt.Sprintf("%d", r.TeamSize),
			fmtFloat(r.AvailableHours),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
