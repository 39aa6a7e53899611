package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/northstarwang/burnlens/schema"
)

// burndownReport is the JSON envelope pairing identifiers with the summary.
// Remaining and completed are pointers so that a burndown without samples
// omits them instead of reporting a spurious zero.
type burndownReport struct {
	ID              string              `json:"id"`
	SprintID        string              `json:"sprint_id"`
	Type            schema.BurndownType `json:"burndown_type"`
	ProgressPercent float64             `json:"progress_percent"`
	OnTrack         bool                `json:"on_track"`
	TotalPoints     float64             `json:"total_points"`
	Remaining       *float64            `json:"remaining,omitempty"`
	Completed       *float64            `json:"completed,omitempty"`
	HasData         bool                `json:"has_data"`
}

// writeJSONResultsForBurndown marshals the summary to JSON and writes it.
func writeJSONResultsForBurndown(w io.Writer, summary schema.BurndownSummary, b *schema.SprintBurndown) error {
	report := burndownReport{
		ID:              b.ID,
		SprintID:        b.SprintID,
		Type:            b.Type,
		ProgressPercent: summary.ProgressPercent,
		OnTrack:         summary.OnTrack,
		TotalPoints:     summary.TotalPoints,
		HasData:         summary.HasData,
	}
	if summary.HasData {
		report.Remaining = &summary.Remaining
		report.Completed = &summary.Completed
	}
	return writeJSON(w, report)
}

// writeCSVResultsForBurndown writes the summary as a single CSV record.
func writeCSVResultsForBurndown(w *csv.Writer, summary schema.BurndownSummary, b *schema.SprintBurndown, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"id",
		"sprint_id",
		"burndown_type",
		"progress_percent",
		"on_track",
		"total_points",
		"remaining",
		"completed",
		"has_data",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Row. Remaining and completed are blank without samples.
	remaining, completed := "", ""
	if summary.HasData {
		remaining = fmtFloat(summary.Remaining)
		completed = fmtFloat(summary.Completed)
	}
	row := []string{
		b.ID,
		b.SprintID,
		string(b.Type),
		fmtFloat(summary.ProgressPercent),
		fmt.Sprintf("%t", summary.OnTrack),
		fmtFloat(summary.TotalPoints),
		remaining,
		completed,
		fmt.Sprintf("%t", summary.HasData),
	}
	return w.Write(row)
}
