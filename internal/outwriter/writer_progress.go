package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/northstarwang/burnlens/schema"
)

// progressRow is the JSON form of one task's progress with its derived percentage.
type progressRow struct {
	schema.TaskProgress
	PercentComplete float64 `json:"percentage_complete"`
}

// writeJSONResultsForProgress marshals the progress batch to JSON and writes it.
func writeJSONResultsForProgress(w io.Writer, records []schema.TaskProgress) error {
	rows := make([]progressRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, progressRow{TaskProgress: r, PercentComplete: r.PercentComplete()})
	}
	return writeJSON(w, rows)
}

// writeCSVResultsForProgress writes the progress batch to a CSV writer.
func writeCSVResultsForProgress(w *csv.Writer, records []schema.TaskProgress, fmtFloat func(float64) string) error {
	header := []string{
		"task_id",
		"metric_type",
		"current_value",
		"target_value",
		"percentage_complete",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.TaskID,
			string(r.MetricType),
			fmtFloat(r.CurrentValue),
			fmtFloat(r.TargetValue),
			fmt.Sprintf("%.2f", r.PercentComplete()),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
