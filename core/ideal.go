package core

import (
	"time"

	"github.com/northstarwang/burnlens/internal/contract"
	"github.com/northstarwang/burnlens/schema"
)

// BuildIdealLine generates the linear ideal baseline for a sprint: one point
// per calendar day from start to end inclusive, decaying from totalPoints to
// exactly zero. Timestamps are normalized to midnight UTC so that alignment
// by calendar-day key is stable regardless of the input's wall-clock times.
//
// A span that collapses to a single day produces a single point carrying the
// full total; the scale layer rejects such a line as a degenerate domain.
func BuildIdealLine(start, end time.Time, totalPoints float64) []schema.IdealPoint {
	first := midnightUTC(start)
	last := midnightUTC(end)

	days := contract.DaysBetween(first, last)
	if days == 0 {
		// Inverted span.
		return nil
	}
	line := make([]schema.IdealPoint, 0, days)
	for i := 0; i < days; i++ {
		remaining := totalPoints
		if days > 1 {
			remaining = totalPoints * float64(days-1-i) / float64(days-1)
		}
		line = append(line, schema.IdealPoint{
			Date:      schema.NewDate(first.AddDate(0, 0, i)),
			Remaining: remaining,
		})
	}
	return line
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
