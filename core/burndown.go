package core

import (
	"time"

	"github.com/northstarwang/burnlens/schema"
)

// clampPercent bounds a percentage to [0,100].
func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// latestPoint returns the most recently dated sample, or nil when there are
// none. Sample order is not assumed.
func latestPoint(points []schema.BurndownPoint) *schema.BurndownPoint {
	var latest *schema.BurndownPoint
	for i := range points {
		p := &points[i]
		if latest == nil || p.Date.After(latest.Date.Time) {
			latest = p
		}
	}
	return latest
}

// Summarize derives the display metrics for a burndown: progress percentage,
// on-track status and remaining/completed totals. The slack parameter is the
// fraction by which actual remaining work may exceed the ideal line at the
// same date while still counting as on track.
//
// On-track defaults to true when there are no samples or the latest sample's
// date has no ideal-line counterpart. The optimistic default avoids false
// alarms on incomplete data.
func Summarize(b *schema.SprintBurndown, slack float64) schema.BurndownSummary {
	summary := schema.BurndownSummary{OnTrack: true}
	if b == nil {
		return summary
	}
	summary.TotalPoints = b.TotalPoints

	latest := latestPoint(b.DataPoints)
	if latest == nil {
		return summary
	}
	summary.HasData = true
	summary.Remaining = latest.Remaining

	// Completed aggregates every sample, including ones dated outside the
	// sprint range that the renderer cannot plot.
	for _, p := range b.DataPoints {
		summary.Completed += p.Completed
	}

	if b.TotalPoints > 0 {
		summary.ProgressPercent = clampPercent((b.TotalPoints - latest.Remaining) / b.TotalPoints * 100)
	}

	if ideal, ok := idealAt(b.IdealLine, latest.Date.Time); ok {
		summary.OnTrack = latest.Remaining <= ideal.Remaining*(1+slack)
	}
	return summary
}

// idealAt finds the ideal-line point for the same calendar day, if any.
func idealAt(ideal []schema.IdealPoint, date time.Time) (schema.IdealPoint, bool) {
	key := schema.DateKey(date)
	for _, ip := range ideal {
		if ip.Date.Key() == key {
			return ip, true
		}
	}
	return schema.IdealPoint{}, false
}
