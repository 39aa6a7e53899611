package core

import (
	"github.com/northstarwang/burnlens/schema"
)

// VelocityOptions tunes the trend classification.
type VelocityOptions struct {
	// RecentWindow is how many of the most recent periods form the "recent"
	// average. Zero selects the default of half the history, rounded up.
	RecentWindow int

	// Tolerance is the half-width of the stable band relative to the
	// earlier-window average. Zero is a strict band where any change
	// classifies as a trend; negative selects schema.DefaultTrendTolerance.
	Tolerance float64
}

// AnalyzeVelocity classifies a team's velocity trend by comparing the average
// velocity of a recent window of periods against the average of the earlier
// periods. Records are expected in chronological order, oldest first.
func AnalyzeVelocity(records []schema.TeamVelocity, opts VelocityOptions) schema.VelocityTrend {
	result := schema.VelocityTrend{
		Trend:   schema.InsufficientDataTrend,
		Periods: len(records),
	}
	result.AverageVelocity = meanVelocity(records)
	if len(records) < schema.MinTrendPeriods {
		return result
	}

	tolerance := opts.Tolerance
	if tolerance < 0 {
		tolerance = schema.DefaultTrendTolerance
	}

	window := opts.RecentWindow
	if window <= 0 {
		window = (len(records) + 1) / 2
	}
	if window >= len(records) {
		window = len(records) - 1
	}

	split := len(records) - window
	result.EarlierAverage = meanVelocity(records[:split])
	result.RecentAverage = meanVelocity(records[split:])

	switch {
	case result.EarlierAverage == 0:
		// Nothing to compare against; any completed work reads as improvement.
		if result.RecentAverage > 0 {
			result.Trend = schema.ImprovingTrend
		} else {
			result.Trend = schema.StableTrend
		}
	case result.RecentAverage > result.EarlierAverage*(1+tolerance):
		result.Trend = schema.ImprovingTrend
	case result.RecentAverage < result.EarlierAverage*(1-tolerance):
		result.Trend = schema.DecliningTrend
	default:
		result.Trend = schema.StableTrend
	}
	return result
}

func meanVelocity(records []schema.TeamVelocity) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += r.Velocity()
	}
	return sum / float64(len(records))
}
