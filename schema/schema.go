// Package schema has configs, models and global variables for all parts of burnlens.
package schema

import "time"

// BurndownPoint represents a single observed progress sample for a burndown.
// Points are produced by the tracking collaborator as work completes; they are
// ordered by date but may contain calendar gaps.
type BurndownPoint struct {
	Date      Date      `json:"date"`      // Calendar day the sample belongs to
	Remaining float64   `json:"remaining"` // Story points still open on that day
	Completed float64   `json:"completed"` // Story points closed on that day
	Timestamp time.Time `json:"timestamp"` // When the sample was recorded
}

// IdealPoint is one step of the theoretical constant-rate completion
// trajectory from total points down to zero by the end date.
type IdealPoint struct {
	Date      Date    `json:"date"`
	Remaining float64 `json:"remaining"`
}

// SprintBurndown aggregates everything needed to chart one burndown:
// the sprint's calendar span, its planned total, the dense ideal line and
// the sparse observed samples.
type SprintBurndown struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	SprintID    string          `json:"sprint_id"`
	Type        BurndownType    `json:"burndown_type"`
	StartDate   Date            `json:"start_date"`
	EndDate     Date            `json:"end_date"`
	TotalPoints float64         `json:"total_points"`
	DataPoints  []BurndownPoint `json:"data_points"`
	IdealLine   []IdealPoint    `json:"ideal_line"`
}

// TeamVelocity is one closed period of planned-vs-completed work for a team.
// Records are created at period close and never mutated afterwards.
type TeamVelocity struct {
	TeamID          string         `json:"team_id"`
	Period          VelocityPeriod `json:"period"`
	PeriodStart     Date           `json:"period_start"`
	PeriodEnd       Date           `json:"period_end"`
	PlannedPoints   float64        `json:"planned_points"`
	CompletedPoints float64        `json:"completed_points"`
	TeamSize        int            `json:"team_size"`
	AvailableHours  float64        `json:"available_hours"`
}

// Velocity is the derived work rate for the period, defined as the
// completed points.
func (v TeamVelocity) Velocity() float64 {
	return v.CompletedPoints
}

// TaskProgress tracks a single task against its target in some metric.
// Superseded records are replaced, not versioned.
type TaskProgress struct {
	TaskID       string     `json:"task_id"`
	MetricType   MetricType `json:"metric_type"`
	CurrentValue float64    `json:"current_value"`
	TargetValue  float64    `json:"target_value"`
}

// PercentComplete derives the completion percentage, clamped to [0,100].
// A zero target yields 0 rather than a division fault.
func (p TaskProgress) PercentComplete() float64 {
	if p.TargetValue <= 0 {
		return 0
	}
	pct := p.CurrentValue / p.TargetValue * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// BurndownSummary holds the derived metrics displayed alongside a chart.
// Remaining and Completed are only meaningful when HasData is true.
type BurndownSummary struct {
	ProgressPercent float64 `json:"progress_percent"`
	OnTrack         bool    `json:"on_track"`
	TotalPoints     float64 `json:"total_points"`
	Remaining       float64 `json:"remaining"`
	Completed       float64 `json:"completed"`
	HasData         bool    `json:"has_data"`
}

// VelocityTrend is the classification result for a team's velocity history.
type VelocityTrend struct {
	Trend           TrendClass `json:"trend"`
	AverageVelocity float64    `json:"average_velocity"`
	RecentAverage   float64    `json:"recent_average"`
	EarlierAverage  float64    `json:"earlier_average"`
	Periods         int        `json:"periods"`
}
