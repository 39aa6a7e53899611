package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// dayAt builds a calendar date without wall-clock noise.
func dayAt(year int, month time.Month, d int) Date {
	return NewDate(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
}

// TestTaskProgressPercentComplete clamps and guards the percentage math.
func TestTaskProgressPercentComplete(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		target   float64
		expected float64
	}{
		{name: "halfway", current: 5, target: 10, expected: 50},
		{name: "complete", current: 10, target: 10, expected: 100},
		{name: "overshoot clamps to 100", current: 15, target: 10, expected: 100},
		{name: "negative clamps to 0", current: -5, target: 10, expected: 0},
		{name: "zero target", current: 5, target: 0, expected: 0},
		{name: "negative target", current: 5, target: -10, expected: 0},
		{name: "nothing done", current: 0, target: 10, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := TaskProgress{CurrentValue: tt.current, TargetValue: tt.target}
			assert.InDelta(t, tt.expected, p.PercentComplete(), 0.001)
		})
	}
}

// TestTeamVelocityVelocity equates velocity with completed points per period.
func TestTeamVelocityVelocity(t *testing.T) {
	v := TeamVelocity{PlannedPoints: 30, CompletedPoints: 24}
	assert.Equal(t, 24.0, v.Velocity())
}

// TestCheckIdealLine validates the daily monotone decay invariant.
func TestCheckIdealLine(t *testing.T) {
	valid := []IdealPoint{
		{Date: dayAt(2024, 1, 1), Remaining: 10},
		{Date: dayAt(2024, 1, 2), Remaining: 5},
		{Date: dayAt(2024, 1, 3), Remaining: 0},
	}

	tests := []struct {
		name    string
		total   float64
		line    []IdealPoint
		wantErr string
	}{
		{name: "valid", total: 10, line: valid},
		{name: "empty", total: 10, line: nil, wantErr: "empty"},
		{
			name:    "wrong start",
			total:   12,
			line:    valid,
			wantErr: "starts at",
		},
		{
			name:  "nonzero end",
			total: 10,
			line: []IdealPoint{
				{Date: dayAt(2024, 1, 1), Remaining: 10},
				{Date: dayAt(2024, 1, 2), Remaining: 2},
			},
			wantErr: "ends at",
		},
		{
			name:  "calendar gap",
			total: 10,
			line: []IdealPoint{
				{Date: dayAt(2024, 1, 1), Remaining: 10},
				{Date: dayAt(2024, 1, 3), Remaining: 0},
			},
			wantErr: "calendar gap",
		},
		{
			name:  "unordered dates",
			total: 10,
			line: []IdealPoint{
				{Date: dayAt(2024, 1, 2), Remaining: 10},
				{Date: dayAt(2024, 1, 1), Remaining: 0},
			},
			wantErr: "strictly increasing",
		},
		{
			name:  "remaining increases",
			total: 10,
			line: []IdealPoint{
				{Date: dayAt(2024, 1, 1), Remaining: 10},
				{Date: dayAt(2024, 1, 2), Remaining: 12},
				{Date: dayAt(2024, 1, 3), Remaining: 0},
			},
			wantErr: "increases",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &SprintBurndown{TotalPoints: tt.total, IdealLine: tt.line}
			err := CheckIdealLine(b)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
