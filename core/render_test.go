package core

import (
	"testing"

	"github.com/northstarwang/burnlens/internal/chart"
	"github.com/northstarwang/burnlens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dashedStrokes counts strokes painted with a dashed style.
func dashedStrokes(surface *chart.RecordingSurface) int {
	count := 0
	for _, op := range surface.OpsOfKind("stroke") {
		if op.Style.Dashed {
			count++
		}
	}
	return count
}

// TestRenderBurndown paints axes, both series, markers, labels and a legend
// for a populated sprint.
func TestRenderBurndown(t *testing.T) {
	b := sprintFixture(t,
		schema.BurndownPoint{Date: day(t, "2024-01-01"), Remaining: 20},
		schema.BurndownPoint{Date: day(t, "2024-01-03"), Remaining: 15},
	)
	surface := &chart.RecordingSurface{}

	RenderBurndown(surface, b, DefaultRenderOptions(800))

	assert.Equal(t, 800.0, surface.Width)
	assert.Equal(t, 300.0, surface.Height)

	// Axes, ideal, actual and two legend swatches. The ideal line and its
	// legend swatch share the dashed style.
	assert.Len(t, surface.OpsOfKind("stroke"), 5)
	assert.Equal(t, 2, dashedStrokes(surface))

	// One marker per aligned sample at exact surface coordinates.
	markers := surface.OpsOfKind("circle")
	require.Len(t, markers, 2)
	assert.InDelta(t, 40.0, markers[0].X, 0.001)
	assert.InDelta(t, 40.0, markers[0].Y, 0.001)
	assert.InDelta(t, 400.0, markers[1].X, 0.001)
	assert.InDelta(t, 95.0, markers[1].Y, 0.001)

	texts := surface.Texts()
	assert.Contains(t, texts, "Ideal")
	assert.Contains(t, texts, "Actual")
	assert.Contains(t, texts, "1/1")
	assert.Contains(t, texts, "20")
	assert.Contains(t, texts, "0")
	assert.NotContains(t, texts, "No data available")
}

// TestRenderBurndownLabelCaps keeps axis labels within their caps on a long
// sprint.
func TestRenderBurndownLabelCaps(t *testing.T) {
	b := &schema.SprintBurndown{
		TotalPoints: 30,
		StartDate:   day(t, "2024-01-01"),
		EndDate:     day(t, "2024-01-30"),
		DataPoints: []schema.BurndownPoint{
			{Date: day(t, "2024-01-10"), Remaining: 22},
		},
		IdealLine: BuildIdealLine(day(t, "2024-01-01").Time, day(t, "2024-01-30").Time, 30),
	}
	surface := &chart.RecordingSurface{}

	RenderBurndown(surface, b, DefaultRenderOptions(800))

	dateLabels := 0
	valueLabels := 0
	for _, text := range surface.Texts() {
		switch text {
		case "Ideal", "Actual":
		default:
			if len(text) > 0 && (text[0] >= '0' && text[0] <= '9') && containsSlash(text) {
				dateLabels++
			} else {
				valueLabels++
			}
		}
	}
	assert.LessOrEqual(t, dateLabels, schema.MaxXAxisLabels)
	assert.Equal(t, schema.MaxYAxisLabels, valueLabels)
}

func containsSlash(s string) bool {
	for _, r := range s {
		if r == '/' {
			return true
		}
	}
	return false
}

// TestRenderBurndownMissingInput draws nothing when the record or either
// series is absent.
func TestRenderBurndownMissingInput(t *testing.T) {
	tests := []struct {
		name string
		b    *schema.SprintBurndown
	}{
		{name: "nil record", b: nil},
		{name: "nil data points", b: &schema.SprintBurndown{
			IdealLine: idealLine(t, "2024-01-01", 10, 5, 0),
		}},
		{name: "nil ideal line", b: &schema.SprintBurndown{
			DataPoints: []schema.BurndownPoint{{Date: day(t, "2024-01-01"), Remaining: 10}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := &chart.RecordingSurface{}
			RenderBurndown(surface, tt.b, DefaultRenderOptions(800))
			assert.Empty(t, surface.Ops)
		})
	}
}

// TestRenderBurndownEmptyData shows axes, the ideal baseline and a placeholder
// message when the sprint has no samples yet.
func TestRenderBurndownEmptyData(t *testing.T) {
	b := sprintFixture(t)
	b.DataPoints = []schema.BurndownPoint{}
	surface := &chart.RecordingSurface{}

	RenderBurndown(surface, b, DefaultRenderOptions(800))

	assert.Len(t, surface.OpsOfKind("stroke"), 2)
	assert.Equal(t, 1, dashedStrokes(surface))
	assert.Empty(t, surface.OpsOfKind("circle"))
	assert.Equal(t, []string{"No data available"}, surface.Texts())
}

// TestRenderBurndownDegenerateDomain falls back to the no-data path on a
// single-point ideal line without crashing.
func TestRenderBurndownDegenerateDomain(t *testing.T) {
	b := &schema.SprintBurndown{
		TotalPoints: 8,
		DataPoints:  []schema.BurndownPoint{{Date: day(t, "2024-01-01"), Remaining: 8}},
		IdealLine:   []schema.IdealPoint{{Date: day(t, "2024-01-01"), Remaining: 8}},
	}
	surface := &chart.RecordingSurface{}

	RenderBurndown(surface, b, DefaultRenderOptions(800))

	// Axes only, then the placeholder.
	assert.Len(t, surface.OpsOfKind("stroke"), 1)
	assert.Empty(t, surface.OpsOfKind("circle"))
	assert.Equal(t, []string{"No data available"}, surface.Texts())
}

// TestRenderBurndownZeroTotal plots every sample on the baseline row.
func TestRenderBurndownZeroTotal(t *testing.T) {
	b := sprintFixture(t,
		schema.BurndownPoint{Date: day(t, "2024-01-02"), Remaining: 5},
	)
	b.TotalPoints = 0
	surface := &chart.RecordingSurface{}

	RenderBurndown(surface, b, DefaultRenderOptions(800))

	markers := surface.OpsOfKind("circle")
	require.Len(t, markers, 1)
	assert.InDelta(t, 260.0, markers[0].Y, 0.001)
}

// TestRenderBurndownSkipsUnaligned leaves samples outside the sprint span out
// of the drawing.
func TestRenderBurndownSkipsUnaligned(t *testing.T) {
	b := sprintFixture(t,
		schema.BurndownPoint{Date: day(t, "2024-01-02"), Remaining: 16},
		schema.BurndownPoint{Date: day(t, "2024-03-01"), Remaining: 2},
	)
	surface := &chart.RecordingSurface{}

	RenderBurndown(surface, b, DefaultRenderOptions(800))

	assert.Len(t, surface.OpsOfKind("circle"), 1)
}

// TestRenderBurndownHideIdealLine omits the dashed baseline on request. The
// legend keeps its dashed swatch so readers can still tell the series apart.
func TestRenderBurndownHideIdealLine(t *testing.T) {
	b := sprintFixture(t,
		schema.BurndownPoint{Date: day(t, "2024-01-02"), Remaining: 16},
	)
	opts := DefaultRenderOptions(800)
	opts.ShowIdealLine = false
	surface := &chart.RecordingSurface{}

	RenderBurndown(surface, b, opts)

	assert.Len(t, surface.OpsOfKind("stroke"), 4)
	assert.Equal(t, 1, dashedStrokes(surface))
}

// TestRenderBurndownIdempotent produces identical drawing calls when rendering
// the same record twice onto the same surface.
func TestRenderBurndownIdempotent(t *testing.T) {
	b := sprintFixture(t,
		schema.BurndownPoint{Date: day(t, "2024-01-02"), Remaining: 16},
	)
	opts := DefaultRenderOptions(800)

	first := &chart.RecordingSurface{}
	RenderBurndown(first, b, opts)

	second := &chart.RecordingSurface{}
	RenderBurndown(second, b, opts)
	RenderBurndown(second, b, opts)

	assert.Equal(t, first.Ops, second.Ops)
}
