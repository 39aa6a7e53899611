package core

import (
	"math"
	"strconv"

	"github.com/northstarwang/burnlens/internal/chart"
	"github.com/northstarwang/burnlens/internal/contract"
	"github.com/northstarwang/burnlens/schema"
)

// markerRadius is the radius of the circular marker at each plotted sample.
const markerRadius = 4

// noDataMessage is painted when a burndown has no samples to plot.
const noDataMessage = "No data available"

// RenderOptions controls the chart geometry and which series are painted.
type RenderOptions struct {
	Width         float64
	Height        float64
	Padding       float64
	ShowIdealLine bool
}

// DefaultRenderOptions returns the standard options for a caller-chosen width.
func DefaultRenderOptions(width float64) RenderOptions {
	return RenderOptions{
		Width:         width,
		Height:        schema.DefaultChartHeight,
		Padding:       schema.DefaultChartPadding,
		ShowIdealLine: true,
	}
}

// RenderBurndown paints a burndown chart onto the surface: axes, the dashed
// ideal baseline, the solid actual trajectory with circular markers, axis
// labels and a legend. Rendering is synchronous and pure; the same record and
// options always produce the same drawing calls.
//
// When the record or either of its series is absent the function returns
// without drawing and the caller substitutes a placeholder. Every other
// degraded input (no samples, degenerate ideal line) is recovered into the
// no-data rendering path, so this function never fails.
func RenderBurndown(surface chart.Surface, b *schema.SprintBurndown, opts RenderOptions) {
	if surface == nil || b == nil || b.DataPoints == nil || b.IdealLine == nil {
		return
	}

	width, height, padding := opts.Width, opts.Height, opts.Padding
	if padding <= 0 {
		padding = schema.DefaultChartPadding
	}
	if height <= 2*padding {
		height = schema.DefaultChartHeight
	}
	if width <= 2*padding {
		width = 2 * schema.DefaultChartHeight
	}

	surface.Clear(width, height)
	drawAxes(surface, width, height, padding)

	scale, err := NewScale(width, height, padding, len(b.IdealLine), b.TotalPoints)
	if err != nil {
		// Zero-width domain; nothing is plottable.
		drawCenteredMessage(surface, width, height, noDataMessage)
		return
	}

	if opts.ShowIdealLine {
		drawIdealLine(surface, scale, b.IdealLine)
	}

	if len(b.DataPoints) == 0 {
		drawCenteredMessage(surface, width, height, noDataMessage)
		return
	}

	drawAxisLabels(surface, scale, b, width, height, padding)
	drawActualLine(surface, scale, AlignSeries(b.IdealLine, b.DataPoints))
	drawLegend(surface, width, padding)
}

func drawAxes(surface chart.Surface, width, height, padding float64) {
	surface.MoveTo(padding, padding)
	surface.LineTo(padding, height-padding)
	surface.LineTo(width-padding, height-padding)
	surface.Stroke(chart.AxisStroke)
}

func drawIdealLine(surface chart.Surface, scale Scale, ideal []schema.IdealPoint) {
	for i, p := range ideal {
		if i == 0 {
			surface.MoveTo(scale.X(i), scale.Y(p.Remaining))
		} else {
			surface.LineTo(scale.X(i), scale.Y(p.Remaining))
		}
	}
	surface.Stroke(chart.IdealStroke)
}

// drawActualLine connects consecutive present samples with a solid line and
// marks each with a circle. Samples with no ideal-line counterpart have no
// x-coordinate and are left out of the drawing entirely.
func drawActualLine(surface chart.Surface, scale Scale, aligned AlignedSeries) {
	started := false
	for i, p := range aligned.Index {
		if p == nil {
			continue
		}
		x, y := scale.X(i), scale.Y(p.Remaining)
		if !started {
			surface.MoveTo(x, y)
			started = true
		} else {
			surface.LineTo(x, y)
		}
	}
	if !started {
		return
	}
	surface.Stroke(chart.ActualStroke)

	for i, p := range aligned.Index {
		if p != nil {
			surface.FillCircle(scale.X(i), scale.Y(p.Remaining), markerRadius)
		}
	}
}

func drawAxisLabels(surface chart.Surface, scale Scale, b *schema.SprintBurndown, width, height, padding float64) {
	n := len(b.IdealLine)

	// Up to MaxXAxisLabels date labels, evenly spaced over the ideal index.
	step := (n + schema.MaxXAxisLabels - 1) / schema.MaxXAxisLabels
	if step < 1 {
		step = 1
	}
	for i := 0; i < n; i += step {
		label := contract.FormatMonthDay(b.IdealLine[i].Date.Time)
		surface.FillText(label, scale.X(i)-12, height-padding+16)
	}

	// MaxYAxisLabels value labels from 0 up to the planned total.
	divisions := schema.MaxYAxisLabels - 1
	for j := 0; j <= divisions; j++ {
		value := b.TotalPoints * float64(j) / float64(divisions)
		surface.FillText(formatPoints(value), padding-32, scale.Y(value)+4)
	}
}

func drawLegend(surface chart.Surface, width, padding float64) {
	x := width - padding - 120
	y := padding + 8

	surface.MoveTo(x, y)
	surface.LineTo(x+24, y)
	surface.Stroke(chart.IdealStroke)
	surface.FillText("Ideal", x+30, y+4)

	surface.MoveTo(x, y+16)
	surface.LineTo(x+24, y+16)
	surface.Stroke(chart.ActualStroke)
	surface.FillText("Actual", x+30, y+20)
}

func drawCenteredMessage(surface chart.Surface, width, height float64, msg string) {
	// Anchor roughly centers the default font at this size.
	surface.FillText(msg, width/2-50, height/2)
}

// formatPoints rounds to one decimal and drops trailing zeros, so "20" stays
// "20" and thirds don't overflow the label gutter.
func formatPoints(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
