// Package chart provides the drawing-surface capability interface for the
// burndown renderer, plus an SVG backend and a recording backend for tests.
// The engine only ever talks to the Surface interface, so it stays testable
// without a real rendering target.
package chart

// StrokeStyle selects how the current path is stroked.
type StrokeStyle struct {
	Dashed bool
	Color  string
	Width  float64
}

// Stroke styles used by the renderer.
var (
	AxisStroke   = StrokeStyle{Color: "#888888", Width: 1}
	IdealStroke  = StrokeStyle{Dashed: true, Color: "#999999", Width: 1.5}
	ActualStroke = StrokeStyle{Color: "#2b7fa8", Width: 2}
)

// Surface is the minimal drawing capability the renderer needs.
// MoveTo starts a new subpath, LineTo extends it, and Stroke flushes every
// pending subpath with the given style. Clear resets the surface to the given
// dimensions and must be called before any drawing.
type Surface interface {
	Clear(width, height float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke(style StrokeStyle)
	FillCircle(x, y, radius float64)
	FillText(text string, x, y float64)
}
