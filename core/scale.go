package core

import "errors"

// ErrDegenerateDomain signals that the ideal line has fewer than two points,
// leaving a zero-width x domain. Callers recover by falling back to the
// no-data rendering path.
var ErrDegenerateDomain = errors.New("degenerate domain: ideal line needs at least 2 points")

// Scale is the affine transform from (date-index, remaining-points) domain
// coordinates to drawing-surface coordinates. All drawing primitives compose
// through X and Y, which keeps the baseline, the actual trajectory, markers
// and labels on consistent axes.
type Scale struct {
	width   float64
	height  float64
	padding float64
	xScale  float64
	yScale  float64
}

// NewScale computes the transform for a surface of the given size with fixed
// padding on all sides, n ideal-line points on the x axis and maxPoints at the
// top of the y axis. A zero maxPoints yields a zero y-scale so that every
// value maps onto the baseline row; this is deliberate, not an error.
func NewScale(width, height, padding float64, n int, maxPoints float64) (Scale, error) {
	if n < 2 {
		return Scale{}, ErrDegenerateDomain
	}
	s := Scale{
		width:   width,
		height:  height,
		padding: padding,
		xScale:  (width - 2*padding) / float64(n-1),
	}
	if maxPoints > 0 {
		s.yScale = (height - 2*padding) / maxPoints
	}
	return s, nil
}

// X maps an ideal-line index to a surface x-coordinate.
func (s Scale) X(index int) float64 {
	return s.padding + float64(index)*s.xScale
}

// Y maps a remaining-points value to a surface y-coordinate. The surface
// origin is top-left, so larger values land higher up.
func (s Scale) Y(value float64) float64 {
	return s.height - s.padding - value*s.yScale
}
