package chart

import (
	"bytes"
	"fmt"
	"strings"
)

// markerColor is the fill used for point markers and labels.
const markerColor = "#2b7fa8"

// textColor is the fill used for axis labels and messages.
const textColor = "#444444"

// SVGSurface implements Surface by emitting a standalone SVG document.
// Elements are appended in draw order, so a repeated render over the same
// input produces a byte-identical document.
type SVGSurface struct {
	width  float64
	height float64
	body   bytes.Buffer
	path   []string
}

var _ Surface = (*SVGSurface)(nil) // Compile-time check

// NewSVGSurface returns an empty SVG surface. Clear sets its dimensions.
func NewSVGSurface() *SVGSurface {
	return &SVGSurface{}
}

// Clear resets the document to a blank canvas of the given size.
func (s *SVGSurface) Clear(width, height float64) {
	s.width = width
	s.height = height
	s.body.Reset()
	s.path = s.path[:0]
}

// MoveTo starts a new subpath at the given point.
func (s *SVGSurface) MoveTo(x, y float64) {
	s.path = append(s.path, fmt.Sprintf("M %s %s", fmtCoord(x), fmtCoord(y)))
}

// LineTo extends the current subpath to the given point.
func (s *SVGSurface) LineTo(x, y float64) {
	s.path = append(s.path, fmt.Sprintf("L %s %s", fmtCoord(x), fmtCoord(y)))
}

// Stroke flushes all pending subpaths as one path element.
func (s *SVGSurface) Stroke(style StrokeStyle) {
	if len(s.path) == 0 {
		return
	}
	dash := ""
	if style.Dashed {
		dash = ` stroke-dasharray="5,5"`
	}
	fmt.Fprintf(&s.body, `<path d="%s" fill="none" stroke="%s" stroke-width="%s"%s/>`,
		strings.Join(s.path, " "), style.Color, fmtCoord(style.Width), dash)
	s.body.WriteByte('\n')
	s.path = s.path[:0]
}

// FillCircle draws a filled point marker.
func (s *SVGSurface) FillCircle(x, y, radius float64) {
	fmt.Fprintf(&s.body, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`,
		fmtCoord(x), fmtCoord(y), fmtCoord(radius), markerColor)
	s.body.WriteByte('\n')
}

// FillText draws a text label anchored at its start.
func (s *SVGSurface) FillText(text string, x, y float64) {
	fmt.Fprintf(&s.body, `<text x="%s" y="%s" font-family="sans-serif" font-size="11" fill="%s">%s</text>`,
		fmtCoord(x), fmtCoord(y), textColor, escapeText(text))
	s.body.WriteByte('\n')
}

// Document returns the complete SVG document rendered so far.
func (s *SVGSurface) Document() []byte {
	var out bytes.Buffer
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		fmtCoord(s.width), fmtCoord(s.height), fmtCoord(s.width), fmtCoord(s.height))
	out.WriteByte('\n')
	out.Write(s.body.Bytes())
	out.WriteString("</svg>\n")
	return out.Bytes()
}

// fmtCoord formats coordinates with a fixed precision so output is stable.
func fmtCoord(v float64) string {
	out := fmt.Sprintf("%.2f", v)
	out = strings.TrimRight(out, "0")
	return strings.TrimSuffix(out, ".")
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
