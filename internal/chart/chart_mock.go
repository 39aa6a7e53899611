package chart

// Op is a single recorded drawing call.
type Op struct {
	Kind   string // clear, move, line, stroke, circle, text
	X, Y   float64
	Radius float64
	Text   string
	Style  StrokeStyle
}

// RecordingSurface implements Surface by recording every call, letting tests
// assert exact coordinate sequences without a rendering backend.
type RecordingSurface struct {
	Width  float64
	Height float64
	Ops    []Op
}

var _ Surface = (*RecordingSurface)(nil) // Compile-time check

// Clear resets the recorded call log.
func (s *RecordingSurface) Clear(width, height float64) {
	s.Width = width
	s.Height = height
	s.Ops = append(s.Ops[:0], Op{Kind: "clear", X: width, Y: height})
}

// MoveTo records a subpath start.
func (s *RecordingSurface) MoveTo(x, y float64) {
	s.Ops = append(s.Ops, Op{Kind: "move", X: x, Y: y})
}

// LineTo records a subpath extension.
func (s *RecordingSurface) LineTo(x, y float64) {
	s.Ops = append(s.Ops, Op{Kind: "line", X: x, Y: y})
}

// Stroke records a path flush.
func (s *RecordingSurface) Stroke(style StrokeStyle) {
	s.Ops = append(s.Ops, Op{Kind: "stroke", Style: style})
}

// FillCircle records a marker.
func (s *RecordingSurface) FillCircle(x, y, radius float64) {
	s.Ops = append(s.Ops, Op{Kind: "circle", X: x, Y: y, Radius: radius})
}

// FillText records a label.
func (s *RecordingSurface) FillText(text string, x, y float64) {
	s.Ops = append(s.Ops, Op{Kind: "text", X: x, Y: y, Text: text})
}

// OpsOfKind filters the recorded calls by kind.
func (s *RecordingSurface) OpsOfKind(kind string) []Op {
	var out []Op
	for _, op := range s.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns every recorded label string in draw order.
func (s *RecordingSurface) Texts() []string {
	var out []string
	for _, op := range s.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}
