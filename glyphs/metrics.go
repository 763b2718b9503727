package glyphs

// FontMetrics is the measured shape of a monospace face at its current
// size: the fixed advance width every glyph renders at, plus the
// vertical metrics the cell grid derives from.
type FontMetrics struct {
	AdvanceWidth float32
	Ascent       float32
	Descent      float32
	LineGap      float32
}

// CellWidth is the monospace cell width in pixels.
func (m FontMetrics) CellWidth() float32 {
	return ceilF32(m.AdvanceWidth)
}

// CellHeight is ascent + descent + line_gap, rounded up.
func (m FontMetrics) CellHeight() float32 {
	return ceilF32(m.Ascent + m.Descent + m.LineGap)
}

// Baseline is the pen's distance down from the top of the cell.
func (m FontMetrics) Baseline() float32 {
	return ceilF32(m.Ascent + m.LineGap/2)
}

func ceilF32(v float32) float32 {
	i := float32(int32(v))
	if i < v {
		return i + 1
	}
	return i
}

// asciiMeasureLo/Hi bound the printable-ASCII scan used to find the
// tallest/deepest glyph bounds.
const (
	asciiMeasureLo = 0x21
	asciiMeasureHi = 0x7E
)

// MeasureMetrics measures a face's monospace advance width and vertical
// extents directly off its rasterizer backend: GlyphAdvance('L') for
// the fixed advance, and a scan of GlyphBounds over the printable-ASCII
// range for max ascent/descent, since Face.Metrics() is not reliable
// for this. A nil or faceless FontFace measures to the zero value.
func MeasureMetrics(face *FontFace) FontMetrics {
	if face == nil || face.Face == nil {
		return FontMetrics{}
	}

	advance, ok := face.Face.GlyphAdvance('L')
	if !ok {
		advance, _ = face.Face.GlyphAdvance(' ')
	}

	var maxAscent, maxDescent float32
	for r := rune(asciiMeasureLo); r <= asciiMeasureHi; r++ {
		bounds, _, ok := face.Face.GlyphBounds(r)
		if !ok {
			continue
		}
		if a := -I26_6ToF32(bounds.Min.Y); a > maxAscent {
			maxAscent = a
		}
		if d := I26_6ToF32(bounds.Max.Y); d > maxDescent {
			maxDescent = d
		}
	}

	height := I26_6ToF32(face.Face.Metrics().Height)
	lineGap := height - (maxAscent + maxDescent)
	if lineGap < 0 {
		lineGap = 0
	}

	return FontMetrics{
		AdvanceWidth: I26_6ToF32(advance),
		Ascent:       maxAscent,
		Descent:      maxDescent,
		LineGap:      lineGap,
	}
}
