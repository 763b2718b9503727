package glyphs

import (
	"image"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// fakeMeasureFace is a minimal font.Face double with controlled bounds
// and advance, so MeasureMetrics's bounds-scanning logic can be
// exercised without a real font file.
type fakeMeasureFace struct {
	advance      fixed.Int26_6
	ascent       fixed.Int26_6 // positive pixels above the baseline
	descent      fixed.Int26_6 // positive pixels below the baseline
	metricHeight fixed.Int26_6
}

func (f *fakeMeasureFace) Close() error { return nil }

func (f *fakeMeasureFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	return image.Rectangle{}, nil, image.Point{}, f.advance, true
}

func (f *fakeMeasureFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: 0, Y: -f.ascent},
		Max: fixed.Point26_6{X: f.advance, Y: f.descent},
	}, f.advance, true
}

func (f *fakeMeasureFace) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	return f.advance, true
}

func (f *fakeMeasureFace) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (f *fakeMeasureFace) Metrics() font.Metrics {
	return font.Metrics{Height: f.metricHeight}
}

func TestMeasureMetricsNilFace(t *testing.T) {
	if m := MeasureMetrics(nil); m != (FontMetrics{}) {
		t.Fatalf("expected zero metrics for nil face, got %+v", m)
	}
	if m := MeasureMetrics(&FontFace{}); m != (FontMetrics{}) {
		t.Fatalf("expected zero metrics for a faceless FontFace, got %+v", m)
	}
}

func TestMeasureMetricsScansBounds(t *testing.T) {
	face := &FontFace{Face: &fakeMeasureFace{
		advance:      fixed.I(10),
		ascent:       fixed.I(14),
		descent:      fixed.I(4),
		metricHeight: fixed.I(20),
	}}

	m := MeasureMetrics(face)

	if m.AdvanceWidth != 10 {
		t.Fatalf("expected advance width 10, got %v", m.AdvanceWidth)
	}
	if m.Ascent != 14 {
		t.Fatalf("expected ascent 14, got %v", m.Ascent)
	}
	if m.Descent != 4 {
		t.Fatalf("expected descent 4, got %v", m.Descent)
	}
	if m.LineGap != 2 {
		t.Fatalf("expected line gap 20-(14+4)=2, got %v", m.LineGap)
	}
	if got := m.CellWidth(); got != 10 {
		t.Fatalf("expected cell width 10, got %v", got)
	}
	if got := m.CellHeight(); got != 20 {
		t.Fatalf("expected cell height 20, got %v", got)
	}
	if got := m.Baseline(); got != 15 {
		t.Fatalf("expected baseline ceil(14+2/2)=15, got %v", got)
	}
}

func TestMeasureMetricsLineGapNeverNegative(t *testing.T) {
	face := &FontFace{Face: &fakeMeasureFace{
		advance:      fixed.I(10),
		ascent:       fixed.I(14),
		descent:      fixed.I(4),
		metricHeight: fixed.I(10), // smaller than ascent+descent
	}}

	m := MeasureMetrics(face)
	if m.LineGap != 0 {
		t.Fatalf("expected line gap clamped to 0, got %v", m.LineGap)
	}
}
