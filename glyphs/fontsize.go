package glyphs

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// FontSize is the single source of truth for glyph scale: a point size
// at a given DPI. Every pixel measurement in the renderer (cell size,
// metrics, glyph bitmaps) is derived from one FontSize.
type FontSize struct {
	Points float32
	DPI    uint16
}

// Pixels converts points to pixels: points * dpi / 72.
func (fs FontSize) Pixels() float32 {
	return fs.Points * float32(fs.DPI) / 72
}

// Fixed266 converts points to 26.6 fixed-point, the unit FreeType-style
// rasterizers expect for char sizes: round(points * 64).
func (fs FontSize) Fixed266() fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(fs.Points) * 64))
}

// FontSizeFromPixels is the inverse of Pixels at a given DPI.
func FontSizeFromPixels(pixels float32, dpi uint16) FontSize {
	return FontSize{Points: pixels * 72 / float32(dpi), DPI: dpi}
}

// I26_6ToF32 converts a 26.6 fixed-point value to float32.
func I26_6ToF32(x fixed.Int26_6) float32 {
	return float32(x) / 64
}
