package glyphs

import (
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/math/fixed"
)

// PixelFormat is the in-memory layout of a RenderedGlyph's bitmap.
type PixelFormat int

const (
	FormatGrayscale PixelFormat = iota
	FormatRGBA
)

func (f PixelFormat) BytesPerPixel() int {
	if f == FormatRGBA {
		return 4
	}
	return 1
}

// RenderedGlyph is a rasterized glyph bitmap plus the metrics needed to
// place it relative to the pen position. Owned by the GlyphCache; freed
// on eviction.
type RenderedGlyph struct {
	Bitmap   []byte
	Width    uint32
	Height   uint32
	Format   PixelFormat
	BearingX int32
	BearingY int32
	Advance  int32
}

// ByteSize is the cache accounting cost of this glyph: bitmap bytes plus
// a small fixed overhead for the struct/map-entry bookkeeping.
func (g *RenderedGlyph) ByteSize() int {
	const overhead = 48
	return len(g.Bitmap) + overhead
}

// Rasterizer is the dynamic-dispatch boundary to the concrete glyph
// rasterization backend (FreeType-like). One production implementation
// backs it with golang/freetype/truetype; a second, test-only
// implementation returns canned bitmaps so cache/atlas/assembler logic
// can be tested without font files.
type Rasterizer interface {
	// Render rasterizes r (at the glyph identified by glyphIndex within
	// face) at sizePixels, returning the bitmap and its metrics.
	//
	// golang.org/x/image/font.Face (the underlying backend) only exposes
	// rasterization by rune, not by raw glyph index, so r is required
	// here even though glyphIndex is what the glyph cache actually keys
	// on; glyphIndex is used purely for cache-key/identity purposes.
	Render(face *FontFace, r rune, glyphIndex truetype.Index, sizePixels uint16) (*RenderedGlyph, error)
}

// FreetypeRasterizer renders glyphs via golang/freetype/truetype, the
// same backend font_atlas.go used for its font-atlas generation.
type FreetypeRasterizer struct{}

func NewFreetypeRasterizer() *FreetypeRasterizer { return &FreetypeRasterizer{} }

func (fr *FreetypeRasterizer) Render(face *FontFace, r rune, glyphIndex truetype.Index, sizePixels uint16) (*RenderedGlyph, error) {
	if face.IsScalable() {
		face.Resize(FontSizeFromPixels(float32(sizePixels), face.size.DPI))
	}
	// Fixed-size bitmap-strike fonts would retain their pre-selected
	// strike instead of resizing; not supported by this backend.

	dr, mask, _, advance, ok := face.Face.Glyph(dotOrigin(), r)
	if !ok || dr.Empty() {
		return &RenderedGlyph{
			Format:  FormatGrayscale,
			Advance: int32(advance.Round()),
		}, nil
	}

	w := dr.Dx()
	h := dr.Dy()
	bitmap := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := color.AlphaModel.Convert(mask.At(mask.Bounds().Min.X+x, mask.Bounds().Min.Y+y)).(color.Alpha)
			bitmap[y*w+x] = a.A
		}
	}

	return &RenderedGlyph{
		Bitmap:   bitmap,
		Width:    uint32(w),
		Height:   uint32(h),
		Format:   FormatGrayscale,
		BearingX: int32(dr.Min.X),
		BearingY: int32(-dr.Min.Y),
		Advance:  int32(advance.Round()),
	}, nil
}

// dotOrigin is the pen position passed to font.Face.Glyph: rendering at
// the origin and reading back dr.Min gives bearings directly.
func dotOrigin() fixed.Point26_6 { return fixed.Point26_6{} }
