package glyphs

import "github.com/golang/freetype/truetype"

// fakeRasterizer returns canned bitmaps of bytesPerGlyph bytes each
// (whatever sizePixels is requested), letting cache/eviction tests run
// without real font files.
type fakeRasterizer struct {
	bytesPerGlyph int
	calls         int
}

func (f *fakeRasterizer) Render(face *FontFace, r rune, glyphIndex truetype.Index, sizePixels uint16) (*RenderedGlyph, error) {
	f.calls++
	return &RenderedGlyph{
		Bitmap: make([]byte, f.bytesPerGlyph),
		Width:  uint32(f.bytesPerGlyph),
		Height: 1,
		Format: FormatGrayscale,
	}, nil
}

func fakeFace(id int) *FontFace {
	// Distinct addresses are all that matters for GlyphKey identity in
	// these tests; the Font/Face fields are deliberately left nil
	// because the fake rasterizer never touches them.
	return &FontFace{}
}
