package glyphs

import (
	"os"
	"unsafe"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// FontSource records where a FontFace's bytes came from; loading reads
// FontData for FontSourceEmbedded and the file at Path otherwise.
// Whether a missing face is fatal depends on its role in the collection
// (primary regular vs. anything else), not on its source.
type FontSource int

const (
	FontSourceEmbedded FontSource = iota
	FontSourceSystemPath
	FontSourceSystemName
)

// Coverage hints which script/block a fallback face is expected to serve.
// It is recorded on the face only; resolution and prewarm never read it
// and always probe charIndex directly.
type Coverage int

const (
	CoverageLatin Coverage = iota
	CoverageCJK
	CoverageEmoji
	CoverageSymbols
	CoverageFullBackup
)

// FontFace is a thin handle over a rasterizer face plus its size state.
// A FontFace with a nil Font is considered invalid and is skipped by the
// resolver; faces are never reused once invalid.
type FontFace struct {
	Font   *truetype.Font
	Face   font.Face
	Source FontSource
	Path   string
	Cover  Coverage
	size   FontSize

	// valid/charIndexFn let tests build a FontFace without parsing a real
	// font file. Production faces never set these; NewFontFaceFrom*
	// leaves them nil and CharIndex/Valid fall through to Font/Face.
	valid       bool
	charIndexFn func(rune) (truetype.Index, bool)
}

// NewFontFaceFromFile loads a TTF/TTC file and sizes it to size at the
// configured hinting. Mirrors font_atlas.go's NewFontAtlasFromFile.
func NewFontFaceFromFile(path string, source FontSource, cover Coverage, size FontSize) (*FontFace, error) {
	fBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewFontFaceFromBytes(fBytes, path, source, cover, size)
}

// NewFontFaceFromBytes parses in-memory font bytes (the embedded-font path).
func NewFontFaceFromBytes(fontBytes []byte, path string, source FontSource, cover Coverage, size FontSize) (*FontFace, error) {
	f, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, err
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size:    float64(size.Points),
		DPI:     float64(size.DPI),
		Hinting: font.HintingNone,
	})

	return &FontFace{
		Font:   f,
		Face:   face,
		Source: source,
		Path:   path,
		Cover:  cover,
		size:   size,
	}, nil
}

// NewTestFace builds a FontFace backed by a plain coverage map instead
// of a parsed font file, for packages that need a resolvable face
// without shipping a real font binary in tests.
func NewTestFace(covers map[rune]truetype.Index) *FontFace {
	return &FontFace{
		valid: true,
		charIndexFn: func(r rune) (truetype.Index, bool) {
			idx, ok := covers[r]
			return idx, ok && idx != 0
		},
	}
}

// Valid reports whether the face's handle is usable. Invalid faces are
// skipped everywhere: family getters, resolver scans, prewarm.
func (ff *FontFace) Valid() bool {
	if ff == nil {
		return false
	}
	if ff.charIndexFn != nil {
		return ff.valid
	}
	return ff.Font != nil && ff.Face != nil
}

// CharIndex maps a codepoint to a glyph index, or ok=false if the face
// has no glyph for it (FreeType convention: glyph index 0 means .notdef).
func (ff *FontFace) CharIndex(r rune) (idx truetype.Index, ok bool) {
	if ff.charIndexFn != nil {
		return ff.charIndexFn(r)
	}
	if !ff.Valid() {
		return 0, false
	}
	idx = ff.Font.Index(r)
	return idx, idx != 0
}

// HasFixedSizes reports whether this face only contains pre-rendered
// bitmap strikes (e.g. an embedded color-emoji strike font) rather than
// a scalable outline. TrueType/OpenType outline fonts are always
// scalable in this implementation; bitmap-strike-only fonts are not
// supported by the freetype/truetype backend, so this always returns
// false here.
func (ff *FontFace) HasFixedSizes() bool { return false }

// IsScalable reports whether the face can be resized via setCharSize.
func (ff *FontFace) IsScalable() bool { return ff.Valid() }

// Resize re-sizes the face in place, producing a new font.Face at the
// new FontSize. FreetypeRasterizer.Render calls it before rasterizing a
// scalable face at the requested pixel size.
func (ff *FontFace) Resize(size FontSize) {
	ff.size = size
	ff.Face = truetype.NewFace(ff.Font, &truetype.Options{
		Size:    float64(size.Points),
		DPI:     float64(size.DPI),
		Hinting: font.HintingNone,
	})
}

func (ff *FontFace) Size() FontSize { return ff.size }

// Identity is a stable value to key a GlyphKey by. Faces are owned by
// the FontCollection and never moved for the collection's lifetime, so
// the pointer itself is a valid stable identity.
func (ff *FontFace) Identity() uintptr {
	return uintptr(unsafe.Pointer(ff))
}
