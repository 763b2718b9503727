package assemble

import (
	"github.com/tapthaker/ghostty-android/assert"
	"github.com/tapthaker/ghostty-android/atlas"
	"github.com/tapthaker/ghostty-android/glyphs"
	"github.com/tapthaker/ghostty-android/gpu"
)

// glyphLocation is the richer, assemble-package view of a packed
// glyph: atlas placement plus the pen-placement metrics carried
// alongside atlas_index/format/rect.
type glyphLocation struct {
	format     atlas.Format
	atlasIndex int
	rect       atlas.Rect
	bearingX   int32
	bearingY   int32
	advance    int32
	empty      bool // zero-sized rasterized glyph (e.g. space): no atlas placement
}

type locationKey struct {
	codepoint rune
	style     glyphs.FontStyle
	sizePx    uint16
}

// DynamicFontSystem is the facade the frame assembler drives: it owns
// the font collection, resolver, glyph cache, one atlas set per pixel
// format, the width table, and a (codepoint, style, size) -> location
// memoization map so resolved glyphs skip re-resolution/re-packing.
type DynamicFontSystem struct {
	Collection *glyphs.FontCollection
	Resolver   *glyphs.CodepointResolver
	Cache      *glyphs.GlyphCache
	Widths     *glyphs.WidthTable

	Grayscale *atlas.AtlasSet
	Color     *atlas.AtlasSet

	// grayscaleTex/colorTex mirror Grayscale.Pages()/Color.Pages() one
	// GPU texture per atlas page, lazily created the first time a page
	// is touched by a placement.
	grayscaleTex []*gpu.Texture
	colorTex     []*gpu.Texture

	// pending queues bitmap uploads discovered by MakeCellText until
	// SyncTextures drains them. Keeping GL calls out of MakeCellText
	// lets the glyph-resolution/atlas-packing path run in tests with no
	// live GL context; only the renderer, which owns a real context,
	// ever calls SyncTextures.
	pending []pendingUpload

	sizePixels uint16
	locations  map[locationKey]glyphLocation
}

// pendingUpload is one rasterized bitmap waiting to reach its atlas
// page's GPU texture.
type pendingUpload struct {
	format     atlas.Format
	atlasIndex int
	rect       atlas.Rect
	pageW      uint32
	pageH      uint32
	bitmap     []byte
}

const (
	defaultAtlasPageSize = 2048
)

func NewDynamicFontSystem(collection *glyphs.FontCollection, rasterizer glyphs.Rasterizer, cacheBudgetBytes int, sizePixels uint16) *DynamicFontSystem {
	return &DynamicFontSystem{
		Collection: collection,
		Resolver:   glyphs.NewCodepointResolver(collection),
		Cache:      glyphs.NewGlyphCache(rasterizer, cacheBudgetBytes),
		Widths:     glyphs.NewWidthTable(),
		Grayscale:  atlas.NewAtlasSet(atlas.FormatGrayscale, defaultAtlasPageSize, defaultAtlasPageSize),
		Color:      atlas.NewAtlasSet(atlas.FormatColor, defaultAtlasPageSize, defaultAtlasPageSize),
		sizePixels: sizePixels,
		locations:  make(map[locationKey]glyphLocation, 4096),
	}
}

// MakeCellText resolves, rasterizes, and atlas-packs one codepoint at
// one style, memoizing the result. empty=true (with ok=true) means the
// codepoint resolved to a real face but rasterized to nothing (e.g. a
// space): the caller should emit an instance with zero glyph size.
func (dfs *DynamicFontSystem) MakeCellText(codepoint rune, style glyphs.FontStyle) (loc glyphLocation, ok bool) {
	assert.T(dfs.sizePixels > 0, "font system: MakeCellText called before a size was established")

	key := locationKey{codepoint: codepoint, style: style, sizePx: dfs.sizePixels}
	if cached, hit := dfs.locations[key]; hit {
		return cached, true
	}

	res, resolved := dfs.Resolver.ResolveWithReplacement(codepoint, style)
	if !resolved {
		return glyphLocation{}, false
	}

	glyph, err := dfs.Cache.GetGlyph(res.Face, codepoint, res.GlyphIndex, dfs.sizePixels)
	if err != nil {
		return glyphLocation{}, false
	}

	if glyph.Width == 0 || glyph.Height == 0 {
		loc = glyphLocation{
			bearingX: glyph.BearingX,
			bearingY: glyph.BearingY,
			advance:  glyph.Advance,
			empty:    true,
		}
		dfs.locations[key] = loc
		return loc, true
	}

	set, format := dfs.atlasSetFor(glyph.Format)
	placement, err := set.Place(glyph.Width, glyph.Height)
	if err != nil {
		// GlyphTooLarge or equivalent: substitute U+FFFD once.
		if codepoint != glyphs.ReplacementChar {
			return dfs.MakeCellText(glyphs.ReplacementChar, style)
		}
		return glyphLocation{}, false
	}

	dfs.pending = append(dfs.pending, pendingUpload{
		format:     format,
		atlasIndex: placement.AtlasIndex,
		rect:       placement.Rect,
		pageW:      set.PageW,
		pageH:      set.PageH,
		bitmap:     glyph.Bitmap,
	})

	loc = glyphLocation{
		format:     format,
		atlasIndex: placement.AtlasIndex,
		rect:       placement.Rect,
		bearingX:   glyph.BearingX,
		bearingY:   glyph.BearingY,
		advance:    glyph.Advance,
	}
	dfs.locations[key] = loc
	return loc, true
}

// SyncTextures drains every bitmap queued since the last call, lazily
// creating each atlas page's GPU texture the first time it's touched
// and sub-image-uploading the glyph into it. Must only be called from
// the GL thread with a live context bound (the renderer calls this
// once per frame before the cell_text pass).
func (dfs *DynamicFontSystem) SyncTextures() {
	for _, up := range dfs.pending {
		slot := &dfs.grayscaleTex
		texFormat := gpu.TextureFormatR8
		set := dfs.Grayscale
		if up.format == atlas.FormatColor {
			slot = &dfs.colorTex
			texFormat = gpu.TextureFormatRGBA8
			set = dfs.Color
		}

		for len(*slot) <= up.atlasIndex {
			*slot = append(*slot, nil)
		}
		if (*slot)[up.atlasIndex] == nil {
			(*slot)[up.atlasIndex] = gpu.NewTexture(texFormat, int32(up.pageW), int32(up.pageH))
			set.Pages()[up.atlasIndex].GLTexture = (*slot)[up.atlasIndex].ID
		}

		tex := (*slot)[up.atlasIndex]
		tex.Upload(int32(up.rect.X), int32(up.rect.Y), int32(up.rect.Width), int32(up.rect.Height), up.bitmap)
	}
	dfs.pending = dfs.pending[:0]
}

// GrayscaleTexture returns the GPU texture for grayscale atlas page 0,
// or nil if no grayscale glyph has been placed yet. The cell_text pass
// only exposes one grayscale sampler, so only page 0 is ever bound.
func (dfs *DynamicFontSystem) GrayscaleTexture() *gpu.Texture {
	if len(dfs.grayscaleTex) == 0 {
		return nil
	}
	return dfs.grayscaleTex[0]
}

// ColorTexture returns the GPU texture for color atlas page 0, or nil
// if no color glyph has been placed yet.
func (dfs *DynamicFontSystem) ColorTexture() *gpu.Texture {
	if len(dfs.colorTex) == 0 {
		return nil
	}
	return dfs.colorTex[0]
}

func (dfs *DynamicFontSystem) atlasSetFor(format glyphs.PixelFormat) (*atlas.AtlasSet, atlas.Format) {
	if format == glyphs.FormatRGBA {
		return dfs.Color, atlas.FormatColor
	}
	return dfs.Grayscale, atlas.FormatGrayscale
}

// Rebuild discards every cache (resolver, glyph cache, atlas sets,
// location memo) and swaps in a newly-sized collection, matching the
// font-size-change contract: all font-system state is torn down and
// rebuilt together.
func (dfs *DynamicFontSystem) Rebuild(collection *glyphs.FontCollection, rasterizer glyphs.Rasterizer, cacheBudgetBytes int, sizePixels uint16) {
	for _, tex := range dfs.grayscaleTex {
		if tex != nil {
			tex.Delete()
		}
	}
	for _, tex := range dfs.colorTex {
		if tex != nil {
			tex.Delete()
		}
	}

	dfs.Collection = collection
	dfs.Resolver = glyphs.NewCodepointResolver(collection)
	dfs.Cache = glyphs.NewGlyphCache(rasterizer, cacheBudgetBytes)
	dfs.Widths = glyphs.NewWidthTable()
	dfs.Grayscale = atlas.NewAtlasSet(atlas.FormatGrayscale, defaultAtlasPageSize, defaultAtlasPageSize)
	dfs.Color = atlas.NewAtlasSet(atlas.FormatColor, defaultAtlasPageSize, defaultAtlasPageSize)
	dfs.grayscaleTex = nil
	dfs.colorTex = nil
	dfs.pending = nil
	dfs.sizePixels = sizePixels
	dfs.locations = make(map[locationKey]glyphLocation, 4096)
}
