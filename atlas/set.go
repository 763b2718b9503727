package atlas

import "fmt"

// GlyphLocation memoizes where one rasterized glyph landed: which
// atlas page (by index within its format's list) and where in it.
type GlyphLocation struct {
	AtlasIndex int
	Rect       Rect
}

// GlyphTooLargeError is returned when a glyph's padded dimensions
// exceed the page size of every atlas this set would ever create for
// its format, so packing can never succeed no matter how many pages
// are opened.
type GlyphTooLargeError struct {
	Width, Height uint32
	PageW, PageH  uint32
}

func (e *GlyphTooLargeError) Error() string {
	return fmt.Sprintf("glyph %dx%d does not fit in a %dx%d atlas page", e.Width, e.Height, e.PageW, e.PageH)
}

// AtlasSet owns the ordered list of atlas pages for one pixel format,
// trying each existing page in creation order before opening a new
// one. Atlases are never removed once created: glyphs already placed
// keep their coordinates stable for the lifetime of the font system.
type AtlasSet struct {
	Format Format
	PageW  uint32
	PageH  uint32
	pages  []*Atlas
}

func NewAtlasSet(format Format, pageW, pageH uint32) *AtlasSet {
	return &AtlasSet{Format: format, PageW: pageW, PageH: pageH}
}

// Place finds or creates room for a w x h glyph bitmap, returning its
// location. Existing pages are tried in order before a new page is
// opened, so earlier pages fill up before later ones are touched.
func (as *AtlasSet) Place(w, h uint32) (GlyphLocation, error) {
	for i, page := range as.pages {
		if rect, ok := page.Pack(w, h); ok {
			return GlyphLocation{AtlasIndex: i, Rect: rect}, nil
		}
	}

	page := NewAtlas(as.PageW, as.PageH, as.Format)
	if !page.CanEverFit(w, h) {
		return GlyphLocation{}, &GlyphTooLargeError{Width: w, Height: h, PageW: as.PageW, PageH: as.PageH}
	}

	rect, ok := page.Pack(w, h)
	if !ok {
		// CanEverFit already guarantees this succeeds on a fresh page.
		return GlyphLocation{}, fmt.Errorf("unreachable: fresh atlas page rejected a glyph it should fit")
	}

	as.pages = append(as.pages, page)
	return GlyphLocation{AtlasIndex: len(as.pages) - 1, Rect: rect}, nil
}

// Pages returns the live atlas pages, for the renderer to bind as
// textures and upload pending sub-image data into.
func (as *AtlasSet) Pages() []*Atlas { return as.pages }

func (as *AtlasSet) PageCount() int { return len(as.pages) }
