// Package atlas implements the dynamic, shelf-packed GPU texture atlas
// that the glyph cache's rasterized bitmaps are placed into for batched
// instanced rendering.
package atlas

import (
	"fmt"

	"github.com/tapthaker/ghostty-android/assert"
)

// Format is the pixel layout of an atlas texture.
type Format int

const (
	FormatGrayscale Format = iota // 8-bit grayscale (R8)
	FormatColor                   // 32-bit BGRA source -> RGBA8 texture
)

// Padding prevents bilinear bleeding from neighboring glyphs even
// though the shader uses point sampling: integer sub-image upload with
// float texture coordinates can still hit edge texels under rounding.
const Padding = 2

// Rect is a packed glyph's location within one atlas page.
type Rect struct {
	X, Y          uint32
	Width, Height uint32
}

// Shelf is a horizontal strip of fixed height at a known y, accepting
// glyphs whose padded height fits within it. Shelves are never split;
// unused trailing horizontal space in a shelf is wasted.
type Shelf struct {
	Y         uint32
	Height    uint32
	WidthUsed uint32
}

// Atlas is one GPU texture page, shelf-packed. GLTexture is an opaque
// driver handle assigned by the renderer when the page is created;
// the packer itself never touches GL state.
type Atlas struct {
	GLTexture   uint32
	Width       uint32
	Height      uint32
	Format      Format
	Shelves     []Shelf
	NextShelfY  uint32
}

// NewAtlas creates an empty atlas page of the given size and format.
// GL texture allocation happens in the renderer once the page exists;
// GLTexture is left zero here.
func NewAtlas(width, height uint32, format Format) *Atlas {
	return &Atlas{Width: width, Height: height, Format: format}
}

// Pack assigns a rectangle for a glyph of size (w, h): first-fit across
// existing shelves in creation order, else open a new shelf if it fits
// vertically and the padded width fits the page, else report the atlas
// full (ok=false).
func (a *Atlas) Pack(w, h uint32) (rect Rect, ok bool) {
	assert.T(w > 0 && h > 0, "atlas: cannot pack a zero-sized glyph (%dx%d)", w, h)

	paddedW := w + 2*Padding
	paddedH := h + 2*Padding

	for i := range a.Shelves {
		shelf := &a.Shelves[i]
		if shelf.Height >= paddedH && a.Width-shelf.WidthUsed >= paddedW {
			rect = Rect{
				X:      shelf.WidthUsed + Padding,
				Y:      shelf.Y + Padding,
				Width:  w,
				Height: h,
			}
			shelf.WidthUsed += paddedW
			return rect, true
		}
	}

	if a.NextShelfY+paddedH <= a.Height && paddedW <= a.Width {
		a.Shelves = append(a.Shelves, Shelf{Y: a.NextShelfY, Height: paddedH, WidthUsed: paddedW})
		rect = Rect{X: Padding, Y: a.NextShelfY + Padding, Width: w, Height: h}
		a.NextShelfY += paddedH
		return rect, true
	}

	return Rect{}, false
}

// CanEverFit reports whether a w x h glyph, once padded, fits within a
// brand-new atlas of this size — used by AtlasSet to classify
// GlyphTooLarge (false) vs. "open a new atlas" (true).
func (a *Atlas) CanEverFit(w, h uint32) bool {
	return w+2*Padding <= a.Width && h+2*Padding <= a.Height
}

func (r Rect) String() string {
	return fmt.Sprintf("{x:%d y:%d w:%d h:%d}", r.X, r.Y, r.Width, r.Height)
}
