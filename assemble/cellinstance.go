// Package assemble converts extracted screen cells into the two
// per-frame GPU payloads the renderer uploads: a packed background
// color buffer and an instanced glyph-quad buffer.
package assemble

import (
	"github.com/tapthaker/ghostty-android/gpu"
	"github.com/tapthaker/ghostty-android/screen"
)

// Attribute bits packed into CellInstance.Attributes.
const (
	AttrBold uint16 = 1 << iota
	AttrItalic
	AttrDim
	AttrStrikethrough
	AttrInverse
	// Underline variant occupies 3 bits starting here.
	attrUnderlineShift = 5
	attrUnderlineMask  = 0x7 << attrUnderlineShift
)

func packAttributes(c screen.CellData) uint16 {
	var a uint16
	if c.Bold {
		a |= AttrBold
	}
	if c.Italic {
		a |= AttrItalic
	}
	if c.Dim {
		a |= AttrDim
	}
	if c.Strikethrough {
		a |= AttrStrikethrough
	}
	if c.Inverse {
		a |= AttrInverse
	}
	a |= (uint16(c.Underline) << attrUnderlineShift) & attrUnderlineMask
	return a
}

// CellInstance is the fixed 32-byte per-glyph GPU record fed as an
// instanced vertex attribute. Field order and widths are chosen to
// match std140-ish packing exactly; init asserts this via gpu.SizeOf.
type CellInstance struct {
	GlyphPos  [2]uint32
	GlyphSize [2]uint32
	Bearings  [2]int16
	GridPos   [2]uint16
	Color     [4]uint8
	Atlas     uint8
	Flags     uint8
	Attributes uint16
}

func init() {
	if gpu.SizeOf[CellInstance]() != 32 {
		panic("CellInstance layout must be exactly 32 bytes")
	}
}

// FlagGlyphEmpty marks an instance with no rasterized pixels (zero glyph
// size, e.g. a space); the fragment shader skips atlas sampling for it.
const FlagGlyphEmpty uint8 = 1 << 0

func newInstance(c screen.CellData, color screen.RGBA8, atlasIdx uint8, pos [2]uint32, size [2]uint32, bearingX, bearingY int16, attrs uint16) CellInstance {
	inst := CellInstance{
		GlyphPos:   pos,
		GlyphSize:  size,
		Bearings:   [2]int16{bearingX, bearingY},
		GridPos:    [2]uint16{c.Col, c.Row},
		Color:      [4]uint8{color.R, color.G, color.B, color.A},
		Atlas:      atlasIdx,
		Attributes: attrs,
	}
	if size == ([2]uint32{}) {
		inst.Flags = FlagGlyphEmpty
	}
	return inst
}
