// Package screen extracts a dense snapshot of a VT terminal's visible
// grid into a flat slice of renderable cell records.
package screen

// UnderlineStyle selects how the cell_text fragment shader draws the
// underline decoration, if any.
type UnderlineStyle uint8

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// RGBA8 is a packed 8-bit-per-channel color, already palette/true-color
// resolved by the time it reaches CellData.
type RGBA8 struct {
	R, G, B, A uint8
}

func (c RGBA8) Pack() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// CellData is one renderable grid cell, already stripped of VT-internal
// representation (grapheme clusters, combining sequences) down to a
// single base codepoint per the non-goals around complex shaping.
type CellData struct {
	Codepoint          rune
	Width              uint8
	IsWideContinuation bool

	Fg RGBA8
	Bg RGBA8

	Col, Row uint16

	Bold          bool
	Italic        bool
	Dim           bool
	Strikethrough bool
	Inverse       bool
	Underline     UnderlineStyle
}

// IsUnstyledSpace reports whether this cell is a plain space with
// default foreground and no attributes — the frame assembler skips
// emitting a glyph instance for these.
func (c CellData) IsUnstyledSpace(defaultFg RGBA8) bool {
	return c.Codepoint == ' ' &&
		c.Fg == defaultFg &&
		!c.Bold && !c.Italic && !c.Dim && !c.Strikethrough && !c.Inverse &&
		c.Underline == UnderlineNone
}
