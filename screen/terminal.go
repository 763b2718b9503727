package screen

// CellStyle is the resolved style of one VT cell, as handed to us by
// the terminal for a single (row, col) during viewport iteration.
type CellStyle struct {
	Bold          bool
	Italic        bool
	Dim           bool
	Strikethrough bool
	Inverse       bool
	Underline     UnderlineStyle

	// FgSet/BgSet distinguish "style carries an explicit color" from
	// "use the terminal's configured default", mirroring the VT's
	// fg-with-default / optional-bg resolution logic.
	FgSet bool
	Fg    PaletteColor
	BgSet bool
	Bg    PaletteColor
}

// PaletteColor is either an index into the 256-color xterm palette or
// an explicit 24-bit true color, resolved by Resolve against a Palette.
type PaletteColor struct {
	IsTrueColor bool
	Index       uint8 // valid when !IsTrueColor
	R, G, B     uint8 // valid when IsTrueColor
}

// Resolve looks the color up against the palette when it is an index,
// or returns the true-color bytes directly, always at full alpha.
func (c PaletteColor) Resolve(p *Palette) RGBA8 {
	if c.IsTrueColor {
		return RGBA8{R: c.R, G: c.G, B: c.B, A: 255}
	}
	return p.Lookup(c.Index)
}

// CellContentKind tags what a VT cell actually holds, pre-extraction.
type CellContentKind uint8

const (
	ContentCodepoint CellContentKind = iota
	ContentGraphemeBase
	ContentBgColorOnly
	ContentWideSpacerTail
)

type Cell struct {
	Kind      CellContentKind
	Codepoint rune // meaningful for ContentCodepoint / ContentGraphemeBase
}

// Terminal is the external VT collaborator: it owns the escape-sequence
// parser, the scrollback, and the cell grid. Only the surface this
// package needs to extract a frame is declared here.
type Terminal interface {
	Cols() int
	Rows() int

	// Pin returns the cell and resolved style at viewport coordinate
	// (col, row), or ok=false if the coordinate is out of range.
	Pin(col, row int) (cell Cell, style CellStyle, ok bool)
}
