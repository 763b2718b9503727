package screen

import "log"

// WidthTable is the narrow surface the extractor needs from the glyph
// package's width classifier, declared here to avoid an import cycle
// between screen and glyphs (neither package needs the other's types).
type WidthTable interface {
	Width(r rune) uint8
}

// Extractor produces a dense []CellData snapshot of one frame's
// viewport, row-major, resolving styles and palette colors as it goes.
type Extractor struct {
	palette *Palette
	widths  WidthTable
}

func NewExtractor(palette *Palette, widths WidthTable) *Extractor {
	return &Extractor{palette: palette, widths: widths}
}

// Extract walks (row, col) in row-major order and returns one CellData
// per in-range, non-continuation position, empty cells included (with
// codepoint 0). Output length is therefore <= cols*rows; the frame
// assembler must tolerate the gaps left by skipped wide-character tails.
func (ex *Extractor) Extract(term Terminal) []CellData {
	cols, rows := term.Cols(), term.Rows()
	out := make([]CellData, 0, cols*rows)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell, style, ok := term.Pin(col, row)
			if !ok {
				log.Printf("screen: pin out of range at col=%d row=%d", col, row)
				continue
			}

			if cell.Kind == ContentWideSpacerTail {
				continue
			}

			cd := ex.resolve(cell, style, col, row)
			out = append(out, cd)
		}
	}

	return out
}

func (ex *Extractor) resolve(cell Cell, style CellStyle, col, row int) CellData {
	var codepoint rune
	switch cell.Kind {
	case ContentCodepoint, ContentGraphemeBase:
		codepoint = cell.Codepoint
	case ContentBgColorOnly:
		codepoint = ' '
	}

	fg := DefaultFg
	if style.FgSet {
		fg = style.Fg.Resolve(ex.palette)
	}

	bg := DefaultBg
	if style.BgSet {
		bg = style.Bg.Resolve(ex.palette)
	}

	width := ex.widths.Width(codepoint)
	if width == 0 && codepoint != 0 {
		width = 1
	}

	return CellData{
		Codepoint:     codepoint,
		Width:         width,
		Fg:            fg,
		Bg:            bg,
		Col:           uint16(col),
		Row:           uint16(row),
		Bold:          style.Bold,
		Italic:        style.Italic,
		Dim:           style.Dim,
		Strikethrough: style.Strikethrough,
		Inverse:       style.Inverse,
		Underline:     style.Underline,
	}
}
