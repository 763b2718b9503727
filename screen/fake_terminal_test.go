package screen

// fakeTerminal is a minimal in-memory grid standing in for a real VT
// terminal, modeled on the cursor-write grid concept the corpus uses
// for its own debug rendering: a flat Tiles grid plus a cursor that
// advances left-to-right, wrapping to the next row.
type fakeTerminal struct {
	cols, rows int
	tiles      [][]Cell
	styles     [][]CellStyle
	cursorX    int
	cursorY    int
}

func newFakeTerminal(cols, rows int) *fakeTerminal {
	tiles := make([][]Cell, rows)
	styles := make([][]CellStyle, rows)
	for r := range tiles {
		tiles[r] = make([]Cell, cols)
		styles[r] = make([]CellStyle, cols)
	}
	return &fakeTerminal{cols: cols, rows: rows, tiles: tiles, styles: styles}
}

func (f *fakeTerminal) Cols() int { return f.cols }
func (f *fakeTerminal) Rows() int { return f.rows }

func (f *fakeTerminal) Pin(col, row int) (Cell, CellStyle, bool) {
	if col < 0 || col >= f.cols || row < 0 || row >= f.rows {
		return Cell{}, CellStyle{}, false
	}
	return f.tiles[row][col], f.styles[row][col], true
}

// writeRune places r at the cursor with the given style, advancing the
// cursor by its display width (2 for wide runes, emitting a spacer
// tail in the following cell).
func (f *fakeTerminal) writeRune(r rune, wide bool, style CellStyle) {
	if f.cursorX >= f.cols {
		f.cursorX = 0
		f.cursorY++
	}
	f.tiles[f.cursorY][f.cursorX] = Cell{Kind: ContentCodepoint, Codepoint: r}
	f.styles[f.cursorY][f.cursorX] = style
	f.cursorX++

	if wide && f.cursorX < f.cols {
		f.tiles[f.cursorY][f.cursorX] = Cell{Kind: ContentWideSpacerTail}
		f.cursorX++
	}
}

func (f *fakeTerminal) writeString(s string, style CellStyle) {
	for _, r := range s {
		f.writeRune(r, false, style)
	}
}
