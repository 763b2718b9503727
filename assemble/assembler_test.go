package assemble

import (
	"testing"

	"github.com/golang/freetype/truetype"
	"github.com/tapthaker/ghostty-android/glyphs"
	"github.com/tapthaker/ghostty-android/screen"
)

// fakeRasterizer renders every rune except space to a 4x8 canned
// bitmap, letting assembler tests run without a real font file.
type fakeRasterizer struct{ calls int }

func (f *fakeRasterizer) Render(face *glyphs.FontFace, r rune, idx truetype.Index, sizePx uint16) (*glyphs.RenderedGlyph, error) {
	f.calls++
	if r == ' ' {
		return &glyphs.RenderedGlyph{Advance: 4}, nil
	}
	return &glyphs.RenderedGlyph{
		Bitmap:   make([]byte, 4*8),
		Width:    4,
		Height:   8,
		Format:   glyphs.FormatGrayscale,
		BearingX: 0,
		BearingY: 8,
		Advance:  4,
	}, nil
}

func testFace(covers map[rune]truetype.Index) *glyphs.FontFace {
	return glyphs.NewTestFace(covers)
}

func newTestSystem(t *testing.T, covers map[rune]truetype.Index) *DynamicFontSystem {
	t.Helper()
	face := testFace(covers)
	col := &glyphs.FontCollection{
		Primary: glyphs.FontFamily{Faces: [4]*glyphs.FontFace{face, face, face, face}},
	}
	return NewDynamicFontSystem(col, &fakeRasterizer{}, 1<<20, 16)
}

func TestAssembleAsciiHello(t *testing.T) {
	covers := map[rune]truetype.Index{}
	for _, r := range "HELLO" {
		covers[r] = truetype.Index(r)
	}
	fonts := newTestSystem(t, covers)
	fa := NewFrameAssembler(fonts, 10, 1)

	cells := make([]screen.CellData, 0, 5)
	for i, r := range "HELLO" {
		cells = append(cells, screen.CellData{
			Codepoint: r, Width: 1, Col: uint16(i), Row: 0,
			Fg: screen.DefaultFg, Bg: screen.DefaultBg,
		})
	}

	frame := fa.Assemble(cells)
	if len(frame.Glyphs) != 5 {
		t.Fatalf("expected 5 glyph instances, got %d", len(frame.Glyphs))
	}
	if frame.Glyphs[0].GridPos != [2]uint16{0, 0} {
		t.Fatalf("expected instance 0 at grid (0,0), got %v", frame.Glyphs[0].GridPos)
	}

	// Consecutive 'L's should share the same atlas placement (memoized).
	l1, l2 := frame.Glyphs[2], frame.Glyphs[3]
	if l1.GlyphPos != l2.GlyphPos || l1.Atlas != l2.Atlas {
		t.Fatalf("expected consecutive L glyphs to share atlas placement, got %+v vs %+v", l1, l2)
	}
}

func TestAssembleInverseVideoEmitsBlockThenGlyph(t *testing.T) {
	covers := map[rune]truetype.Index{'X': 1, BlockGlyph: 2}
	fonts := newTestSystem(t, covers)
	fa := NewFrameAssembler(fonts, 1, 1)

	cell := screen.CellData{
		Codepoint: 'X', Width: 1, Col: 0, Row: 0,
		Fg: screen.RGBA8{R: 10, G: 20, B: 30, A: 255}, Bg: screen.DefaultBg,
		Inverse: true,
	}

	frame := fa.Assemble([]screen.CellData{cell})
	if len(frame.Glyphs) != 2 {
		t.Fatalf("expected 2 instances (block + glyph), got %d", len(frame.Glyphs))
	}

	block, glyph := frame.Glyphs[0], frame.Glyphs[1]
	if block.Color != [4]uint8{10, 20, 30, 255} {
		t.Fatalf("expected block painted with cell foreground, got %v", block.Color)
	}
	if block.Attributes&AttrInverse != 0 {
		t.Fatalf("expected block instance to have attributes cleared, got %x", block.Attributes)
	}
	if glyph.Attributes&AttrInverse == 0 {
		t.Fatalf("expected glyph instance to carry the inverse attribute")
	}
}

func TestAssembleWideCharacterSingleInstance(t *testing.T) {
	covers := map[rune]truetype.Index{'你': 1}
	fonts := newTestSystem(t, covers)
	fa := NewFrameAssembler(fonts, 2, 1)

	cells := []screen.CellData{
		{Codepoint: '你', Width: 2, Col: 0, Row: 0, Fg: screen.DefaultFg, Bg: screen.DefaultBg},
	}

	frame := fa.Assemble(cells)
	if len(frame.Glyphs) != 1 {
		t.Fatalf("expected exactly 1 instance for a wide character, got %d", len(frame.Glyphs))
	}
	if frame.Glyphs[0].GridPos[0] != 0 {
		t.Fatalf("expected wide glyph instance at col 0, got %d", frame.Glyphs[0].GridPos[0])
	}
}

func TestAssembleSkipsUnstyledSpaceAndContinuation(t *testing.T) {
	fonts := newTestSystem(t, map[rune]truetype.Index{})
	fa := NewFrameAssembler(fonts, 3, 1)

	cells := []screen.CellData{
		{Codepoint: ' ', Width: 1, Col: 0, Row: 0, Fg: screen.DefaultFg, Bg: screen.DefaultBg},
		{IsWideContinuation: true, Col: 1, Row: 0},
		{Codepoint: 0, Col: 2, Row: 0},
	}

	frame := fa.Assemble(cells)
	if len(frame.Glyphs) != 0 {
		t.Fatalf("expected no glyph instances, got %d", len(frame.Glyphs))
	}
}
