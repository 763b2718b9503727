package assemble

import (
	"github.com/tapthaker/ghostty-android/glyphs"
	"github.com/tapthaker/ghostty-android/screen"
)

// BlockGlyph is the codepoint used to pre-paint an inverse-video cell
// in its foreground color before the glyph itself draws on top in the
// cell's background color.
const BlockGlyph = '█'

// Frame is the pair of GPU payloads one assembled frame produces.
type Frame struct {
	BgColors []uint32 // len == cols*rows, row*cols+col indexed
	Glyphs   []CellInstance
}

// FrameAssembler converts a []screen.CellData snapshot into the two
// GPU-ready buffers the renderer uploads each frame.
type FrameAssembler struct {
	Fonts *DynamicFontSystem
	Cols  int
	Rows  int
}

func NewFrameAssembler(fonts *DynamicFontSystem, cols, rows int) *FrameAssembler {
	return &FrameAssembler{Fonts: fonts, Cols: cols, Rows: rows}
}

// Assemble builds a Frame from extracted cells, growing neither slice
// beyond what's needed for this frame's cell count; the renderer's GPU
// buffers apply their own geometric over-allocation on upload.
func (fa *FrameAssembler) Assemble(cells []screen.CellData) Frame {
	bg := make([]uint32, fa.Cols*fa.Rows)
	glyphsOut := make([]CellInstance, 0, len(cells))

	for _, c := range cells {
		idx := int(c.Row)*fa.Cols + int(c.Col)
		if idx >= 0 && idx < len(bg) {
			bg[idx] = c.Bg.Pack()
		}

		if c.IsWideContinuation {
			continue
		}
		if c.Codepoint == 0 {
			continue
		}
		if c.IsUnstyledSpace(screen.DefaultFg) {
			continue
		}

		if c.Inverse {
			glyphsOut = append(glyphsOut, fa.blockInstance(c))
		}

		if inst, ok := fa.glyphInstance(c); ok {
			glyphsOut = append(glyphsOut, inst)
		}
	}

	return Frame{BgColors: bg, Glyphs: glyphsOut}
}

// blockInstance paints a full block at the cell's foreground color with
// attributes cleared, behind the primary glyph instance that follows.
func (fa *FrameAssembler) blockInstance(c screen.CellData) CellInstance {
	blockCell := c
	blockCell.Bold, blockCell.Italic, blockCell.Dim = false, false, false
	blockCell.Strikethrough, blockCell.Inverse = false, false
	blockCell.Underline = screen.UnderlineNone

	loc, ok := fa.Fonts.MakeCellText(BlockGlyph, styleFor(blockCell))
	if !ok || loc.empty {
		return newInstance(blockCell, c.Fg, 0, [2]uint32{}, [2]uint32{}, 0, 0, 0)
	}
	return fa.instanceFromLocation(blockCell, c.Fg, loc, 0)
}

func (fa *FrameAssembler) glyphInstance(c screen.CellData) (CellInstance, bool) {
	loc, ok := fa.Fonts.MakeCellText(c.Codepoint, styleFor(c))
	if !ok {
		return CellInstance{}, false
	}

	attrs := packAttributes(c)
	// An inverse glyph draws in the cell's background color on top of
	// the foreground-colored block emitted before it.
	color := c.Fg
	if c.Inverse {
		color = c.Bg
	}
	if loc.empty {
		return newInstance(c, color, 0, [2]uint32{}, [2]uint32{}, int16(loc.bearingX), int16(loc.bearingY), attrs), true
	}
	return fa.instanceFromLocation(c, color, loc, attrs), true
}

func (fa *FrameAssembler) instanceFromLocation(c screen.CellData, color screen.RGBA8, loc glyphLocation, attrs uint16) CellInstance {
	atlasTag := uint8(0)
	if loc.format != 0 {
		atlasTag = 1
	}
	pos := [2]uint32{loc.rect.X, loc.rect.Y}
	size := [2]uint32{loc.rect.Width, loc.rect.Height}
	return newInstance(c, color, atlasTag, pos, size, int16(loc.bearingX), int16(loc.bearingY), attrs)
}

func styleFor(c screen.CellData) glyphs.FontStyle {
	switch {
	case c.Bold && c.Italic:
		return glyphs.FontStyleBoldItalic
	case c.Bold:
		return glyphs.FontStyleBold
	case c.Italic:
		return glyphs.FontStyleItalic
	default:
		return glyphs.FontStyleRegular
	}
}
