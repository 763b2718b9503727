package screen

// Palette is the standard xterm 256-color table: 16 named colors, a
// 6x6x6 color cube, and a 24-step grayscale ramp. Index 0-15 match the
// classic ANSI SGR 30-37/90-97 foreground codes.
type Palette struct {
	entries [256]RGBA8
}

// NewXtermPalette builds the standard xterm 256-color palette.
func NewXtermPalette() *Palette {
	p := &Palette{}

	for i, c := range ansi16 {
		p.entries[i] = c
	}

	// 6x6x6 color cube, indices 16-231.
	steps := [6]uint8{0, 95, 135, 175, 215, 255}
	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p.entries[idx] = RGBA8{R: steps[r], G: steps[g], B: steps[b], A: 255}
				idx++
			}
		}
	}

	// Grayscale ramp, indices 232-255.
	for i := 0; i < 24; i++ {
		v := uint8(8 + i*10)
		p.entries[232+i] = RGBA8{R: v, G: v, B: v, A: 255}
	}

	return p
}

func (p *Palette) Lookup(index uint8) RGBA8 {
	return p.entries[index]
}

// ansi16 is the classic 16-color table. Values are the same ones the
// SGR color resolver used for the 30-37/90-97 and 40-47/100-107 codes,
// converted from float [0,1] to byte range.
var ansi16 = [16]RGBA8{
	{R: 0, G: 0, B: 0, A: 255},       // black
	{R: 178, G: 0, B: 0, A: 255},     // red
	{R: 0, G: 178, B: 0, A: 255},     // green
	{R: 178, G: 178, B: 0, A: 255},   // yellow
	{R: 0, G: 0, B: 178, A: 255},     // blue
	{R: 178, G: 0, B: 178, A: 255},   // magenta
	{R: 0, G: 168, B: 168, A: 255},   // cyan
	{R: 204, G: 204, B: 204, A: 255}, // white
	{R: 178, G: 178, B: 178, A: 255}, // bright black (gray)
	{R: 255, G: 0, B: 0, A: 255},     // bright red
	{R: 0, G: 255, B: 0, A: 255},     // bright green
	{R: 255, G: 255, B: 0, A: 255},   // bright yellow
	{R: 0, G: 0, B: 255, A: 255},     // bright blue
	{R: 255, G: 0, B: 255, A: 255},   // bright magenta
	{R: 0, G: 255, B: 255, A: 255},   // bright cyan
	{R: 255, G: 255, B: 255, A: 255}, // bright white
}

// DefaultFg and DefaultBg are the terminal's colors when a cell's
// style carries no explicit fg/bg.
var (
	DefaultFg = RGBA8{R: 204, G: 204, B: 204, A: 255}
	DefaultBg = RGBA8{R: 0, G: 0, B: 0, A: 255}
)
