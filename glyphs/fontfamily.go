package glyphs

// FontStyle selects one of the four faces a family may hold.
type FontStyle int

const (
	FontStyleRegular FontStyle = iota
	FontStyleBold
	FontStyleItalic
	FontStyleBoldItalic

	fontStyleCount = 4
)

// FontFamily holds up to four optional faces keyed by FontStyle.
type FontFamily struct {
	Faces [fontStyleCount]*FontFace
}

// Get returns the requested style, falling back to regular when the
// style is absent or invalid.
func (fam *FontFamily) Get(style FontStyle) *FontFace {
	if style >= 0 && int(style) < fontStyleCount {
		if f := fam.Faces[style]; f.Valid() {
			return f
		}
	}
	return fam.Faces[FontStyleRegular]
}

// Set installs a face for the given style. A nil or invalid face is a
// no-op per the "faces whose handle is null after load are omitted" rule.
func (fam *FontFamily) Set(style FontStyle, face *FontFace) {
	if !face.Valid() || style < 0 || int(style) >= fontStyleCount {
		return
	}
	fam.Faces[style] = face
}

// HasAny reports whether the family has at least one usable face.
func (fam *FontFamily) HasAny() bool {
	for _, f := range fam.Faces {
		if f.Valid() {
			return true
		}
	}
	return false
}
