package glyphs

import (
	"fmt"
	"log"
)

// FaceSpec names where to load one face from and what it should cover.
type FaceSpec struct {
	Path     string
	Source   FontSource
	FontData []byte // used instead of Path when Source == FontSourceEmbedded
}

// FamilySpec describes the four styles of one family to load.
type FamilySpec struct {
	Regular    FaceSpec
	Bold       FaceSpec
	Italic     FaceSpec
	BoldItalic FaceSpec
	Cover      Coverage
}

func (fs FaceSpec) empty() bool {
	return fs.Path == "" && len(fs.FontData) == 0
}

func loadFace(spec FaceSpec, cover Coverage, size FontSize) (*FontFace, error) {
	if spec.empty() {
		return nil, nil
	}
	if spec.Source == FontSourceEmbedded {
		return NewFontFaceFromBytes(spec.FontData, spec.Path, spec.Source, cover, size)
	}
	return NewFontFaceFromFile(spec.Path, spec.Source, cover, size)
}

func loadFamily(spec FamilySpec, size FontSize) (FontFamily, error) {
	var fam FontFamily

	reg, err := loadFace(spec.Regular, spec.Cover, size)
	if err != nil {
		return fam, fmt.Errorf("loading regular face %q: %w", spec.Regular.Path, err)
	}
	fam.Set(FontStyleRegular, reg)

	if b, err := loadFace(spec.Bold, spec.Cover, size); err != nil {
		log.Printf("font collection: failed to load bold face %q: %v", spec.Bold.Path, err)
	} else {
		fam.Set(FontStyleBold, b)
	}

	if i, err := loadFace(spec.Italic, spec.Cover, size); err != nil {
		log.Printf("font collection: failed to load italic face %q: %v", spec.Italic.Path, err)
	} else {
		fam.Set(FontStyleItalic, i)
	}

	if bi, err := loadFace(spec.BoldItalic, spec.Cover, size); err != nil {
		log.Printf("font collection: failed to load bold-italic face %q: %v", spec.BoldItalic.Path, err)
	} else {
		fam.Set(FontStyleBoldItalic, bi)
	}

	return fam, nil
}

// FontCollection owns the primary family plus an ordered, pre-sized list
// of fallback families. The fallback slice is allocated once at full
// length and never grown afterwards, so fallback family addresses (and
// thus the FontFace pointers the resolver caches by index) are stable
// for the collection's lifetime.
type FontCollection struct {
	Primary   FontFamily
	Fallbacks []FontFamily
	Size      FontSize
}

// NewFontCollection loads the primary family and all configured
// fallbacks at the given size. Primary regular failing to load is
// fatal (returned as an error); a fallback family failing to load is
// logged and simply omitted (empty FontFamily, HasAny() == false).
func NewFontCollection(size FontSize, primary FamilySpec, fallbacks []FamilySpec) (*FontCollection, error) {
	primFam, err := loadFamily(primary, size)
	if err != nil {
		return nil, fmt.Errorf("primary font family: %w", err)
	}
	if !primFam.Faces[FontStyleRegular].Valid() {
		return nil, fmt.Errorf("primary regular face failed to load")
	}

	col := &FontCollection{
		Primary:   primFam,
		Fallbacks: make([]FontFamily, len(fallbacks)),
		Size:      size,
	}

	for i, spec := range fallbacks {
		fam, err := loadFamily(spec, size)
		if err != nil {
			log.Printf("font collection: fallback family %d unavailable: %v", i, err)
			continue
		}
		col.Fallbacks[i] = fam
	}

	return col, nil
}

// GetPrimaryFace returns the requested style from the primary family,
// falling back to regular when absent.
func (fc *FontCollection) GetPrimaryFace(style FontStyle) *FontFace {
	return fc.Primary.Get(style)
}

// FindFontForCodepoint scans the primary family then the fallbacks in
// order, returning the first face whose charIndex(codepoint) != 0, the
// 1-based... (0 = primary) index used by the resolver cache, and ok.
// Used only during initial resolution; subsequent lookups go through
// the resolver's cache.
func (fc *FontCollection) FindFontForCodepoint(cp rune, style FontStyle) (face *FontFace, fontIndex int, ok bool) {
	if f := fc.Primary.Get(style); f.Valid() {
		if _, hit := f.CharIndex(cp); hit {
			return f, 0, true
		}
	}

	for i := range fc.Fallbacks {
		f := fc.Fallbacks[i].Get(style)
		if !f.Valid() {
			continue
		}
		if _, hit := f.CharIndex(cp); hit {
			return f, i + 1, true
		}
	}

	return nil, 0, false
}

// FaceByIndex dereferences a resolver font_index (0 = primary, k+1 =
// fallback k) back into a concrete face at the given style.
func (fc *FontCollection) FaceByIndex(fontIndex int, style FontStyle) *FontFace {
	if fontIndex == 0 {
		return fc.Primary.Get(style)
	}
	k := fontIndex - 1
	if k < 0 || k >= len(fc.Fallbacks) {
		return nil
	}
	return fc.Fallbacks[k].Get(style)
}
