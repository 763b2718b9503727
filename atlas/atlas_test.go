package atlas

import "testing"

func TestPackNonOverlapping(t *testing.T) {
	a := NewAtlas(256, 256, FormatGrayscale)

	type placed struct{ r Rect }
	var all []placed

	sizes := []struct{ w, h uint32 }{
		{10, 16}, {12, 16}, {8, 16}, {20, 16},
		{10, 24}, {10, 24}, {64, 8}, {64, 8}, {64, 8},
	}

	for _, s := range sizes {
		r, ok := a.Pack(s.w, s.h)
		if !ok {
			t.Fatalf("expected glyph %dx%d to pack", s.w, s.h)
		}
		for _, p := range all {
			if rectsOverlap(r, p.r) {
				t.Fatalf("new rect %v overlaps existing rect %v", r, p.r)
			}
		}
		all = append(all, placed{r})
	}
}

func rectsOverlap(a, b Rect) bool {
	if a.X+a.Width <= b.X || b.X+b.Width <= a.X {
		return false
	}
	if a.Y+a.Height <= b.Y || b.Y+b.Height <= a.Y {
		return false
	}
	return true
}

func TestPackFirstFitReusesShelfSpace(t *testing.T) {
	a := NewAtlas(64, 64, FormatGrayscale)

	r1, ok := a.Pack(20, 16)
	if !ok {
		t.Fatal("expected first glyph to pack")
	}
	if len(a.Shelves) != 1 {
		t.Fatalf("expected 1 shelf after first glyph, got %d", len(a.Shelves))
	}

	r2, ok := a.Pack(20, 10)
	if !ok {
		t.Fatal("expected second glyph to pack")
	}
	if r2.Y != r1.Y {
		t.Fatalf("expected second shorter glyph to share the first shelf, got y=%d want y=%d", r2.Y, r1.Y)
	}
	if len(a.Shelves) != 1 {
		t.Fatalf("expected shelf to be reused, got %d shelves", len(a.Shelves))
	}
}

func TestAtlasOverflowReportsFull(t *testing.T) {
	a := NewAtlas(32, 32, FormatGrayscale)

	// Fill the page with wide, short glyphs until packing fails.
	packed := 0
	for i := 0; i < 100; i++ {
		if _, ok := a.Pack(28, 6); !ok {
			break
		}
		packed++
	}

	if packed == 0 {
		t.Fatal("expected at least one glyph to pack before overflow")
	}

	if _, ok := a.Pack(28, 6); ok {
		t.Fatal("expected atlas to report full once shelves are exhausted")
	}
}

func TestAtlasSetOpensNewPageOnOverflow(t *testing.T) {
	set := NewAtlasSet(FormatGrayscale, 32, 32)

	for i := 0; i < 20; i++ {
		if _, err := set.Place(28, 6); err != nil {
			t.Fatalf("Place failed at i=%d: %v", i, err)
		}
	}

	if set.PageCount() < 2 {
		t.Fatalf("expected overflow to open a second page, got %d pages", set.PageCount())
	}
}

func TestAtlasSetGlyphTooLarge(t *testing.T) {
	set := NewAtlasSet(FormatGrayscale, 32, 32)

	_, err := set.Place(64, 64)
	if err == nil {
		t.Fatal("expected GlyphTooLargeError for an oversized glyph")
	}
	if _, ok := err.(*GlyphTooLargeError); !ok {
		t.Fatalf("expected *GlyphTooLargeError, got %T", err)
	}
}
