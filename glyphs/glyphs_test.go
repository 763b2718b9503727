package glyphs

import (
	"math"
	"testing"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/math/fixed"
)

func TestI26_6ToF32(t *testing.T) {

	x := fixed.I(55)
	var ans float32 = 55
	Check(t, ans, I26_6ToF32(x))

	x = fixed.I(-10)
	ans = -10
	Check(t, ans, I26_6ToF32(x))

	x = fixed.Int26_6(0<<6 + 1<<0)
	ans = 1 / 64.0
	Check(t, ans, I26_6ToF32(x))

	x = fixed.Int26_6(12<<6 + 0<<0)
	ans = 12
	Check(t, ans, I26_6ToF32(x))
}

func TestFontSizeRoundTrip(t *testing.T) {
	for _, points := range []float32{8, 12, 14, 24, 48} {
		for _, dpi := range []uint16{96, 160, 240, 320} {
			fs := FontSize{Points: points, DPI: dpi}
			px := fs.Pixels()
			back := FontSizeFromPixels(px, dpi)
			if math.Abs(float64(back.Points-points)) > 0.01 {
				t.Fatalf("round trip failed: points=%v dpi=%v -> px=%v -> back=%v", points, dpi, px, back.Points)
			}
		}
	}
}

func newTestFace(covers map[rune]truetype.Index) *FontFace {
	return &FontFace{
		valid: true,
		charIndexFn: func(r rune) (truetype.Index, bool) {
			idx, ok := covers[r]
			return idx, ok && idx != 0
		},
	}
}

func TestFontFamilyFallsBackToRegular(t *testing.T) {
	fam := &FontFamily{}
	reg := newTestFace(map[rune]truetype.Index{'a': 1})
	fam.Set(FontStyleRegular, reg)

	if fam.Get(FontStyleBold) != reg {
		t.Fatalf("expected bold lookup to fall back to regular face")
	}

	bold := newTestFace(map[rune]truetype.Index{'a': 2})
	fam.Set(FontStyleBold, bold)
	if fam.Get(FontStyleBold) != bold {
		t.Fatalf("expected bold lookup to return bold face once set")
	}
}

func TestResolverPrimaryWinsOverFallback(t *testing.T) {
	primary := newTestFace(map[rune]truetype.Index{'a': 1})
	fallback := newTestFace(map[rune]truetype.Index{'a': 2, 0x1F600: 3})

	col := &FontCollection{
		Primary:   FontFamily{Faces: [4]*FontFace{primary, primary, primary, primary}},
		Fallbacks: []FontFamily{{Faces: [4]*FontFace{fallback, fallback, fallback, fallback}}},
	}

	r := NewCodepointResolver(col)

	res, ok := r.Resolve('a', FontStyleRegular)
	if !ok || res.Face != primary || res.IsFallback {
		t.Fatalf("expected primary to win for 'a', got %+v ok=%v", res, ok)
	}

	res, ok = r.Resolve(0x1F600, FontStyleRegular)
	if !ok || res.Face != fallback || !res.IsFallback {
		t.Fatalf("expected fallback to serve emoji, got %+v ok=%v", res, ok)
	}

	// Cache hit path: a second lookup must return the same answer.
	res2, ok2 := r.Resolve(0x1F600, FontStyleRegular)
	if !ok2 || res2.Face != fallback || !res2.IsFallback {
		t.Fatalf("expected cached fallback resolution, got %+v ok=%v", res2, ok2)
	}
}

func TestResolverMissFallsThroughToReplacement(t *testing.T) {
	primary := newTestFace(map[rune]truetype.Index{unicode_FFFD: 9})
	col := &FontCollection{Primary: FontFamily{Faces: [4]*FontFace{primary, primary, primary, primary}}}
	r := NewCodepointResolver(col)

	res, ok := r.ResolveWithReplacement(0x10FFFF, FontStyleRegular)
	if !ok || res.Face != primary {
		t.Fatalf("expected replacement-character resolution, got %+v ok=%v", res, ok)
	}
}

const unicode_FFFD = ReplacementChar

func TestGlyphCacheLRUEviction(t *testing.T) {
	// Budget fits exactly 2 glyphs of 10 bytes each (plus per-entry overhead).
	const glyphBytes = 10
	const overhead = 48
	rast := &fakeRasterizer{bytesPerGlyph: glyphBytes}
	cache := NewGlyphCache(rast, 2*(glyphBytes+overhead))

	faceA := fakeFace(1)
	faceB := fakeFace(2)
	faceC := fakeFace(3)

	keyFor := func(f *FontFace) GlyphKey {
		return GlyphKey{FaceIdentity: f.Identity(), GlyphIndex: 1, SizePixels: 16}
	}

	mustGet := func(f *FontFace) {
		if _, err := cache.GetGlyph(f, 'x', 1, 16); err != nil {
			t.Fatalf("GetGlyph: %v", err)
		}
	}

	mustGet(faceA)
	mustGet(faceB)
	mustGet(faceA) // A is now MRU, B is LRU
	mustGet(faceC) // should evict B

	if _, stillThere := cache.nodes[keyFor(faceB)]; stillThere {
		t.Fatalf("expected B to be evicted")
	}
	if _, ok := cache.nodes[keyFor(faceA)]; !ok {
		t.Fatalf("expected A to remain cached")
	}
	if _, ok := cache.nodes[keyFor(faceC)]; !ok {
		t.Fatalf("expected C to remain cached")
	}
	if cache.Len() != 2 {
		t.Fatalf("expected 2 entries in cache, got %d", cache.Len())
	}
	if cache.CurrentBytes() > cache.budgetBytes {
		t.Fatalf("cache exceeded budget: %d > %d", cache.CurrentBytes(), cache.budgetBytes)
	}
}

func TestGlyphCacheHitDoesNotRerender(t *testing.T) {
	rast := &fakeRasterizer{bytesPerGlyph: 4}
	cache := NewGlyphCache(rast, 1<<20)
	face := fakeFace(1)

	if _, err := cache.GetGlyph(face, 'x', 1, 16); err != nil {
		t.Fatal(err)
	}
	callsAfterFirst := rast.calls

	if _, err := cache.GetGlyph(face, 'x', 1, 16); err != nil {
		t.Fatal(err)
	}
	if rast.calls != callsAfterFirst {
		t.Fatalf("expected cache hit to avoid re-rendering, calls went from %d to %d", callsAfterFirst, rast.calls)
	}
}

func TestWidthTableClassification(t *testing.T) {
	wt := NewWidthTable()

	if w := wt.Width('\n'); w != 0 {
		t.Fatalf("control char expected width 0, got %d", w)
	}
	if w := wt.Width('A'); w != 1 {
		t.Fatalf("ascii expected width 1, got %d", w)
	}
	if w := wt.Width('你'); w != 2 {
		t.Fatalf("CJK ideograph expected width 2, got %d", w)
	}
	if w := wt.Width('́'); w != 0 { // combining acute accent
		t.Fatalf("combining mark expected width 0, got %d", w)
	}
}

func Check[T comparable](t *testing.T, expected, got T) {
	t.Helper()
	if got != expected {
		t.Fatalf("Expected %v but got %v\n", expected, got)
	}
}
