package glyphs

import (
	"unicode"

	"github.com/golang/freetype/truetype"
)

// ReplacementChar is substituted when no font covers a codepoint.
const ReplacementChar = unicode.ReplacementChar

// Resolution is what the resolver hands to the glyph cache: a concrete
// face plus glyph index, and whether it came from a fallback family.
type Resolution struct {
	Face       *FontFace
	GlyphIndex truetype.Index
	IsFallback bool
}

// resolverKey packs a codepoint and style into one cache key as
// (codepoint << 2) | style_tag.
type resolverKey uint32

func makeResolverKey(cp rune, style FontStyle) resolverKey {
	return resolverKey(uint32(cp)<<2 | uint32(style&0x3))
}

// resolverEntry caches indices, not face pointers, so the cache survives
// collection restructuring (font-size rebuilds still invalidate it
// wholesale, but nothing here holds a dangling reference in the interim).
type resolverEntry struct {
	fontIndex  int // 0 = primary, 1+k = fallback k
	style      FontStyle
	glyphIndex truetype.Index
	isFallback bool
}

// CodepointResolver maps (codepoint, style) to a Resolution, aggressively
// caching because this is called millions of times per second in steady
// state text rendering.
type CodepointResolver struct {
	collection *FontCollection
	cache      map[resolverKey]resolverEntry
}

func NewCodepointResolver(collection *FontCollection) *CodepointResolver {
	return &CodepointResolver{
		collection: collection,
		cache:      make(map[resolverKey]resolverEntry, 4096),
	}
}

// Resolve walks cache hit (with staleness check) -> primary -> fallbacks
// in order -> miss.
func (r *CodepointResolver) Resolve(cp rune, style FontStyle) (Resolution, bool) {
	key := makeResolverKey(cp, style)

	if entry, hit := r.cache[key]; hit {
		face := r.collection.FaceByIndex(entry.fontIndex, entry.style)
		if face.Valid() {
			if idx, ok := face.CharIndex(cp); ok && idx == entry.glyphIndex {
				return Resolution{Face: face, GlyphIndex: entry.glyphIndex, IsFallback: entry.isFallback}, true
			}
		}
		// Stale: the cached face is gone or no longer covers cp.
		delete(r.cache, key)
	}

	face, fontIndex, ok := r.collection.FindFontForCodepoint(cp, style)
	if !ok {
		return Resolution{}, false
	}

	idx, _ := face.CharIndex(cp)
	r.cache[key] = resolverEntry{
		fontIndex:  fontIndex,
		style:      style,
		glyphIndex: idx,
		isFallback: fontIndex != 0,
	}

	return Resolution{Face: face, GlyphIndex: idx, IsFallback: fontIndex != 0}, true
}

// ResolveWithReplacement resolves cp, falling back once to U+FFFD when
// cp has no coverage anywhere. Returns ok=false only if even the
// replacement character has no coverage.
func (r *CodepointResolver) ResolveWithReplacement(cp rune, style FontStyle) (Resolution, bool) {
	if res, ok := r.Resolve(cp, style); ok {
		return res, true
	}
	if cp == ReplacementChar {
		return Resolution{}, false
	}
	return r.Resolve(ReplacementChar, style)
}

// Prewarm resolves a fixed set of common codepoints at the given style
// to populate the cache ahead of the first frame: ASCII printable range
// plus the box-drawing block.
func (r *CodepointResolver) Prewarm(style FontStyle) {
	for cp := rune(0x20); cp <= 0x7E; cp++ {
		r.Resolve(cp, style)
	}
	for cp := rune(0x2500); cp <= 0x257F; cp++ {
		r.Resolve(cp, style)
	}
}

// Len reports the number of cached entries, for tests and metrics.
func (r *CodepointResolver) Len() int { return len(r.cache) }
