package glyphs

import (
	"github.com/golang/freetype/truetype"
)

// GlyphKey identifies one rasterized glyph: a specific face, glyph
// index, and pixel size. Face identity is the face's pointer value,
// stable because faces are owned by the FontCollection and never moved.
type GlyphKey struct {
	FaceIdentity uintptr
	GlyphIndex   truetype.Index
	SizePixels   uint16
}

// glyphCacheNode threads the LRU list by GlyphKey. A zero GlyphKey{}
// in prev/next means "no neighbor" (the zero key is never a real
// cache entry: glyph index 0 is FreeType's .notdef and is never cached).
type glyphCacheNode struct {
	glyph *RenderedGlyph
	prev  GlyphKey
	next  GlyphKey
}

// GlyphCache owns rasterized glyph bitmaps under a byte-size budget,
// evicting least-recently-used entries. The LRU list is threaded by
// GlyphKey values rather than node pointers, because map growth can
// move/rehash entries; keys are stable even when the backing map grows.
type GlyphCache struct {
	nodes      map[GlyphKey]*glyphCacheNode
	rasterizer Rasterizer

	head GlyphKey // most-recently-used
	tail GlyphKey // eviction candidate
	has  bool     // false when cache is empty

	currentBytes int
	budgetBytes  int
}

func NewGlyphCache(rasterizer Rasterizer, budgetBytes int) *GlyphCache {
	return &GlyphCache{
		nodes:       make(map[GlyphKey]*glyphCacheNode),
		rasterizer:  rasterizer,
		budgetBytes: budgetBytes,
	}
}

// GetGlyph returns the cached bitmap for (face, glyphIndex, sizePixels),
// rasterizing on a miss. r is the source rune, needed by the rasterizer
// backend (see Rasterizer.Render). On a hit this does not allocate,
// satisfying the hot-path contract the frame assembler relies on.
func (gc *GlyphCache) GetGlyph(face *FontFace, r rune, glyphIndex truetype.Index, sizePixels uint16) (*RenderedGlyph, error) {
	key := GlyphKey{FaceIdentity: face.Identity(), GlyphIndex: glyphIndex, SizePixels: sizePixels}

	if node, hit := gc.nodes[key]; hit {
		gc.moveToHead(key, node)
		return node.glyph, nil
	}

	glyph, err := gc.rasterizer.Render(face, r, glyphIndex, sizePixels)
	if err != nil {
		return nil, err
	}

	gc.evictUntilFits(glyph.ByteSize())
	gc.insertHead(key, glyph)

	return glyph, nil
}

func (gc *GlyphCache) evictUntilFits(incomingCost int) {
	for gc.has && gc.currentBytes+incomingCost > gc.budgetBytes {
		gc.evictTail()
	}
}

func (gc *GlyphCache) evictTail() {
	if !gc.has {
		return
	}
	tailKey := gc.tail
	tailNode := gc.nodes[tailKey]

	gc.currentBytes -= tailNode.glyph.ByteSize()
	delete(gc.nodes, tailKey)

	if tailKey == gc.head {
		gc.has = false
		gc.head = GlyphKey{}
		gc.tail = GlyphKey{}
		return
	}

	prevNode := gc.nodes[tailNode.prev]
	prevNode.next = GlyphKey{}
	gc.tail = tailNode.prev
}

func (gc *GlyphCache) insertHead(key GlyphKey, glyph *RenderedGlyph) {
	node := &glyphCacheNode{glyph: glyph}

	if !gc.has {
		gc.head = key
		gc.tail = key
		gc.has = true
	} else {
		oldHeadNode := gc.nodes[gc.head]
		oldHeadNode.prev = key
		node.next = gc.head
		gc.head = key
	}

	gc.nodes[key] = node
	gc.currentBytes += glyph.ByteSize()
}

func (gc *GlyphCache) moveToHead(key GlyphKey, node *glyphCacheNode) {
	if key == gc.head {
		return
	}

	prevNode, hasPrev := gc.nodes[node.prev]
	nextNode, hasNext := gc.nodes[node.next]

	if hasPrev {
		prevNode.next = node.next
	}
	if hasNext {
		nextNode.prev = node.prev
	} else {
		gc.tail = node.prev
	}

	oldHeadNode := gc.nodes[gc.head]
	oldHeadNode.prev = key
	node.next = gc.head
	node.prev = GlyphKey{}
	gc.head = key
}

// CurrentBytes reports total cached bitmap bytes (including overhead),
// for tests and metrics.
func (gc *GlyphCache) CurrentBytes() int { return gc.currentBytes }

// Len reports the number of cached glyphs.
func (gc *GlyphCache) Len() int { return len(gc.nodes) }
