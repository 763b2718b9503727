package glyphs

import (
	"unicode"

	"golang.org/x/text/width"
)

// widthLRUCap bounds the non-ASCII width classification cache.
const widthLRUCap = 512

// WidthTable computes display width (0, 1, or 2 cells) for a codepoint.
// ASCII is classified by direct range check and never touches the LRU;
// everything else goes through golang.org/x/text/width plus a
// unicode.Mn/Me combining-mark check, with the result cached.
type WidthTable struct {
	cache    map[rune]uint8
	lruOrder []rune // front = most recently used
}

func NewWidthTable() *WidthTable {
	return &WidthTable{
		cache: make(map[rune]uint8, widthLRUCap),
	}
}

// Width returns the display width of r: 0 for control chars and
// combining marks, 1 for normal printable characters, 2 for wide
// (East-Asian wide/fullwidth) characters.
func (wt *WidthTable) Width(r rune) uint8 {
	if r < 0x20 || r == 0x7F {
		return 0
	}
	if r < 0x7F {
		return 1
	}

	if w, hit := wt.cache[r]; hit {
		wt.touch(r)
		return w
	}

	w := classifyWidth(r)
	wt.insert(r, w)
	return w
}

func classifyWidth(r rune) uint8 {
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) {
		return 0
	}
	if r >= 0x80 && r < 0xA0 {
		return 0 // C1 control range
	}

	switch p := width.LookupRune(r); p.Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

func (wt *WidthTable) touch(r rune) {
	for i, v := range wt.lruOrder {
		if v == r {
			if i != 0 {
				copy(wt.lruOrder[1:i+1], wt.lruOrder[0:i])
				wt.lruOrder[0] = r
			}
			return
		}
	}
}

func (wt *WidthTable) insert(r rune, w uint8) {
	if len(wt.lruOrder) >= widthLRUCap {
		evict := wt.lruOrder[len(wt.lruOrder)-1]
		wt.lruOrder = wt.lruOrder[:len(wt.lruOrder)-1]
		delete(wt.cache, evict)
	}
	wt.cache[r] = w
	wt.lruOrder = append([]rune{r}, wt.lruOrder...)
}
