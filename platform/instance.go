package platform

import (
	"sync"

	"github.com/tapthaker/ghostty-android/glyphs"
	"github.com/tapthaker/ghostty-android/ring"
	"github.com/tapthaker/ghostty-android/screen"
	"github.com/tapthaker/ghostty-android/renderer"
)

// VTTerminal is the contract the host VT emulator must satisfy to back
// a renderer instance. It extends screen.Terminal (cell/style lookup
// for the current viewport) with the scrollback, input, and selection
// operations the platform boundary exposes to the embedding app.
type VTTerminal interface {
	screen.Terminal

	// Feed pushes raw UTF-8 bytes (already staged off the UI thread)
	// into the emulator's parser.
	Feed(data []byte)

	// Resize changes the emulator's logical grid.
	Resize(cols, rows int)

	ScrollbackRows() int
	ContentHeightPx(cellHeight float32) int
	ViewportOffsetRows() int
	ScrollRows(delta int)
	ScrollToBottom()
	IsAtBottom() bool

	HyperlinkAt(col, row int) (string, bool)
	SelectionText(startCol, startRow, endCol, endRow int) string
}

// selection holds the UI thread's in-progress or committed selection
// rectangle, in grid coordinates.
type selection struct {
	active               bool
	startCol, startRow   int
	endCol, endRow       int
}

// instance is one renderer's full state: the GL-thread orchestrator,
// the VT terminal it draws, and the small amount of UI-thread state
// (pending input, selection, scroll offset, fps flag) that must cross
// over to the GL thread on the next draw.
type instance struct {
	orch    *renderer.Orchestrator
	term    VTTerminal
	palette *screen.Palette

	// inputMu guards inputQueue, which the UI thread appends to and the
	// GL thread drains once per frame. Kept separate from stateMu so a
	// burst of keystrokes never blocks a concurrent geometry query.
	inputMu    sync.Mutex
	inputQueue *ring.Buffer[byte]

	// stateMu guards everything below: short critical sections only,
	// per the UI-thread/GL-thread split described for the renderer.
	stateMu           sync.Mutex
	showFps           bool
	scrollPixelOffset float32
	sel               selection
}

const inputQueueCapacity = 4096

func newInstance(term VTTerminal, loadFonts renderer.FontLoader, rasterizer glyphs.Rasterizer) *instance {
	return &instance{
		orch:       renderer.NewOrchestrator(loadFonts, rasterizer),
		term:       term,
		palette:    screen.NewXtermPalette(),
		inputQueue: ring.NewBuffer[byte](inputQueueCapacity),
	}
}

// drainInput moves any input staged since the last call into the VT
// terminal's parser. Called from OnDrawFrame, which always runs on the
// GL thread, immediately before extracting the screen for this frame.
func (inst *instance) drainInput() {
	inst.inputMu.Lock()
	v1, v2 := inst.inputQueue.Views()
	pending := make([]byte, 0, len(v1)+len(v2))
	pending = append(pending, v1...)
	pending = append(pending, v2...)
	inst.inputQueue = ring.NewBuffer[byte](inputQueueCapacity)
	inst.inputMu.Unlock()

	if len(pending) > 0 {
		inst.term.Feed(pending)
	}
}
