package platform

import (
	"fmt"
	"log"
	"unicode/utf8"

	"github.com/tapthaker/ghostty-android/glyphs"
	"github.com/tapthaker/ghostty-android/renderer"
	"github.com/tapthaker/ghostty-android/res"
)

// Create registers a new renderer instance for the given terminal and
// returns the handle the host app threads through every subsequent
// call. loadFonts and rasterizer may be supplied by the embedding app
// to override asset paths or the rasterization backend; a nil
// loadFonts defaults to res.SystemFontLoader (Android system font
// paths) and a nil rasterizer defaults to a FreeType backend.
func Create(term VTTerminal, loadFonts renderer.FontLoader, rasterizer glyphs.Rasterizer) Handle {
	if loadFonts == nil {
		loadFonts = res.SystemFontLoader
	}
	if rasterizer == nil {
		rasterizer = glyphs.NewFreetypeRasterizer()
	}
	inst := newInstance(term, loadFonts, rasterizer)
	return reg.create(inst)
}

// OnDestroy releases a renderer instance. Calling any other function
// with h afterwards returns an unknown-handle error.
func OnDestroy(h Handle) {
	reg.destroy(h)
}

func lookup(h Handle) (*instance, error) {
	inst, ok := reg.get(h)
	if !ok {
		return nil, fmt.Errorf("platform: unknown handle %d", h)
	}
	return inst, nil
}

// OnSurfaceCreated must be called once after a GL context is
// (re-)created, before any OnSurfaceChanged/OnDrawFrame call.
func OnSurfaceCreated(h Handle) error {
	inst, err := lookup(h)
	if err != nil {
		return err
	}
	inst.orch.OnSurfaceCreated()
	return nil
}

// OnSurfaceChanged reports a surface size, DPI, or font size change.
func OnSurfaceChanged(h Handle, widthPx, heightPx int, dpi uint16, fontSizePx float32) error {
	inst, err := lookup(h)
	if err != nil {
		return err
	}
	return inst.orch.OnSurfaceChanged(widthPx, heightPx, dpi, fontSizePx)
}

// OnDrawFrame drains any input staged since the last frame into the
// terminal, then draws. Must run on the thread holding the GL context.
func OnDrawFrame(h Handle) error {
	inst, err := lookup(h)
	if err != nil {
		return err
	}
	inst.drainInput()
	return inst.orch.DrawFrame(inst.term, inst.palette)
}

// ProcessInput stages UTF-8 bytes produced by the on-screen keyboard
// or a hardware input event for delivery to the terminal on the next
// drawn frame. Safe to call from the UI thread concurrently with
// OnDrawFrame running on the GL thread.
func ProcessInput(h Handle, input []byte) error {
	inst, err := lookup(h)
	if err != nil {
		return err
	}
	if !utf8.Valid(input) {
		log.Printf("platform: dropping non-UTF-8 input (%d bytes)", len(input))
		return nil
	}
	inst.inputMu.Lock()
	inst.inputQueue.Append(input...)
	inst.inputMu.Unlock()
	return nil
}

// SetFontSize requests a font size change, applied on the next
// OnSurfaceChanged call (the GL thread owns the atlas rebuild).
func SetFontSize(h Handle, px float32) error {
	inst, err := lookup(h)
	if err != nil {
		return err
	}
	return inst.orch.OnSurfaceChanged(int(inst.orch.ScreenW), int(inst.orch.ScreenH), inst.orch.DPI, px)
}

// SetTerminalSize resizes the backing VT emulator's logical grid
// directly; independent of the renderer's own cell-derived grid size.
func SetTerminalSize(h Handle, cols, rows int) error {
	inst, err := lookup(h)
	if err != nil {
		return err
	}
	inst.term.Resize(cols, rows)
	return nil
}

// SetShowFps toggles an on-screen FPS counter. The renderer itself
// doesn't own text-overlay drawing; this just records the flag for the
// embedding app's own overlay view.
func SetShowFps(h Handle, show bool) error {
	inst, err := lookup(h)
	if err != nil {
		return err
	}
	inst.stateMu.Lock()
	inst.showFps = show
	inst.stateMu.Unlock()
	return nil
}

// ShowFps reports the last value set via SetShowFps.
func ShowFps(h Handle) (bool, error) {
	inst, err := lookup(h)
	if err != nil {
		return false, err
	}
	inst.stateMu.Lock()
	defer inst.stateMu.Unlock()
	return inst.showFps, nil
}

// GetGridSize reports the renderer's current column/row count.
func GetGridSize(h Handle) (cols, rows int, err error) {
	inst, err := lookup(h)
	if err != nil {
		return 0, 0, err
	}
	return inst.orch.GridCols, inst.orch.GridRows, nil
}

// GetCellSize reports the current glyph cell size in pixels.
func GetCellSize(h Handle) (w, ht float32, err error) {
	inst, err := lookup(h)
	if err != nil {
		return 0, 0, err
	}
	return inst.orch.CellW, inst.orch.CellH, nil
}

// GetFontLineSpacing reports the baseline offset used for the current
// font size, for a host overlay that needs to align its own text.
func GetFontLineSpacing(h Handle) (float32, error) {
	inst, err := lookup(h)
	if err != nil {
		return 0, err
	}
	return inst.orch.Baseline, nil
}
