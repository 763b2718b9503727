package platform

// ScrollDelta requests the viewport move by delta rows (positive
// scrolls back into history, negative scrolls toward live output). The
// VT terminal owns scrollback storage and clamps at either end.
func ScrollDelta(h Handle, delta int) error {
	inst, err := lookup(h)
	if err != nil {
		return err
	}
	inst.term.ScrollRows(delta)
	inst.stateMu.Lock()
	inst.scrollPixelOffset = 0
	inst.stateMu.Unlock()
	return nil
}

// ScrollToBottom snaps the viewport back to the live output tail.
func ScrollToBottom(h Handle) error {
	inst, err := lookup(h)
	if err != nil {
		return err
	}
	inst.term.ScrollToBottom()
	inst.stateMu.Lock()
	inst.scrollPixelOffset = 0
	inst.stateMu.Unlock()
	return nil
}

// IsViewportAtBottom reports whether the viewport is showing live
// output (no scrollback offset applied).
func IsViewportAtBottom(h Handle) (bool, error) {
	inst, err := lookup(h)
	if err != nil {
		return false, err
	}
	return inst.term.IsAtBottom(), nil
}

// GetViewportOffset reports the current scrollback offset in rows.
func GetViewportOffset(h Handle) (int, error) {
	inst, err := lookup(h)
	if err != nil {
		return 0, err
	}
	return inst.term.ViewportOffsetRows(), nil
}

// GetScrollbackRows reports how many rows of history are retained.
func GetScrollbackRows(h Handle) (int, error) {
	inst, err := lookup(h)
	if err != nil {
		return 0, err
	}
	return inst.term.ScrollbackRows(), nil
}

// GetContentHeight reports the full scrollback content height in
// pixels, at the renderer's current cell height, for a host scrollbar.
func GetContentHeight(h Handle) (int, error) {
	inst, err := lookup(h)
	if err != nil {
		return 0, err
	}
	return inst.term.ContentHeightPx(inst.orch.CellH), nil
}

// SetScrollPixelOffset records a sub-row pixel offset for smooth
// (non-row-quantized) touch scrolling. The value is only stored on the
// instance; drawing does not read it and uses the VT terminal's
// row-granular scrollback offset alone.
func SetScrollPixelOffset(h Handle, px float32) error {
	inst, err := lookup(h)
	if err != nil {
		return err
	}
	inst.stateMu.Lock()
	inst.scrollPixelOffset = px
	inst.stateMu.Unlock()
	return nil
}
