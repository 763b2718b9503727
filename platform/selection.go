package platform

// StartSelection begins a new selection rectangle anchored at a grid
// cell, clearing any previous selection.
func StartSelection(h Handle, col, row int) error {
	inst, err := lookup(h)
	if err != nil {
		return err
	}
	inst.stateMu.Lock()
	inst.sel = selection{active: true, startCol: col, startRow: row, endCol: col, endRow: row}
	inst.stateMu.Unlock()
	return nil
}

// UpdateSelection moves the free end of an in-progress selection.
func UpdateSelection(h Handle, col, row int) error {
	inst, err := lookup(h)
	if err != nil {
		return err
	}
	inst.stateMu.Lock()
	if inst.sel.active {
		inst.sel.endCol, inst.sel.endRow = col, row
	}
	inst.stateMu.Unlock()
	return nil
}

// ClearSelection drops the current selection, if any.
func ClearSelection(h Handle) error {
	inst, err := lookup(h)
	if err != nil {
		return err
	}
	inst.stateMu.Lock()
	inst.sel = selection{}
	inst.stateMu.Unlock()
	return nil
}

// HasSelection reports whether a selection is currently active.
func HasSelection(h Handle) (bool, error) {
	inst, err := lookup(h)
	if err != nil {
		return false, err
	}
	inst.stateMu.Lock()
	defer inst.stateMu.Unlock()
	return inst.sel.active, nil
}

// GetSelectionBounds reports the current selection's grid rectangle.
// ok is false if there is no active selection.
func GetSelectionBounds(h Handle) (startCol, startRow, endCol, endRow int, ok bool, err error) {
	inst, lookupErr := lookup(h)
	if lookupErr != nil {
		return 0, 0, 0, 0, false, lookupErr
	}
	inst.stateMu.Lock()
	defer inst.stateMu.Unlock()
	if !inst.sel.active {
		return 0, 0, 0, 0, false, nil
	}
	return inst.sel.startCol, inst.sel.startRow, inst.sel.endCol, inst.sel.endRow, true, nil
}

// GetSelectionText extracts the plain-text contents of the current
// selection from the VT terminal. Returns "" if there is no selection.
func GetSelectionText(h Handle) (string, error) {
	inst, err := lookup(h)
	if err != nil {
		return "", err
	}
	inst.stateMu.Lock()
	sel := inst.sel
	inst.stateMu.Unlock()
	if !sel.active {
		return "", nil
	}
	return inst.term.SelectionText(sel.startCol, sel.startRow, sel.endCol, sel.endRow), nil
}

// HyperlinkAtCell reports the OSC-8 hyperlink target under a grid
// cell, if any.
func HyperlinkAtCell(h Handle, col, row int) (url string, ok bool, err error) {
	inst, lookupErr := lookup(h)
	if lookupErr != nil {
		return "", false, lookupErr
	}
	url, ok = inst.term.HyperlinkAt(col, row)
	return url, ok, nil
}
