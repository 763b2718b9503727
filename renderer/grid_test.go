package renderer

import "testing"

func TestRecomputeGridClampsToSupportedRange(t *testing.T) {
	o := &Orchestrator{ScreenW: 100000, ScreenH: 100000, CellW: 8, CellH: 16}
	o.recomputeGrid()
	if o.GridCols != maxGridCols || o.GridRows != maxGridRows {
		t.Fatalf("expected grid clamped to max (%d,%d), got (%d,%d)", maxGridCols, maxGridRows, o.GridCols, o.GridRows)
	}

	o = &Orchestrator{ScreenW: 10, ScreenH: 10, CellW: 8, CellH: 16}
	o.recomputeGrid()
	if o.GridCols != minGridCols || o.GridRows != minGridRows {
		t.Fatalf("expected grid clamped to min (%d,%d), got (%d,%d)", minGridCols, minGridRows, o.GridCols, o.GridRows)
	}
}
