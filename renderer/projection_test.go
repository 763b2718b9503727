package renderer

import "testing"

func TestOrthoProjectionMapsCornersToClipSpace(t *testing.T) {
	m := OrthoProjection(800, 600)

	// Top-left (0,0) should map to clip-space (-1, 1).
	x, y := project(m.Data, 0, 0)
	if !almostEqual(x, -1) || !almostEqual(y, 1) {
		t.Fatalf("expected top-left to map to (-1,1), got (%v,%v)", x, y)
	}

	// Bottom-right (800,600) should map to clip-space (1, -1).
	x, y = project(m.Data, 800, 600)
	if !almostEqual(x, 1) || !almostEqual(y, -1) {
		t.Fatalf("expected bottom-right to map to (1,-1), got (%v,%v)", x, y)
	}
}

func project(m [4][4]float32, px, py float32) (float32, float32) {
	x := px*m[0][0] + py*m[1][0] + m[3][0]
	y := px*m[0][1] + py*m[1][1] + m[3][1]
	return x, y
}

func almostEqual(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-4
}
