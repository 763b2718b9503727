package renderer

import (
	"encoding/binary"
	"testing"
	"unsafe"
)

func TestPackU32SliceRoundTrips(t *testing.T) {
	vals := []uint32{0, 1, 0xDEADBEEF, 0xFFFFFFFF}
	out := packU32Slice(vals)

	if len(out) != len(vals)*4 {
		t.Fatalf("expected %d bytes, got %d", len(vals)*4, len(out))
	}

	for i, want := range vals {
		got := binary.LittleEndian.Uint32(out[i*4:])
		if got != want {
			t.Fatalf("value %d: expected %#x, got %#x", i, want, got)
		}
	}
}

func TestPackUniformsRoundTrips(t *testing.T) {
	u := Uniforms{
		ScreenSize:    [2]float32{800, 600},
		CellSize:      [2]float32{8, 16},
		GridCols:      100,
		GridRows:      37,
		GlobalBgColor: 0x11223344,
		Baseline:      12.5,
	}

	out := packUniforms(u)
	if len(out) != int(unsafe.Sizeof(u)) {
		t.Fatalf("expected %d bytes, got %d", unsafe.Sizeof(u), len(out))
	}
	if unsafe.Sizeof(u)%16 != 0 {
		t.Fatalf("std140 uniform block size must be a multiple of 16, got %d", unsafe.Sizeof(u))
	}

	gridCols := binary.LittleEndian.Uint32(out[80:])
	if gridCols != u.GridCols {
		t.Fatalf("expected grid_cols %#x at offset 80, got %#x", u.GridCols, gridCols)
	}
}

func TestPackAtlasDimensionsRoundTrips(t *testing.T) {
	a := AtlasDimensions{GrayscaleSize: [2]float32{2048, 2048}, ColorSize: [2]float32{1024, 1024}}
	out := packAtlasDimensions(a)
	if len(out) != int(unsafe.Sizeof(a)) {
		t.Fatalf("expected %d bytes, got %d", unsafe.Sizeof(a), len(out))
	}
}

func TestClampIntBounds(t *testing.T) {
	if clampInt(5, 10, 20) != 10 {
		t.Fatal("expected clamp to raise below-range value to lo")
	}
	if clampInt(25, 10, 20) != 20 {
		t.Fatal("expected clamp to lower above-range value to hi")
	}
	if clampInt(15, 10, 20) != 15 {
		t.Fatal("expected in-range value to pass through unchanged")
	}
}
