package renderer

import "github.com/bloeys/gglm/gglm"

// Uniforms is the global std140 uniform block, bound at UBO binding 0.
// Field order matches std140 rules: vec4/mat4 members are naturally
// 16-byte aligned, so scalars are grouped into vec4-sized chunks
// instead of interleaved with the matrix.
type Uniforms struct {
	Projection gglm.Mat4

	ScreenSize  [2]float32
	CellSize    [2]float32

	GridCols uint32
	GridRows uint32
	_padA    [2]uint32

	PaddingRect [4]float32 // left, top, right, bottom, in pixels

	MinContrast float32
	_padB       uint32

	CursorPos   [2]uint32 // packed col/row
	CursorColor uint32
	CursorWide  uint32 // bool as uint32 for std140

	GlobalBgColor uint32
	P3            uint32 // bool
	LinearBlend   uint32 // bool
	LinearCorrect uint32 // bool

	PaddingExtendLeft  uint32
	PaddingExtendTop   uint32
	PaddingExtendRight uint32
	PaddingExtendBot   uint32

	UnderlinePosition  float32
	UnderlineThickness float32
	StrikethroughPos   float32
	Baseline           float32

	// _padC rounds the block to 192 bytes: std140 struct size must be a
	// multiple of the largest member alignment (16, from Projection/
	// PaddingRect).
	_padC [2]uint32
}

// AtlasDimensions is the std140 block bound at UBO binding 2, letting
// the fragment shader normalize pixel-space atlas coordinates to
// [0,1] for each of the two atlas formats.
type AtlasDimensions struct {
	GrayscaleSize [2]float32
	ColorSize     [2]float32
}
