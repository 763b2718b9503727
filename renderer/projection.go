package renderer

import "github.com/bloeys/gglm/gglm"

// OrthoProjection builds a pixel-space orthographic projection matching
// the surface exactly: origin top-left, no padding baked into the
// matrix itself (padding is represented only as cell colors extending,
// per the padding_extend uniform flags).
func OrthoProjection(width, height float32) gglm.Mat4 {
	left, right := float32(0), width
	bottom, top := height, float32(0)
	near, far := float32(-1), float32(1)

	return gglm.Mat4{Data: [4][4]float32{
		{2 / (right - left), 0, 0, 0},
		{0, 2 / (top - bottom), 0, 0},
		{0, 0, -2 / (far - near), 0},
		{-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1},
	}}
}
