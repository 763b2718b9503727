package gpu

import "github.com/go-gl/gl/v4.1-core/gl"

// DrawFullScreenTriangle issues the vertex-attribute-less full-screen
// triangle draw shared by the bg_color and cell_bg passes: the vertex
// shader synthesizes its 3 positions from gl_VertexID.
func DrawFullScreenTriangle() {
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
}

// DrawInstancedQuads issues the cell_text pass: 4 vertices per
// instance as a triangle strip, one instance per visible glyph.
func DrawInstancedQuads(instanceCount int) {
	if instanceCount == 0 {
		return
	}
	gl.DrawArraysInstanced(gl.TRIANGLE_STRIP, 0, 4, int32(instanceCount))
}

// ClearTransparentBlack clears the framebuffer before a frame's three
// draw passes, per the per-frame sequence.
func ClearTransparentBlack() {
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// CheckError logs (non-fatally) the first pending GL error, if any.
// Per the error-handling policy, GL errors after a draw call are
// logged but never abort the frame.
func CheckError(context string) {
	if err := gl.GetError(); err != gl.NO_ERROR {
		logGLError(context, err)
	}
}
