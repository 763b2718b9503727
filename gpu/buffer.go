// Package gpu wraps the GPU resources the renderer drives: typed
// auto-growing buffers, shader/program compilation with #include
// preprocessing, and vertex-array layout configuration.
package gpu

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/tapthaker/ghostty-android/assert"
)

// BufferKind selects the GL binding target a Buffer is used at.
type BufferKind uint32

const (
	KindVertex  BufferKind = gl.ARRAY_BUFFER
	KindUniform BufferKind = gl.UNIFORM_BUFFER
	KindStorage BufferKind = gl.SHADER_STORAGE_BUFFER
)

// Buffer is a GPU buffer object that grows geometrically (2x) when an
// upload exceeds its current capacity.
type Buffer struct {
	ID       uint32
	Kind     BufferKind
	Capacity int // bytes
}

func NewBuffer(kind BufferKind) *Buffer {
	b := &Buffer{Kind: kind}
	gl.GenBuffers(1, &b.ID)
	return b
}

// EnsureCapacity grows the buffer's backing store to at least
// requiredBytes, doubling from its current capacity (or a 4KB floor)
// until it fits. Existing contents are not preserved across a grow;
// callers that need this call Upload immediately afterward.
func (b *Buffer) EnsureCapacity(requiredBytes int) {
	if requiredBytes <= b.Capacity {
		return
	}

	newCap := b.Capacity
	if newCap == 0 {
		newCap = 4096
	}
	for newCap < requiredBytes {
		newCap *= 2
	}

	gl.BindBuffer(uint32(b.Kind), b.ID)
	gl.BufferData(uint32(b.Kind), newCap, nil, gl.DYNAMIC_DRAW)
	b.Capacity = newCap

	assert.T(b.Capacity >= requiredBytes, "gpu buffer: grew to %d bytes but still short of required %d", b.Capacity, requiredBytes)
}

// Upload grows the buffer if needed, then replaces its entire contents
// with data. data must be a slice of a fixed-size value type (e.g.
// []CellInstance-shaped bytes, a single std140 struct).
func (b *Buffer) Upload(data []byte) {
	b.EnsureCapacity(len(data))
	gl.BindBuffer(uint32(b.Kind), b.ID)
	if len(data) > 0 {
		gl.BufferSubData(uint32(b.Kind), 0, len(data), gl.Ptr(data))
	}
}

// BindBase binds this buffer to an indexed binding point, for UBOs and
// SSBOs referenced by a fixed binding number in the shader.
func (b *Buffer) BindBase(index uint32) {
	gl.BindBufferBase(uint32(b.Kind), index, b.ID)
}

func (b *Buffer) Delete() {
	gl.DeleteBuffers(1, &b.ID)
}

// SizeOf returns the byte size of a fixed-layout GPU struct value,
// used by callers to assert std140/std430 layouts at init (e.g.
// CellInstance must be exactly 32 bytes).
func SizeOf[T any]() int {
	var v T
	return int(unsafe.Sizeof(v))
}
