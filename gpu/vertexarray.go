package gpu

import "github.com/go-gl/gl/v4.1-core/gl"

// AttrType is a per-attribute GL scalar type, used to derive stride and
// offsets for a vertex-array layout from a record description.
type AttrType int

const (
	AttrU32 AttrType = iota
	AttrI16
	AttrU16
	AttrU8
	AttrF32
)

func (t AttrType) glType() uint32 {
	switch t {
	case AttrU32:
		return gl.UNSIGNED_INT
	case AttrI16:
		return gl.SHORT
	case AttrU16:
		return gl.UNSIGNED_SHORT
	case AttrU8:
		return gl.UNSIGNED_BYTE
	default:
		return gl.FLOAT
	}
}

func (t AttrType) byteSize() int32 {
	switch t {
	case AttrI16, AttrU16:
		return 2
	case AttrU8:
		return 1
	default:
		return 4
	}
}

// Attr describes one vertex attribute: its component type, component
// count, and whether integer types should be read as normalized
// floats (e.g. a packed color byte -> [0,1]) or passed through via
// VertexAttribIPointer.
type Attr struct {
	Type       AttrType
	Count      int32
	Normalized bool
	Integer    bool
}

// VertexArray configures one VAO's attribute layout for an instanced
// per-cell buffer: stride and offsets are derived from the Attr list
// rather than hardcoded, so the layout always matches a Go struct's
// actual field order.
type VertexArray struct {
	ID uint32
}

func NewVertexArray() *VertexArray {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return &VertexArray{ID: id}
}

// ConfigureInstanced binds attrs starting at startIndex against buf,
// with divisor 1 so each instance (not each vertex) advances the
// attribute pointer.
func (va *VertexArray) ConfigureInstanced(buf *Buffer, startIndex uint32, attrs []Attr) {
	gl.BindVertexArray(va.ID)
	gl.BindBuffer(uint32(buf.Kind), buf.ID)

	stride := int32(0)
	for _, a := range attrs {
		stride += a.Type.byteSize() * a.Count
	}

	offset := int32(0)
	for i, a := range attrs {
		idx := startIndex + uint32(i)
		gl.EnableVertexAttribArray(idx)
		if a.Integer {
			gl.VertexAttribIPointerWithOffset(idx, a.Count, a.Type.glType(), stride, uintptr(offset))
		} else {
			gl.VertexAttribPointerWithOffset(idx, a.Count, a.Type.glType(), a.Normalized, stride, uintptr(offset))
		}
		gl.VertexAttribDivisor(idx, 1)
		offset += a.Type.byteSize() * a.Count
	}

	gl.BindVertexArray(0)
}

func (va *VertexArray) Bind()   { gl.BindVertexArray(va.ID) }
func (va *VertexArray) Unbind() { gl.BindVertexArray(0) }
func (va *VertexArray) Delete() {
	gl.DeleteVertexArrays(1, &va.ID)
}
