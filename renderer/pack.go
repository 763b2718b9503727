package renderer

import (
	"encoding/binary"
	"unsafe"

	"github.com/tapthaker/ghostty-android/assemble"
)

// packU32Slice copies a []uint32 into a new little-endian byte slice
// for the per-frame SSBO upload. The other pack helpers instead
// reinterpret-cast their fixed-layout, pointer-free value types
// (CellInstance, Uniforms, AtlasDimensions) without copying.
func packU32Slice(vals []uint32) []byte {
	out := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out
}

func packInstances(instances []assemble.CellInstance) []byte {
	if len(instances) == 0 {
		return nil
	}
	const stride = 32
	size := len(instances) * stride
	return unsafe.Slice((*byte)(unsafe.Pointer(&instances[0])), size)
}

func packUniforms(u Uniforms) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&u)), unsafe.Sizeof(u))
}

func packAtlasDimensions(a AtlasDimensions) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&a)), unsafe.Sizeof(a))
}
