// Package platform exposes the renderer as a flat, numeric-handle
// boundary suitable for a cgo/JNI shim to call 1:1. All heavy logic
// lives in glyphs/atlas/screen/assemble/renderer; this package only
// does handle bookkeeping, thread-safety, and argument marshaling.
package platform

import (
	"sync"
	"sync/atomic"
)

// Handle is an opaque, process-scoped numeric identifier for one
// renderer instance, safe to pass across the cgo/JNI boundary as a
// plain integer.
type Handle uint64

var nextHandle uint64

func allocHandle() Handle {
	return Handle(atomic.AddUint64(&nextHandle, 1))
}

// registry is the process-wide map from Handle to renderer instance,
// guarded by a mutex with short critical sections: lookups never hold
// the lock across a draw call or other GL operation.
type registry struct {
	mu    sync.Mutex
	insts map[Handle]*instance
}

var reg = &registry{insts: make(map[Handle]*instance)}

func (r *registry) create(inst *instance) Handle {
	h := allocHandle()
	r.mu.Lock()
	r.insts[h] = inst
	r.mu.Unlock()
	return h
}

func (r *registry) get(h Handle) (*instance, bool) {
	r.mu.Lock()
	inst, ok := r.insts[h]
	r.mu.Unlock()
	return inst, ok
}

func (r *registry) destroy(h Handle) {
	r.mu.Lock()
	delete(r.insts, h)
	r.mu.Unlock()
}
