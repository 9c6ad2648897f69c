//go:build cgo

package arena

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// offheapBuffer is allocated with C.calloc, keeping large operands out of GC scans.
type offheapBuffer struct {
	ptr unsafe.Pointer
	n   int
}

func allocOffheap(n int) Buffer {
	ptr := C.calloc(C.size_t(n), C.size_t(unsafe.Sizeof(float32(0))))
	if ptr == nil {
		return nil
	}
	return &offheapBuffer{ptr: ptr, n: n}
}

// Data returns a slice view of the off-heap memory.
func (b *offheapBuffer) Data() []float32 {
	if b.ptr == nil {
		return nil
	}
	return unsafe.Slice((*float32)(b.ptr), b.n)
}

func (b *offheapBuffer) Len() int { return b.n }

// Close frees the C allocation.
func (b *offheapBuffer) Close() error {
	if b.ptr != nil {
		C.free(b.ptr)
		b.ptr = nil
	}
	return nil
}
