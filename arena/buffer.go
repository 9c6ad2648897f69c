package arena

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSize is returned for non-positive buffer lengths.
	ErrInvalidSize = errors.New("arena: buffer length must be positive")
	// ErrUnknownKind is returned by ParseKind and Alloc for unsupported kinds.
	ErrUnknownKind = errors.New("arena: unknown allocation kind")
)

// Kind selects where buffer memory lives.
type Kind int

const (
	Heap    Kind = iota // Go heap, released by the GC
	Offheap             // C.malloc, released by Close (heap fallback without cgo)
	Mmap                // anonymous private mapping, released by Close
)

func (k Kind) String() string {
	switch k {
	case Heap:
		return "heap"
	case Offheap:
		return "offheap"
	case Mmap:
		return "mmap"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "heap", "offheap" or "mmap" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "heap":
		return Heap, nil
	case "offheap", "off-heap":
		return Offheap, nil
	case "mmap":
		return Mmap, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Buffer is a fixed-length float32 region.
type Buffer interface {
	// Data returns the backing slice; it must not be used after Close.
	Data() []float32
	Len() int
	// Close releases the memory. Safe to call more than once.
	Close() error
}

// Alloc returns a zeroed buffer of n float32 values.
func Alloc(kind Kind, n int) (Buffer, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	switch kind {
	case Heap:
		return newHeapBuffer(n), nil
	case Offheap:
		if b := allocOffheap(n); b != nil {
			return b, nil
		}
		return newHeapBuffer(n), nil
	case Mmap:
		return newMmapBuffer(n)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
}

// heapBuffer keeps data in a Go slice.
type heapBuffer struct {
	data []float32
}

func newHeapBuffer(n int) *heapBuffer {
	return &heapBuffer{data: make([]float32, n)}
}

func (b *heapBuffer) Data() []float32 { return b.data }

func (b *heapBuffer) Len() int { return len(b.data) }

// Close drops the reference so the GC can reclaim it.
func (b *heapBuffer) Close() error {
	b.data = nil
	return nil
}
