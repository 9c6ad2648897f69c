//go:build !cgo

package arena

// allocOffheap returns nil when CGO is disabled; Alloc falls back to the heap.
func allocOffheap(n int) Buffer {
	return nil
}
