// Package arena allocates float32 operand buffers on the Go heap, off-heap via
// C.malloc, or in an anonymous memory mapping. Every Buffer must be closed by
// its owner; Close is idempotent.
//
//	buf, err := arena.Alloc(arena.Mmap, n*n)
//	if err != nil { ... }
//	defer buf.Close()
//	data := buf.Data()
package arena
