package arena

import (
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

// mmapBuffer is backed by an anonymous read-write mapping.
type mmapBuffer struct {
	region mmap.MMap
	n      int
}

func newMmapBuffer(n int) (*mmapBuffer, error) {
	size := n * int(unsafe.Sizeof(float32(0)))
	m, err := mmap.MapRegion(nil, size, mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return nil, err
	}
	return &mmapBuffer{region: m, n: n}, nil
}

// Data returns a []float32 view of the mapping.
func (b *mmapBuffer) Data() []float32 {
	if b.region == nil {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&b.region[0])), b.n)
}

func (b *mmapBuffer) Len() int { return b.n }

// Close unmaps the region.
func (b *mmapBuffer) Close() error {
	if b.region == nil {
		return nil
	}
	err := b.region.Unmap()
	b.region = nil
	return err
}
