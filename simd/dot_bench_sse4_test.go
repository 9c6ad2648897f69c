//go:build amd64 && cgo

package simd

import (
	"testing"

	"golang.org/x/sys/cpu"
)

func BenchmarkDotProduct_SSE4(b *testing.B) {
	if !cpu.X86.HasSSE41 {
		b.Skip("SSE4.1 not available")
	}
	va, vb := initBenchVectors()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dotProductSSE4(va, vb)
	}
}
