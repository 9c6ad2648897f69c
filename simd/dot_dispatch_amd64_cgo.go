//go:build amd64 && cgo

package simd

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512DQ:
		dotProductImpl = dotProductAVX512
		dotProductImplDesc = "AVX-512"
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		dotProductImpl = dotProductAVX2
		dotProductImplDesc = "AVX2+FMA"
	case cpu.X86.HasSSE41:
		dotProductImpl = dotProductSSE4
		dotProductImplDesc = "SSE4.1"
	default:
		dotProductImpl = dotProductGo
		dotProductImplDesc = "Go"
	}
}
