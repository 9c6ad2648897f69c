//go:build amd64 && cgo

package simd

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512DQ:
		dotProductBatchFlatImpl = dotProductBatchFlatAVX512
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		dotProductBatchFlatImpl = dotProductBatchFlatAVX2
	case cpu.X86.HasSSE41:
		dotProductBatchFlatImpl = dotProductBatchFlatSSE4
	default:
		dotProductBatchFlatImpl = dotProductBatchFlatGo
	}
}
