//go:build amd64 && cgo

package simd

// Single dot products run through the batch kernels with one row.

func dotProductAVX512(a, b []float32) float64 {
	var r [1]float64
	dotProductBatchFlatAVX512(r[:], a, b, 1)
	return r[0]
}

func dotProductAVX2(a, b []float32) float64 {
	var r [1]float64
	dotProductBatchFlatAVX2(r[:], a, b, 1)
	return r[0]
}

func dotProductSSE4(a, b []float32) float64 {
	var r [1]float64
	dotProductBatchFlatSSE4(r[:], a, b, 1)
	return r[0]
}
