//go:build arm64 && cgo

package simd

func dotProductNEON(a, b []float32) float64 {
	var r [1]float64
	dotProductBatchFlatNEON(r[:], a, b, 1)
	return r[0]
}
