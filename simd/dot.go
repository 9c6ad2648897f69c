// Package simd provides AVX-512, AVX2, SSE4, and NEON accelerated float32 kernels
// for dot products, matrix-vector and matrix-matrix multiplication over flat
// row-major slices. The implementation is selected at init based on GOARCH,
// CGO availability and the CPU features reported by golang.org/x/sys/cpu.
package simd

var (
	dotProductImpl     func(a, b []float32) float64
	dotProductImplDesc string
)

func init() {
	// Default; dispatch files override in init() based on GOARCH and CGO.
	if dotProductImpl == nil {
		dotProductImpl = dotProductGo
		dotProductImplDesc = "Go"
	}
}

// DotProduct computes the inner product of two float32 vectors of any length.
// Returns 0 when the lengths differ or the vectors are empty.
func DotProduct(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	if dotProductImpl != nil {
		return dotProductImpl(a, b)
	}
	return dotProductGo(a, b)
}

// DotProductDesc returns a description of the current dot product implementation (for logging).
func DotProductDesc() string {
	if dotProductImplDesc != "" {
		return dotProductImplDesc
	}
	return "Go"
}

// dotProductGo is the pure Go implementation (4-way unroll plus scalar tail).
func dotProductGo(a, b []float32) float64 {
	n := len(a)
	b = b[:n]
	var sum float64
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 := a[i+0]*b[i+0] + a[i+1]*b[i+1]
		s1 := a[i+2]*b[i+2] + a[i+3]*b[i+3]
		sum += float64(s0 + s1)
	}
	for ; i < n; i++ {
		sum += float64(a[i] * b[i])
	}
	return sum
}
