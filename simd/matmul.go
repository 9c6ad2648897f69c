package simd

// MatVec computes dst = m·v for a rows×len(v) row-major matrix m.
// Returns false without touching dst on bad shapes.
func MatVec(dst []float32, m []float32, v []float32, rows int) bool {
	if len(dst) < rows || rows <= 0 {
		return false
	}
	scratch := make([]float64, rows)
	if !DotProductBatchFlatInto(scratch, v, m, rows) {
		return false
	}
	for i, s := range scratch {
		dst[i] = float32(s)
	}
	return true
}

// MatMul computes dst = a·b for square n×n row-major matrices.
// b is transposed once so every output row is a batched dot of a row of a
// against the rows of bᵀ.
func MatMul(dst, a, b []float32, n int) bool {
	nn := n * n
	if n <= 0 || len(a) < nn || len(b) < nn || len(dst) < nn {
		return false
	}
	bt := make([]float32, nn)
	Transpose(bt, b, n)
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		DotProductBatchFlatInto(row, a[i*n:(i+1)*n], bt, n)
		out := dst[i*n : (i+1)*n]
		for j, s := range row {
			out[j] = float32(s)
		}
	}
	return true
}

// Transpose writes the transpose of the n×n row-major matrix src into dst.
func Transpose(dst, src []float32, n int) {
	const tile = 32
	for ii := 0; ii < n; ii += tile {
		iEnd := min(ii+tile, n)
		for jj := 0; jj < n; jj += tile {
			jEnd := min(jj+tile, n)
			for i := ii; i < iEnd; i++ {
				for j := jj; j < jEnd; j++ {
					dst[j*n+i] = src[i*n+j]
				}
			}
		}
	}
}
