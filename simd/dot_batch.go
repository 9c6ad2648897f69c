package simd

// dotProductBatchFlatImpl writes n dot products into dst. Callers validate shapes.
var dotProductBatchFlatImpl func(dst []float64, query, data []float32, n int)

func init() {
	if dotProductBatchFlatImpl == nil {
		dotProductBatchFlatImpl = dotProductBatchFlatGo
	}
}

// DotProductBatchFlatInto computes dot products of n rows with query into dst.
// Layout: data[i*dim:(i+1)*dim] is the i-th row, where dim = len(query).
// Reports false without touching dst on bad shapes or len(dst) < n.
func DotProductBatchFlatInto(dst []float64, query []float32, data []float32, n int) bool {
	if !batchShapeOK(query, data, n) || len(dst) < n {
		return false
	}
	dotProductBatchFlatImpl(dst, query, data, n)
	return true
}

func batchShapeOK(query, data []float32, n int) bool {
	dim := len(query)
	return dim > 0 && n > 0 && len(data) >= n*dim
}

func dotProductBatchFlatGo(dst []float64, query, data []float32, n int) {
	dim := len(query)
	for i := 0; i < n; i++ {
		dst[i] = dotProductGo(query, data[i*dim:(i+1)*dim])
	}
}
