//go:build amd64 && cgo

package simd

/*
#cgo CFLAGS: -O3
#include <smmintrin.h>
#include <stddef.h>

#define KERNEL_TARGET __attribute__((target("sse4.1")))

KERNEL_TARGET static inline float horizontal_sum_m128_batch(__m128 v) {
	v = _mm_hadd_ps(v, v);
	v = _mm_hadd_ps(v, v);
	return _mm_cvtss_f32(v);
}

KERNEL_TARGET void DotProductBatchFlatPrefetchSSE4(const float* query, const float* data, size_t dim, int n, double* results) {
	for (int i = 0; i < n; i++) {
		const float* row = data + (size_t)i * dim;
		if (i + 1 < n) {
			_mm_prefetch((const char*)(row + dim), _MM_HINT_T0);
		}
		__m128 sum = _mm_setzero_ps();
		size_t j = 0;
		for (; j + 4 <= dim; j += 4) {
			__m128 vq = _mm_loadu_ps(query + j);
			__m128 vd = _mm_loadu_ps(row + j);
			sum = _mm_add_ps(sum, _mm_mul_ps(vq, vd));
		}
		float s = horizontal_sum_m128_batch(sum);
		for (; j < dim; j++) {
			s += query[j] * row[j];
		}
		results[i] = (double)s;
	}
}
*/
import "C"

import "unsafe"

func dotProductBatchFlatSSE4(dst []float64, query, data []float32, n int) {
	C.DotProductBatchFlatPrefetchSSE4(
		(*C.float)(unsafe.Pointer(&query[0])),
		(*C.float)(unsafe.Pointer(&data[0])),
		C.size_t(len(query)),
		C.int(n),
		(*C.double)(unsafe.Pointer(&dst[0])),
	)
}
