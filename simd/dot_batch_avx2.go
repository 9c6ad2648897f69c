//go:build amd64 && cgo

package simd

/*
#cgo CFLAGS: -O3
#include <immintrin.h>
#include <stddef.h>

#define KERNEL_TARGET __attribute__((target("avx2,fma")))

KERNEL_TARGET static inline float horizontal_sum_m256_batch(__m256 v) {
	__m128 hi = _mm256_extractf128_ps(v, 1);
	__m128 lo = _mm256_extractf128_ps(v, 0);
	__m128 sum4 = _mm_add_ps(hi, lo);
	sum4 = _mm_hadd_ps(sum4, sum4);
	sum4 = _mm_hadd_ps(sum4, sum4);
	return _mm_cvtss_f32(sum4);
}

KERNEL_TARGET void DotProductBatchFlatPrefetchAVX2(const float* query, const float* data, size_t dim, int n, double* results) {
	for (int i = 0; i < n; i++) {
		const float* row = data + (size_t)i * dim;
		if (i + 1 < n) {
			_mm_prefetch((const char*)(row + dim), _MM_HINT_T0);
		}
		__m256 sum = _mm256_setzero_ps();
		size_t j = 0;
		for (; j + 8 <= dim; j += 8) {
			__m256 vq = _mm256_loadu_ps(query + j);
			__m256 vd = _mm256_loadu_ps(row + j);
			sum = _mm256_fmadd_ps(vq, vd, sum);
		}
		float s = horizontal_sum_m256_batch(sum);
		for (; j < dim; j++) {
			s += query[j] * row[j];
		}
		results[i] = (double)s;
	}
}
*/
import "C"

import "unsafe"

func dotProductBatchFlatAVX2(dst []float64, query, data []float32, n int) {
	C.DotProductBatchFlatPrefetchAVX2(
		(*C.float)(unsafe.Pointer(&query[0])),
		(*C.float)(unsafe.Pointer(&data[0])),
		C.size_t(len(query)),
		C.int(n),
		(*C.double)(unsafe.Pointer(&dst[0])),
	)
}
