//go:build amd64 && cgo

package simd

/*
#cgo CFLAGS: -O3
#include <immintrin.h>
#include <stddef.h>

#define KERNEL_TARGET __attribute__((target("avx512f,avx512dq")))

KERNEL_TARGET static inline float horizontal_sum_m512(__m512 v) {
	__m256 hi = _mm512_extractf32x8_ps(v, 1);
	__m256 lo = _mm512_extractf32x8_ps(v, 0);
	__m256 sum8 = _mm256_add_ps(hi, lo);
	__m128 hi4 = _mm256_extractf128_ps(sum8, 1);
	__m128 lo4 = _mm256_extractf128_ps(sum8, 0);
	__m128 sum4 = _mm_add_ps(hi4, lo4);
	sum4 = _mm_hadd_ps(sum4, sum4);
	sum4 = _mm_hadd_ps(sum4, sum4);
	return _mm_cvtss_f32(sum4);
}

// Rows of data are dim floats apart; the row two ahead is prefetched.
KERNEL_TARGET void DotProductBatchFlatPrefetchAVX512(const float* query, const float* data, size_t dim, int n, double* results) {
	for (int i = 0; i < n; i++) {
		const float* row = data + (size_t)i * dim;
		if (i + 2 < n) {
			_mm_prefetch((const char*)(row + 2 * dim), _MM_HINT_T0);
		}
		__m512 sum = _mm512_setzero_ps();
		size_t j = 0;
		for (; j + 16 <= dim; j += 16) {
			__m512 vq = _mm512_loadu_ps(query + j);
			__m512 vd = _mm512_loadu_ps(row + j);
			sum = _mm512_fmadd_ps(vq, vd, sum);
		}
		float s = horizontal_sum_m512(sum);
		for (; j < dim; j++) {
			s += query[j] * row[j];
		}
		results[i] = (double)s;
	}
}
*/
import "C"

import "unsafe"

func dotProductBatchFlatAVX512(dst []float64, query, data []float32, n int) {
	C.DotProductBatchFlatPrefetchAVX512(
		(*C.float)(unsafe.Pointer(&query[0])),
		(*C.float)(unsafe.Pointer(&data[0])),
		C.size_t(len(query)),
		C.int(n),
		(*C.double)(unsafe.Pointer(&dst[0])),
	)
}
