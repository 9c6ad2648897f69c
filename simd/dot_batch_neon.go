//go:build arm64 && cgo

package simd

/*
#cgo CFLAGS: -O3
#include <arm_neon.h>
#include <stddef.h>

void DotProductBatchFlatPrefetchNEON(const float* query, const float* data, size_t dim, int n, double* results) {
	for (int i = 0; i < n; i++) {
		const float* row = data + (size_t)i * dim;
		if (i + 1 < n) {
			__builtin_prefetch(row + dim);
		}
		float32x4_t sum = vdupq_n_f32(0.0f);
		size_t j = 0;
		for (; j + 4 <= dim; j += 4) {
			float32x4_t vq = vld1q_f32(query + j);
			float32x4_t vd = vld1q_f32(row + j);
			sum = vfmaq_f32(sum, vq, vd);
		}
		float s = vaddvq_f32(sum);
		for (; j < dim; j++) {
			s += query[j] * row[j];
		}
		results[i] = (double)s;
	}
}
*/
import "C"

import "unsafe"

func dotProductBatchFlatNEON(dst []float64, query, data []float32, n int) {
	C.DotProductBatchFlatPrefetchNEON(
		(*C.float)(unsafe.Pointer(&query[0])),
		(*C.float)(unsafe.Pointer(&data[0])),
		C.size_t(len(query)),
		C.int(n),
		(*C.double)(unsafe.Pointer(&dst[0])),
	)
}
