package simd

import (
	"fmt"
	"math/rand"
	"runtime"
	"testing"

	"golang.org/x/sys/cpu"
)

const benchDim = 1024

func initBenchVectors() (va, vb []float32) {
	return randomSlice(benchDim, 42), randomSlice(benchDim, 43)
}

func randomSlice(n int, seed int64) []float32 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float32, n)
	for i := range out {
		out[i] = rng.Float32()*2 - 1
	}
	return out
}

func BenchmarkDotProduct_Go(b *testing.B) {
	va, vb := initBenchVectors()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dotProductGo(va, vb)
	}
}

func BenchmarkDotProduct_AVX512(b *testing.B) {
	va, vb := initBenchVectors()
	if !canUseAVX512() {
		b.Skip("AVX-512 not available")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dotProductAVX512(va, vb)
	}
}

func BenchmarkDotProduct_Auto(b *testing.B) {
	va, vb := initBenchVectors()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = DotProduct(va, vb)
	}
}

func BenchmarkMatVec(b *testing.B) {
	for _, n := range []int{64, 256, 1024} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randomSlice(n*n, 1)
			v := randomSlice(n, 2)
			dst := make([]float32, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				MatVec(dst, m, v, n)
			}
		})
	}
}

func BenchmarkMatMul(b *testing.B) {
	for _, n := range []int{32, 128, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randomSlice(n*n, 1)
			y := randomSlice(n*n, 2)
			dst := make([]float32, n*n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				MatMul(dst, x, y, n)
			}
		})
	}
}

func canUseAVX512() bool {
	return runtime.GOARCH == "amd64" && cpu.X86.HasAVX512F && cpu.X86.HasAVX512DQ
}
