package linalg

import (
	"math/rand"

	"github.com/ic-timon/la-bench/arena"
	"github.com/ic-timon/la-bench/gen"
	"github.com/ic-timon/la-bench/simd"
)

// Vector is a float32 vector over an arena buffer.
type Vector struct {
	buf arena.Buffer
	n   int
}

// Len returns the number of elements.
func (v *Vector) Len() int { return v.n }

// Data returns the elements; invalid after Close.
func (v *Vector) Data() []float32 { return v.buf.Data() }

// Close releases the buffer.
func (v *Vector) Close() error { return v.buf.Close() }

// Matrix is a square row-major float32 matrix over an arena buffer.
type Matrix struct {
	buf arena.Buffer
	n   int
}

// Dim returns the number of rows (and columns).
func (m *Matrix) Dim() int { return m.n }

// Data returns the row-major elements; invalid after Close.
func (m *Matrix) Data() []float32 { return m.buf.Data() }

// Close releases the buffer.
func (m *Matrix) Close() error { return m.buf.Close() }

// SIMD benchmarks the native kernels in package simd. Operand memory comes
// from the configured arena kind; allocation failures panic.
type SIMD struct {
	alloc arena.Kind
	seed  int64
	rng   *rand.Rand
}

// NewSIMD returns a SIMD backend allocating from kind with operands drawn from seed.
func NewSIMD(kind arena.Kind, seed int64) SIMD {
	return SIMD{alloc: kind, seed: seed, rng: gen.NewRand(seed)}
}

func (SIMD) Name() string { return NameSIMD }

// Reseed rewinds the operand stream to the construction seed.
func (s SIMD) Reseed() { s.rng.Seed(s.seed) }

// Alloc reports the arena kind operands are allocated from.
func (s SIMD) Alloc() arena.Kind { return s.alloc }

func (s SIMD) NewVector(n int) *Vector {
	v := &Vector{buf: s.mustAlloc(n), n: n}
	gen.Random32(v.Data(), s.rng)
	return v
}

func (s SIMD) NewMatrix(n int) *Matrix {
	m := &Matrix{buf: s.mustAlloc(n * n), n: n}
	gen.Random32(m.Data(), s.rng)
	return m
}

func (SIMD) Dot(a, b *Vector) float64 {
	return simd.DotProduct(a.Data(), b.Data())
}

func (s SIMD) MulVec(m *Matrix, v *Vector) *Vector {
	out := &Vector{buf: s.mustAlloc(m.n), n: m.n}
	if v.n != m.n || !simd.MatVec(out.Data(), m.Data(), v.Data(), m.n) {
		out.Close()
		panic("linalg: matrix-vector shape mismatch")
	}
	return out
}

func (s SIMD) Mul(a, b *Matrix) *Matrix {
	out := &Matrix{buf: s.mustAlloc(a.n * a.n), n: a.n}
	if a.n != b.n || !simd.MatMul(out.Data(), a.Data(), b.Data(), a.n) {
		out.Close()
		panic("linalg: matrix-matrix shape mismatch")
	}
	return out
}

func (s SIMD) mustAlloc(n int) arena.Buffer {
	buf, err := arena.Alloc(s.alloc, n)
	if err != nil {
		panic(err)
	}
	return buf
}
