package linalg

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/ic-timon/la-bench/gen"
)

// DefaultFill is the constant operand value used by the BLAS32 backend.
const DefaultFill float32 = 2

// BLAS32 benchmarks gonum's float32 BLAS over row-major operands filled with
// a constant value.
type BLAS32 struct {
	Fill float32
}

// NewBLAS32 returns a BLAS32 backend filling operands with DefaultFill.
func NewBLAS32() BLAS32 {
	return BLAS32{Fill: DefaultFill}
}

func (BLAS32) Name() string { return NameBLAS32 }

func (b BLAS32) NewVector(n int) blas32.Vector {
	data := make([]float32, n)
	gen.Constant32(data, b.Fill)
	return blas32.Vector{N: n, Inc: 1, Data: data}
}

func (b BLAS32) NewMatrix(n int) blas32.General {
	data := make([]float32, n*n)
	gen.Constant32(data, b.Fill)
	return blas32.General{Rows: n, Cols: n, Stride: n, Data: data}
}

func (BLAS32) Dot(x, y blas32.Vector) float64 {
	return float64(blas32.Dot(x, y))
}

func (BLAS32) MulVec(m blas32.General, v blas32.Vector) blas32.Vector {
	y := blas32.Vector{N: m.Rows, Inc: 1, Data: make([]float32, m.Rows)}
	blas32.Gemv(blas.NoTrans, 1, m, v, 0, y)
	return y
}

func (BLAS32) Mul(a, b blas32.General) blas32.General {
	c := blas32.General{Rows: a.Rows, Cols: b.Cols, Stride: b.Cols, Data: make([]float32, a.Rows*b.Cols)}
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1, a, b, 0, c)
	return c
}
