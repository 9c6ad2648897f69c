package linalg

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/ic-timon/la-bench/gen"
)

// Gonum benchmarks gonum's float64 mat package with pseudo-random operands.
type Gonum struct {
	seed int64
	rng  *rand.Rand
}

// NewGonum returns a gonum backend whose operands are drawn from seed.
func NewGonum(seed int64) Gonum {
	return Gonum{seed: seed, rng: gen.NewRand(seed)}
}

func (Gonum) Name() string { return NameGonum }

// Reseed rewinds the operand stream to the construction seed.
func (g Gonum) Reseed() { g.rng.Seed(g.seed) }

func (g Gonum) NewVector(n int) *mat.VecDense {
	data := make([]float64, n)
	gen.Random64(data, g.rng)
	return mat.NewVecDense(n, data)
}

func (g Gonum) NewMatrix(n int) *mat.Dense {
	data := make([]float64, n*n)
	gen.Random64(data, g.rng)
	return mat.NewDense(n, n, data)
}

func (Gonum) Dot(a, b *mat.VecDense) float64 {
	return mat.Dot(a, b)
}

func (Gonum) MulVec(m *mat.Dense, v *mat.VecDense) *mat.VecDense {
	var r mat.VecDense
	r.MulVec(m, v)
	return &r
}

func (Gonum) Mul(a, b *mat.Dense) *mat.Dense {
	var r mat.Dense
	r.Mul(a, b)
	return &r
}
