package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/mat"

	"github.com/ic-timon/la-bench/arena"
)

var (
	_ Backend[*mat.VecDense, *mat.Dense]     = Gonum{}
	_ Backend[blas32.Vector, blas32.General] = BLAS32{}
	_ Backend[*Vector, *Matrix]              = SIMD{}
)

func TestNamesAndCheckName(t *testing.T) {
	assert.Equal(t, []string{"gonum", "blas32", "simd"}, Names())
	for _, n := range Names() {
		assert.NoError(t, CheckName(n))
	}
	assert.ErrorIs(t, CheckName("eigen"), ErrUnknownBackend)
}

func TestGonum(t *testing.T) {
	g := NewGonum(42)
	assert.Equal(t, NameGonum, g.Name())

	const n = 5
	a, b := g.NewVector(n), g.NewVector(n)
	require.Equal(t, n, a.Len())
	var want float64
	for i := 0; i < n; i++ {
		want += a.AtVec(i) * b.AtVec(i)
	}
	assert.InDelta(t, want, g.Dot(a, b), 1e-12)

	m := g.NewMatrix(n)
	r, c := m.Dims()
	require.Equal(t, n, r)
	require.Equal(t, n, c)

	mv := g.MulVec(m, a)
	require.Equal(t, n, mv.Len())
	for i := 0; i < n; i++ {
		assert.InDelta(t, mat.Dot(m.RowView(i), a), mv.AtVec(i), 1e-12)
	}

	mm := g.Mul(m, m)
	var ref mat.Dense
	ref.Mul(m, m)
	assert.True(t, mat.EqualApprox(&ref, mm, 1e-12))
}

func TestGonum_SeedDeterminism(t *testing.T) {
	a := NewGonum(7).NewVector(16)
	b := NewGonum(7).NewVector(16)
	assert.True(t, mat.Equal(a, b))
}

func TestGonum_ReseedRewinds(t *testing.T) {
	g := NewGonum(7)
	first := g.NewVector(16)
	assert.False(t, mat.Equal(first, g.NewVector(16)), "stream advances between draws")

	g.Reseed()
	assert.True(t, mat.Equal(first, g.NewVector(16)))
}

func TestSIMD_ReseedRewinds(t *testing.T) {
	s := NewSIMD(arena.Heap, 7)
	first := s.NewMatrix(8)
	defer first.Close()
	want := append([]float32(nil), first.Data()...)

	s.Reseed()
	again := s.NewMatrix(8)
	defer again.Close()
	assert.Equal(t, want, again.Data())
}

func TestBLAS32_ConstantOperands(t *testing.T) {
	b := NewBLAS32()
	assert.Equal(t, NameBLAS32, b.Name())

	for _, n := range []int{1, 4, 16} {
		v := b.NewVector(n)
		m := b.NewMatrix(n)

		// 2*2 summed n times.
		assert.Equal(t, float64(4*n), b.Dot(v, v))

		mv := b.MulVec(m, v)
		require.Equal(t, n, mv.N)
		for _, x := range mv.Data {
			assert.Equal(t, float32(4*n), x)
		}

		mm := b.Mul(m, m)
		require.Equal(t, n, mm.Rows)
		require.Equal(t, n, mm.Cols)
		for _, x := range mm.Data {
			assert.Equal(t, float32(4*n), x)
		}
	}
}

func TestSIMD_AllAllocKinds(t *testing.T) {
	for _, kind := range []arena.Kind{arena.Heap, arena.Offheap, arena.Mmap} {
		t.Run(kind.String(), func(t *testing.T) {
			s := NewSIMD(kind, 1)
			assert.Equal(t, NameSIMD, s.Name())
			assert.Equal(t, kind, s.Alloc())

			const n = 9
			a, b := s.NewVector(n), s.NewVector(n)
			defer a.Close()
			defer b.Close()
			require.Equal(t, n, a.Len())

			var want float64
			for i := 0; i < n; i++ {
				want += float64(a.Data()[i]) * float64(b.Data()[i])
			}
			assert.InDelta(t, want, s.Dot(a, b), 1e-4)

			m := s.NewMatrix(n)
			defer m.Close()
			require.Equal(t, n, m.Dim())

			mv := s.MulVec(m, a)
			defer mv.Close()
			for i := 0; i < n; i++ {
				var row float64
				for j := 0; j < n; j++ {
					row += float64(m.Data()[i*n+j]) * float64(a.Data()[j])
				}
				assert.InDelta(t, row, mv.Data()[i], 1e-4)
			}

			mm := s.Mul(m, m)
			defer mm.Close()
			require.Equal(t, n, mm.Dim())
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					var cell float64
					for k := 0; k < n; k++ {
						cell += float64(m.Data()[i*n+k]) * float64(m.Data()[k*n+j])
					}
					assert.InDelta(t, cell, mm.Data()[i*n+j], 1e-4)
				}
			}
		})
	}
}

func TestSIMD_ShapeMismatchPanics(t *testing.T) {
	s := NewSIMD(arena.Heap, 1)
	m := s.NewMatrix(4)
	v := s.NewVector(3)
	assert.Panics(t, func() { s.MulVec(m, v) })
	assert.Panics(t, func() { s.Mul(m, s.NewMatrix(2)) })
}

func TestSIMD_CloseReleases(t *testing.T) {
	s := NewSIMD(arena.Mmap, 1)
	v := s.NewVector(8)
	require.NoError(t, v.Close())
	assert.Nil(t, v.Data())
}
