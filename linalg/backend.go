// Package linalg defines the capability set a benchmarked linear-algebra
// library must expose, and implements it for gonum (float64 mat), gonum
// blas32 (float32 BLAS) and the native simd kernels.
//
// Operand types are backend specific. Operands that own releasable memory
// implement io.Closer and must be closed by the caller.
package linalg

import (
	"errors"
	"fmt"
)

// Backend names accepted by the bench command.
const (
	NameGonum  = "gonum"
	NameBLAS32 = "blas32"
	NameSIMD   = "simd"
)

// ErrUnknownBackend is returned when a backend name is not one of Names().
var ErrUnknownBackend = errors.New("linalg: unknown backend")

// Backend constructs square operands of size n and multiplies them.
// V is the vector type, M the n×n matrix type.
type Backend[V, M any] interface {
	Name() string
	NewVector(n int) V
	NewMatrix(n int) M
	// Dot returns the inner product of two vectors of equal length.
	Dot(a, b V) float64
	// MulVec returns m·v.
	MulVec(m M, v V) V
	// Mul returns a·b.
	Mul(a, b M) M
}

// Reseeder is implemented by backends with random operands. Reseed restores
// the initial random stream so repeated runs draw identical operands.
type Reseeder interface {
	Reseed()
}

// Names lists the available backends in reporting order.
func Names() []string {
	return []string{NameGonum, NameBLAS32, NameSIMD}
}

// CheckName returns ErrUnknownBackend for names outside Names().
func CheckName(name string) error {
	for _, n := range Names() {
		if n == name {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}
