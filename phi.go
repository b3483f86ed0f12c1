package quasirand

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of real types a generator can produce points in.
type Float interface {
	constraints.Float
}

// DefaultSeed is the offset used when the caller does not pick one.
const DefaultSeed = 0.5

// PhiIterations is the fixed number of fixed-point steps used to approximate phi(d).
// Thirty steps over-converge double precision for every practical dimension.
const PhiIterations = 30

// Phi approximates the generalized golden ratio in dim dimensions: the
// positive root of x^(dim+1) = x + 1. Phi(1) is the golden ratio and
// Phi(2) is the plastic number.
//
// dim must be at least 1.
func Phi[T Float](dim int) T {
	return phi[T](dim, PhiIterations)
}

// phi runs x_{k+1} = (1 + x_k)^(1/(dim+1)) from x_0 = 1 for a fixed number of
// iterations. A fixed count keeps construction constant-time and deterministic.
func phi[T Float](dim, iterations int) T {
	x := T(1)
	exponent := 1.0 / (float64(dim) + 1.0)

	for ; iterations > 0; iterations-- {
		x = T(math.Pow(1+float64(x), exponent))
	}

	return x
}

// alphaAt returns the step size of dimension i: 1 / phi^(i+1).
func alphaAt[T Float](phid float64, i int) T {
	return T(1.0 / math.Pow(phid, float64(i+1)))
}

// alphas builds the per-dimension step vector for a dim-dimensional sequence.
func alphas[T Float](dim int) []T {
	phid := float64(Phi[T](dim))

	alpha := make([]T, dim)
	for i := range alpha {
		alpha[i] = alphaAt[T](phid, i)
	}

	return alpha
}

// frac maps any non-negative real into [0, 1).
func frac[T Float](x T) T {
	return x - T(math.Floor(float64(x)))
}
