package quasirand

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPhi_KnownConstants verifies the first generalized golden ratios.
func TestPhi_KnownConstants(t *testing.T) {
	tests := []struct {
		name string
		dim  int
		want float64
	}{
		{"golden ratio", 1, (1 + math.Sqrt(5)) / 2},
		{"plastic number", 2, 1.324717957244746},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Phi[float64](tt.dim)
			assert.InDelta(t, tt.want, got, 1e-12)
			t.Logf("✓ phi(%d) = %.15f", tt.dim, got)
		})
	}
}

// TestPhi_Root verifies phi(d) solves x^(d+1) = x + 1.
func TestPhi_Root(t *testing.T) {
	for _, dim := range []int{1, 2, 3, 4, 5, 10, 100, 1000} {
		x := Phi[float64](dim)
		lhs := math.Pow(x, float64(dim+1))

		assert.InEpsilon(t, x+1, lhs, 1e-9, "dim=%d", dim)
		assert.Greater(t, x, 1.0)
		assert.Less(t, x, 2.0)
	}
}

// TestPhi_FixedIterationCount verifies the iteration converges well before the default count.
func TestPhi_FixedIterationCount(t *testing.T) {
	for _, dim := range []int{1, 2, 8} {
		assert.InDelta(t, phi[float64](dim, 200), phi[float64](dim, PhiIterations), 1e-13, "dim=%d", dim)
	}

	// Zero iterations leaves the starting value.
	assert.Equal(t, 1.0, phi[float64](3, 0))
}

// TestPhi_Float32 verifies single precision lands on the same constant.
func TestPhi_Float32(t *testing.T) {
	assert.InDelta(t, Phi[float64](2), float64(Phi[float32](2)), 1e-6)
}

// TestAlpha_Properties verifies alpha is strictly decreasing and inside (0, 1).
func TestAlpha_Properties(t *testing.T) {
	for _, dim := range []int{1, 2, 3, 10, 100} {
		alpha := alphas[float64](dim)

		for i, a := range alpha {
			assert.Greater(t, a, 0.0, "dim=%d i=%d", dim, i)
			assert.Less(t, a, 1.0, "dim=%d i=%d", dim, i)
			if i > 0 {
				assert.Less(t, a, alpha[i-1], "dim=%d i=%d", dim, i)
			}
		}
	}

	// The R2 step vector.
	assert.InDeltaSlice(t, []float64{0.7548776662466927, 0.5698402909980532}, alphas[float64](2), 1e-12)
}

// TestFrac verifies the wrap into [0, 1).
func TestFrac(t *testing.T) {
	assert.Equal(t, 0.0, frac(0.0))
	assert.Equal(t, 0.25, frac(3.25))
	assert.Equal(t, 0.0, frac(1.0))
	assert.Equal(t, float32(0.5), frac(float32(7.5)))
}
