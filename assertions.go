package quasirand

import (
	"fmt"
	"math"
	"testing"
)

// AssertionConfig contains tolerances for sequence properties.
type AssertionConfig struct {
	// Maximum wrap-aware distance between coordinates that should agree
	Tolerance float64

	// Number of steps walked by AssertConsistent
	Steps uint64
}

// DefaultAssertionConfig returns tolerances suitable for double precision.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Tolerance: 1e-9,
		Steps:     1000,
	}
}

// Float32AssertionConfig returns tolerances suitable for single precision.
func Float32AssertionConfig() AssertionConfig {
	return AssertionConfig{
		Tolerance: 1e-4,
		Steps:     100,
	}
}

// torusDistance is the distance between two coordinates on the unit circle.
// 0.9999999 and 0.0000001 are close neighbours after wrapping.
func torusDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 0.5 {
		d = 1 - d
	}
	return d
}

// AssertUnitCube verifies every coordinate of point lies in [0, 1).
func AssertUnitCube[T Float](t *testing.T, point []T) {
	t.Helper()

	for i, x := range point {
		if !(0 <= x && x < 1) {
			t.Errorf("Coordinate %d = %v outside [0, 1)", i, x)
		}
	}
}

// AssertPointsClose verifies two points have the same dimension and agree
// coordinate by coordinate within tol, measured around the unit circle.
func AssertPointsClose[T Float](t *testing.T, want, got []T, tol float64) {
	t.Helper()

	if len(want) != len(got) {
		t.Errorf("Dimension mismatch: want %d coordinates, got %d", len(want), len(got))
		return
	}

	var failures []string
	for i := range want {
		if d := torusDistance(float64(want[i]), float64(got[i])); d > tol {
			failures = append(failures, fmt.Sprintf(
				"  [%d]: want %v, got %v (distance %.3g > %.3g)",
				i, want[i], got[i], d, tol))
		}
	}

	if len(failures) > 0 {
		t.Errorf("Points differ:\n%s", failures)
	}
}

// AssertConsistent walks g forward cfg.Steps times and checks every point
// returned by Next against direct evaluation with At. g is advanced.
//
// Mathematical property:
//
//	Next^k(g) = At(k) for all k ≤ Steps
func AssertConsistent[T Float](t *testing.T, g *Generator[T], cfg AssertionConfig) {
	t.Helper()

	start := g.Index()
	point := make([]T, g.Dim())
	for k := uint64(1); k <= cfg.Steps; k++ {
		point = g.NextInto(point)
		AssertUnitCube(t, point)
		AssertPointsClose(t, g.At(start+k), point, cfg.Tolerance)

		if t.Failed() {
			t.Errorf("Step/At disagreement first seen at index %d", start+k)
			return
		}
	}

	t.Logf("✓ Next and At agree for %d steps in %d dimensions (tolerance %.0e)",
		cfg.Steps, g.Dim(), cfg.Tolerance)
}
