package quasirand

import (
	"context"
	"fmt"
)

// integrateCheckEvery is how many samples Integrate draws between context checks.
const integrateCheckEvery = 1024

// Integrand is a real-valued function over the unit hypercube.
// The point slice is reused between calls and must not be retained.
type Integrand[T Float] func(point []T) T

// Estimate is the result of a quasi-Monte Carlo integration.
type Estimate[T Float] struct {
	Mean    T   // Average of f over the drawn points (the integral estimate)
	Samples int // Number of points actually drawn
}

// Integrate estimates the integral of f over [0,1)^d by averaging it over the
// next n points of src. Low-discrepancy points make the error shrink close to
// O(1/n) for smooth integrands, against O(1/sqrt(n)) for pseudo-random points.
//
// The sum is accumulated in float64 with Kahan compensation regardless of T.
// ctx is checked every integrateCheckEvery samples; when it is done the
// partial estimate is returned together with the wrapped context error.
//
// Example:
//
//	g, _ := quasirand.New(2, 0.5)
//	est, err := quasirand.Integrate[float64](ctx, g, func(p []float64) float64 {
//	    return p[0] * p[1]
//	}, 1<<16)
//	// est.Mean ≈ 0.25
func Integrate[T Float](ctx context.Context, src PointSource[T], f Integrand[T], n int) (Estimate[T], error) {
	if n <= 0 {
		return Estimate[T]{}, fmt.Errorf("%w: got %d", ErrNoSamples, n)
	}

	var sum, compensation float64
	point := make([]T, src.Dim())

	for i := 0; i < n; i++ {
		if i%integrateCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return partialEstimate[T](sum, i), fmt.Errorf("integrate stopped after %d of %d samples: %w", i, n, err)
			}
		}

		point = src.NextInto(point)

		y := float64(f(point)) - compensation
		t := sum + y
		compensation = (t - sum) - y
		sum = t
	}

	return Estimate[T]{Mean: T(sum / float64(n)), Samples: n}, nil
}

func partialEstimate[T Float](sum float64, samples int) Estimate[T] {
	if samples == 0 {
		return Estimate[T]{}
	}
	return Estimate[T]{Mean: T(sum / float64(samples)), Samples: samples}
}
