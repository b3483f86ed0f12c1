// Package quasirand generates low-discrepancy (quasi-random) point sequences.
//
// # Overview
//
// quasirand produces successive points in the unit hypercube [0,1)^d whose
// coordinates are spread far more evenly than uniform pseudo-random samples.
// It implements the additive recurrence driven by the generalized golden ratio
// (the R_d sequence, Martin Roberts 2018, "The Unreasonable Effectiveness of
// Quasirandom Sequences").
//
// Typical consumers: Monte Carlo integration, sampling grids, procedural placement.
//
// # The Recurrence
//
// For dimension d, phi(d) is the positive root of
//
//	x^(d+1) = x + 1
//
// phi(1) ≈ 1.6180 is the golden ratio, phi(2) ≈ 1.3247 the plastic number.
// Every coordinate advances by its own constant step and wraps into [0,1):
//
//	alpha[i] = 1 / phi(d)^(i+1)
//	x_n[i]   = frac(seed + n · alpha[i])
//
// phi(d) is approximated once per generator with a fixed number of fixed-point
// steps (PhiIterations), so construction is constant-time and deterministic.
//
// # Quick Start
//
//	g, err := quasirand.New(2, 0.5) // 2-D, seed 0.5, float64
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for i := 0; i < 100; i++ {
//	    p := g.Next() // p[0], p[1] in [0,1)
//	    plot(p)
//	}
//
//	p500 := g.At(500) // direct evaluation, does not move the generator
//
// The state starts at the seed point: the first Next returns At(1), and At(0)
// is the seed point. After k calls to Next the last point equals At(k).
//
// # Two Shapes, One Capability Set
//
// Generator sizes the dimension at runtime and returns slices; Fixed takes the
// dimension from an array type at compile time and returns arrays by value:
//
//	g, _ := quasirand.New[float32](16, 0.5)        // runtime-sized, single precision
//	f := quasirand.DefaultFixed[[3]float64, float64]() // [3]float64 points, no allocation
//
// Both satisfy Sequence: Next, At, Discard, Reset, Restart, Dim.
//
// # Seeds and Errors
//
// Seeds must be in [0.0, 1.0). Construction and Reset fail with
// ErrInvalidSeed otherwise, and construction with fewer than one dimension
// fails with ErrInvalidDimension. Nothing else can fail.
//
// # Concurrency
//
// A Generator is plain mutable state owned by one goroutine. At is read-only
// and safe to call concurrently as long as nobody mutates the generator at the
// same time. Share one stream with Locked, or give every worker its own Generator.
//
// # Integration
//
// Integrate averages a function over the next n points of a sequence:
//
//	est, err := quasirand.Integrate[float64](ctx, g, f, 1<<16)
//
// # Testing
//
// Use assertions to validate sequence properties in your own tests:
//
//	func TestMySampler(t *testing.T) {
//	    g, _ := quasirand.New(3, 0.5)
//	    quasirand.AssertConsistent(t, g, quasirand.DefaultAssertionConfig())
//	}
package quasirand
