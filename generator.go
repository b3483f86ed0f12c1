package quasirand

// Generator produces the points of the R_d low-discrepancy sequence in the
// unit hypercube [0,1)^d. The dimension is chosen at runtime and points are
// heap-allocated slices; use Fixed when the dimension is known at compile time.
//
// Each coordinate advances by its own constant step alpha[i] = 1/phi(d)^(i+1)
// and wraps into [0,1):
//
//	x_n[i] = frac(seed + n * alpha[i])
//
// The state starts at the seed point, so the first call to Next returns the
// point at index 1 and At(0) is the seed point itself.
//
// A Generator is not safe for concurrent mutation. Use Locked to share one
// stream between goroutines, or give every goroutine its own Generator.
type Generator[T Float] struct {
	dim   int    // Number of coordinates in every point
	seed  T      // Offset added to every coordinate, in [0.0, 1.0)
	index uint64 // Points produced since construction or the last reset
	alpha []T    // Per-dimension step sizes (the sequence without the seed)
	point []T    // The last point produced by Next
}

// New constructs a generator in dim dimensions using the given seed.
// The seed must be in the range [0.0, 1.0).
func New[T Float](dim int, seed T) (*Generator[T], error) {
	if err := checkDim(dim); err != nil {
		return nil, err
	}
	if err := checkSeed(seed); err != nil {
		return nil, err
	}

	g := &Generator[T]{
		dim:   dim,
		seed:  seed,
		alpha: alphas[T](dim),
		point: make([]T, dim),
	}
	g.Restart()

	return g, nil
}

// NewDefault constructs a double-precision generator seeded with DefaultSeed.
func NewDefault(dim int) (*Generator[float64], error) {
	return New[float64](dim, DefaultSeed)
}

// step advances the state by one point in place.
func (g *Generator[T]) step() {
	for i, a := range g.alpha {
		g.point[i] = frac(g.point[i] + a)
	}
	g.index++
}

// Next advances the sequence and returns the new point.
// The returned slice is a copy owned by the caller.
func (g *Generator[T]) Next() []T {
	return g.NextInto(nil)
}

// NextInto is like Next but writes the point into dst, reusing its backing
// array when it has room for Dim coordinates. It returns the filled slice.
func (g *Generator[T]) NextInto(dst []T) []T {
	g.step()

	dst = fit(dst, g.dim)
	copy(dst, g.point)
	return dst
}

// At returns the n-th point of the sequence without changing the generator's state.
// It agrees with the result of the n-th call to Next after construction or reset.
func (g *Generator[T]) At(n uint64) []T {
	return g.AtInto(n, nil)
}

// AtInto is like At but writes the point into dst, reusing it when it has room.
func (g *Generator[T]) AtInto(n uint64, dst []T) []T {
	dst = fit(dst, g.dim)

	steps := T(n)
	for i, a := range g.alpha {
		dst[i] = frac(g.seed + a*steps)
	}

	return dst
}

// Discard advances the sequence by n points. It has the same effect as
// calling Next n times and ignoring the results.
func (g *Generator[T]) Discard(n uint64) {
	for ; n > 0; n-- {
		g.step()
	}
}

// Reset restarts the sequence using a new seed. The seed must be in the range
// [0.0, 1.0); on error the generator is left unchanged.
func (g *Generator[T]) Reset(seed T) error {
	if err := checkSeed(seed); err != nil {
		return err
	}

	g.seed = seed
	g.Restart()
	return nil
}

// Restart rewinds the sequence to its seed point.
func (g *Generator[T]) Restart() {
	for i := range g.point {
		g.point[i] = g.seed
	}
	g.index = 0
}

// Dim returns the number of coordinates of the generated points.
func (g *Generator[T]) Dim() int {
	return g.dim
}

// Seed returns the current seed.
func (g *Generator[T]) Seed() T {
	return g.seed
}

// Index returns how many points have been produced since construction or the
// last Reset/Restart. The last point returned by Next equals At(Index()).
func (g *Generator[T]) Index() uint64 {
	return g.index
}

// Alpha returns a copy of the per-dimension step sizes.
func (g *Generator[T]) Alpha() []T {
	alpha := make([]T, g.dim)
	copy(alpha, g.alpha)
	return alpha
}

// Clone returns an independent generator with the same seed, position and step sizes.
func (g *Generator[T]) Clone() *Generator[T] {
	c := &Generator[T]{
		dim:   g.dim,
		seed:  g.seed,
		index: g.index,
		alpha: g.alpha, // never written after construction
		point: make([]T, g.dim),
	}
	copy(c.point, g.point)
	return c
}

// fit returns dst resized to n, allocating only when its capacity is too small.
func fit[T Float](dst []T, n int) []T {
	if cap(dst) < n {
		return make([]T, n)
	}
	return dst[:n]
}
