package quasirand

// Array is the set of fixed-length point types a Fixed generator can produce.
// Dimensions one through eight are supported; zero-length arrays are excluded,
// so a zero-dimensional Fixed generator cannot be written down.
type Array[T Float] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T
}

// Fixed is the compile-time sized counterpart of Generator. Points are Go
// arrays returned by value, so stepping never allocates.
//
//	g := quasirand.DefaultFixed[[2]float64, float64]()
//	p := g.Next() // [2]float64
//
// Fixed holds the same state as Generator and produces bit-for-bit the same
// points for the same dimension, seed and precision.
type Fixed[A Array[T], T Float] struct {
	seed  T
	index uint64
	alpha A
	point A
}

// Common double-precision instantiations.
type (
	Fixed2D = Fixed[[2]float64, float64]
	Fixed3D = Fixed[[3]float64, float64]
	Fixed4D = Fixed[[4]float64, float64]
)

// NewFixed constructs a fixed-dimension generator using the given seed.
// The seed must be in the range [0.0, 1.0).
func NewFixed[A Array[T], T Float](seed T) (Fixed[A, T], error) {
	if err := checkSeed(seed); err != nil {
		return Fixed[A, T]{}, err
	}
	return newFixed[A](seed), nil
}

// DefaultFixed constructs a fixed-dimension generator seeded with DefaultSeed.
// It cannot fail.
func DefaultFixed[A Array[T], T Float]() Fixed[A, T] {
	return newFixed[A, T](DefaultSeed)
}

func newFixed[A Array[T], T Float](seed T) Fixed[A, T] {
	f := Fixed[A, T]{seed: seed}

	dim := len(f.alpha)
	phid := float64(Phi[T](dim))
	for i := 0; i < dim; i++ {
		f.alpha[i] = alphaAt[T](phid, i)
		f.point[i] = seed
	}

	return f
}

// Next advances the sequence and returns the new point.
func (f *Fixed[A, T]) Next() A {
	for i := 0; i < len(f.point); i++ {
		f.point[i] = frac(f.point[i] + f.alpha[i])
	}
	f.index++

	return f.point
}

// At returns the n-th point of the sequence. It doesn't affect the state of the generator.
func (f *Fixed[A, T]) At(n uint64) A {
	var p A

	steps := T(n)
	for i := 0; i < len(p); i++ {
		p[i] = frac(f.seed + f.alpha[i]*steps)
	}

	return p
}

// Discard advances the sequence by n points.
func (f *Fixed[A, T]) Discard(n uint64) {
	for ; n > 0; n-- {
		_ = f.Next()
	}
}

// Reset restarts the sequence using a new seed. The seed must be in the range [0.0, 1.0).
func (f *Fixed[A, T]) Reset(seed T) error {
	if err := checkSeed(seed); err != nil {
		return err
	}

	f.seed = seed
	f.Restart()
	return nil
}

// Restart rewinds the sequence to its seed point.
func (f *Fixed[A, T]) Restart() {
	for i := 0; i < len(f.point); i++ {
		f.point[i] = f.seed
	}
	f.index = 0
}

// Dim returns the generator's number of dimensions.
func (f *Fixed[A, T]) Dim() int {
	return len(f.point)
}

// Seed returns the current seed.
func (f *Fixed[A, T]) Seed() T {
	return f.seed
}

// Index returns how many points have been produced since construction or the last reset.
func (f *Fixed[A, T]) Index() uint64 {
	return f.index
}

// Alpha returns the per-dimension step sizes.
func (f *Fixed[A, T]) Alpha() A {
	return f.alpha
}
