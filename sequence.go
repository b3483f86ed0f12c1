package quasirand

// Sequence is the capability set shared by the runtime-sized Generator
// (P = []T) and the compile-time sized Fixed (P = an array of T).
type Sequence[P any, T Float] interface {
	// Next advances the sequence and returns the new point.
	Next() P
	// At returns the n-th point without changing the state.
	At(n uint64) P
	// Discard advances the sequence by n points.
	Discard(n uint64)
	// Reset restarts the sequence from a new seed in [0.0, 1.0).
	Reset(seed T) error
	// Restart rewinds the sequence to its current seed.
	Restart()
	// Dim returns the number of coordinates per point.
	Dim() int
}

// PointSource is anything that can write successive points into a caller buffer.
type PointSource[T Float] interface {
	NextInto(dst []T) []T
	Dim() int
}

var (
	_ Sequence[[]float64, float64]  = (*Generator[float64])(nil)
	_ Sequence[[]float32, float32]  = (*Generator[float32])(nil)
	_ Sequence[[3]float64, float64] = (*Fixed[[3]float64, float64])(nil)
	_ Sequence[[2]float32, float32] = (*Fixed[[2]float32, float32])(nil)
	_ Sequence[[]float64, float64]  = (*Locked[float64])(nil)
	_ PointSource[float64]          = (*Generator[float64])(nil)
	_ PointSource[float64]          = (*Locked[float64])(nil)
)
