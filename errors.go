package quasirand

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by constructors and Reset. Test with errors.Is.
var (
	// ErrInvalidDimension is returned when a generator is asked for fewer than one dimension.
	ErrInvalidDimension = errors.New("quasirand: the dimension of the generator must be at least 1")

	// ErrInvalidSeed is returned when a seed is outside [0.0, 1.0) or NaN.
	ErrInvalidSeed = errors.New("quasirand: the seed must be in the range [0.0, 1.0)")

	// ErrNoSamples is returned by Integrate when asked for a non-positive sample count.
	ErrNoSamples = errors.New("quasirand: sample count must be positive")
)

func checkDim(dim int) error {
	if dim < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDimension, dim)
	}
	return nil
}

// checkSeed enforces 0 <= seed < 1. The negated form also rejects NaN.
func checkSeed[T Float](seed T) error {
	if !(0 <= seed && seed < 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidSeed, seed)
	}
	return nil
}
