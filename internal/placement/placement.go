// Package placement scatters sites over the unit square using a quasi-random
// sequence for candidate positions and a simplex-noise density field to decide
// which candidates survive.
//
// Candidates come from a 2-D quasirand.Generator, so they cover the square
// evenly instead of clumping; the noise field then carves that even cover into
// natural-looking clusters. The same generator seed and noise seed always give
// the same sites.
package placement

import (
	"errors"
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/alexshd/quasirand"
)

// ErrDimension is returned when the candidate generator is not two-dimensional.
var ErrDimension = errors.New("placement: generator must be 2-dimensional")

// Config holds placement parameters.
type Config struct {
	Count         int     // Sites to place
	MaxCandidates int     // Give up after drawing this many candidates
	Threshold     float64 // Minimum density (0.0–1.0) for a candidate to be accepted
	MinDistance   float64 // Minimum distance between accepted sites (0 = no spacing rule)
	NoiseSeed     int64   // Seed of the density field
	Frequency     float64 // Base noise frequency across the unit square
	Octaves       int     // Noise layers summed into the density
	Persistence   float64 // Amplitude falloff per octave
}

// DefaultConfig returns a reasonable starting configuration.
func DefaultConfig() Config {
	return Config{
		Count:         64,
		MaxCandidates: 4096,
		Threshold:     0.5,
		MinDistance:   0,
		NoiseSeed:     42,
		Frequency:     4,
		Octaves:       3,
		Persistence:   0.5,
	}
}

func (c Config) validate() error {
	if c.Count < 0 {
		return fmt.Errorf("placement: count must not be negative, got %d", c.Count)
	}
	if c.MaxCandidates < c.Count {
		return fmt.Errorf("placement: max candidates (%d) cannot be below count (%d)", c.MaxCandidates, c.Count)
	}
	if c.Octaves < 1 {
		return fmt.Errorf("placement: octaves must be at least 1, got %d", c.Octaves)
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("placement: threshold must be in [0, 1], got %v", c.Threshold)
	}
	return nil
}

// Site is an accepted placement.
type Site struct {
	X, Y    float64
	Density float64 // Field value at the site
	Index   uint64  // Sequence index of the candidate; gen.At(Index) reproduces X, Y
}

// Field is a normalised density over the unit square.
type Field struct {
	noise       opensimplex.Noise
	frequency   float64
	octaves     int
	persistence float64
}

// NewField builds the density field described by cfg.
func NewField(cfg Config) *Field {
	return &Field{
		noise:       opensimplex.NewNormalized(cfg.NoiseSeed),
		frequency:   cfg.Frequency,
		octaves:     cfg.Octaves,
		persistence: cfg.Persistence,
	}
}

// Density returns the field value at (x, y), in [0, 1].
func (f *Field) Density(x, y float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	frequency := f.frequency

	for i := 0; i < f.octaves; i++ {
		total += f.noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= f.persistence
		frequency *= 2
	}

	return total / maxVal
}

// Scatter draws candidates from gen and keeps those whose density reaches
// cfg.Threshold and that respect cfg.MinDistance from earlier sites. It stops
// once cfg.Count sites are placed or cfg.MaxCandidates candidates were drawn,
// so fewer than Count sites may come back.
//
// gen is advanced by the number of candidates drawn.
func Scatter(gen *quasirand.Generator[float64], cfg Config) ([]Site, error) {
	if gen.Dim() != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrDimension, gen.Dim())
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	field := NewField(cfg)
	sites := make([]Site, 0, cfg.Count)
	point := make([]float64, 2)

	for drawn := 0; drawn < cfg.MaxCandidates && len(sites) < cfg.Count; drawn++ {
		point = gen.NextInto(point)
		x, y := point[0], point[1]

		density := field.Density(x, y)
		if density < cfg.Threshold {
			continue
		}
		if tooClose(x, y, sites, cfg.MinDistance) {
			continue
		}

		sites = append(sites, Site{
			X:       x,
			Y:       y,
			Density: density,
			Index:   gen.Index(),
		})
	}

	return sites, nil
}

func tooClose(x, y float64, existing []Site, minDist float64) bool {
	if minDist <= 0 {
		return false
	}
	for _, s := range existing {
		if math.Hypot(x-s.X, y-s.Y) < minDist {
			return true
		}
	}
	return false
}
