package quasirand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFixed_MatchesGenerator verifies the array-backed variant reproduces the dynamic one bit for bit.
func TestFixed_MatchesGenerator(t *testing.T) {
	f, err := NewFixed[[3]float64, float64](0.2)
	require.NoError(t, err)
	g, err := New(3, 0.2)
	require.NoError(t, err)

	alpha := f.Alpha()
	assert.Equal(t, g.Alpha(), alpha[:])

	for i := 0; i < 300; i++ {
		p := f.Next()
		require.Equal(t, g.Next(), p[:], "step %d", i)
	}

	for _, n := range []uint64{0, 1, 14, 1000, 1 << 40} {
		p := f.At(n)
		assert.Equal(t, g.At(n), p[:], "n=%d", n)
	}
}

// TestFixed_Dimensions verifies Dim reports the array length for every supported size.
func TestFixed_Dimensions(t *testing.T) {
	f1 := DefaultFixed[[1]float64, float64]()
	f4 := DefaultFixed[[4]float64, float64]()
	f8 := DefaultFixed[[8]float32, float32]()

	assert.Equal(t, 1, f1.Dim())
	assert.Equal(t, 4, f4.Dim())
	assert.Equal(t, 8, f8.Dim())
	assert.Equal(t, DefaultSeed, f4.Seed())
}

// TestFixed_GeneratedValues mirrors the canonical stepping scenario on the fixed variant.
func TestFixed_GeneratedValues(t *testing.T) {
	var f Fixed2D = DefaultFixed[[2]float64, float64]()
	tol := DefaultAssertionConfig().Tolerance

	f.Discard(13)
	val1, val2 := f.Next(), f.At(14)
	AssertPointsClose(t, val2[:], val1[:], tol)

	f.Discard(1)
	val1, val2 = f.Next(), f.At(16)
	AssertPointsClose(t, val2[:], val1[:], tol)

	f.Discard(3)
	val1, val2 = f.Next(), f.At(20)
	AssertPointsClose(t, val2[:], val1[:], tol)

	assert.Equal(t, uint64(20), f.Index())
}

// TestFixed_ReturnsCopies verifies points are values, not views of the state.
func TestFixed_ReturnsCopies(t *testing.T) {
	f := DefaultFixed[[3]float64, float64]()

	p := f.Next()
	p[0] = 42

	q := f.At(1)
	assert.NotEqual(t, 42.0, q[0])
	AssertUnitCube(t, q[:])
}

// TestFixed_Seeding verifies seed validation and Reset semantics.
func TestFixed_Seeding(t *testing.T) {
	_, err := NewFixed[[2]float64, float64](1.3)
	assert.ErrorIs(t, err, ErrInvalidSeed)

	_, err = NewFixed[[2]float32, float32](-0.5)
	assert.ErrorIs(t, err, ErrInvalidSeed)

	f, err := NewFixed[[2]float64, float64](0.7)
	require.NoError(t, err)
	f.Discard(99)

	assert.ErrorIs(t, f.Reset(-1.0), ErrInvalidSeed)
	assert.Equal(t, 0.7, f.Seed())
	assert.Equal(t, uint64(99), f.Index(), "failed Reset must not rewind")

	require.NoError(t, f.Reset(0.1))
	assert.Equal(t, [2]float64{0.1, 0.1}, f.At(0))

	first := f.Next()
	f.Discard(10)
	f.Restart()
	assert.Equal(t, first, f.Next())
}

func BenchmarkFixed_Next(b *testing.B) {
	f := DefaultFixed[[8]float64, float64]()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = f.Next()
	}
}
