package quasirand

import "sync"

// Locked guards a Generator with a mutex so several goroutines can draw from
// one shared stream. Every goroutine still sees a distinct point on each call
// to Next; which goroutine gets which index depends on scheduling.
//
// When each worker only needs its own stream, one Generator per worker is cheaper.
type Locked[T Float] struct {
	mu sync.Mutex
	g  *Generator[T]
}

// NewLocked constructs a mutex-guarded generator in dim dimensions.
func NewLocked[T Float](dim int, seed T) (*Locked[T], error) {
	g, err := New(dim, seed)
	if err != nil {
		return nil, err
	}
	return &Locked[T]{g: g}, nil
}

// Lock wraps an existing generator. The caller must stop using g directly.
func Lock[T Float](g *Generator[T]) *Locked[T] {
	return &Locked[T]{g: g}
}

// Next advances the shared sequence and returns the new point.
func (l *Locked[T]) Next() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Next()
}

// NextInto advances the shared sequence and writes the point into dst.
func (l *Locked[T]) NextInto(dst []T) []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.NextInto(dst)
}

// At returns the n-th point. It locks because Reset may change the seed concurrently.
func (l *Locked[T]) At(n uint64) []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.At(n)
}

// Discard advances the shared sequence by n points.
func (l *Locked[T]) Discard(n uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.g.Discard(n)
}

// Reset restarts the shared sequence from a new seed.
func (l *Locked[T]) Reset(seed T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Reset(seed)
}

// Restart rewinds the shared sequence to its seed point.
func (l *Locked[T]) Restart() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.g.Restart()
}

// Index returns how many points have been drawn since the last reset.
func (l *Locked[T]) Index() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Index()
}

// Dim returns the number of coordinates per point. It never changes, so no lock is taken.
func (l *Locked[T]) Dim() int {
	return l.g.Dim()
}
