package core

import "math/rand"

// Source supplies uniform random values for jitter and size variation.
// Implementations are not required to be safe for concurrent use; the
// simulation is single-threaded by construction.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// seededSource wraps math/rand for production use.
type seededSource struct {
	r *rand.Rand
}

// NewSource creates a deterministic random source from a seed.
func NewSource(seed int64) Source {
	return &seededSource{r: rand.New(rand.NewSource(seed))}
}

func (s *seededSource) Float64() float64 {
	return s.r.Float64()
}

// Fixed is a Source that always returns the same value. Test helper.
type Fixed float64

// Float64 returns the fixed value.
func (f Fixed) Float64() float64 {
	return float64(f)
}
