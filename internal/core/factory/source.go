package factory

import (
	"math/rand/v2"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// NewSeededSource derives a deterministic PCG generator from a seed string.
// The same seed always yields the same spawn stream.
func NewSeededSource(seed string) *rand.Rand {
	hi := xxhash.Sum64String(seed)
	lo := xxhash.Sum64String(seed + "/lo")
	return rand.New(rand.NewPCG(hi, lo))
}

// LockedSource serializes draws from an underlying source.
type LockedSource struct {
	mu  sync.Mutex
	src Source
}

func NewLockedSource(src Source) *LockedSource {
	return &LockedSource{src: src}
}

func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Float64()
}

// SequenceSource replays a fixed list of values, wrapping around at the end.
type SequenceSource struct {
	values []float64
	next   int
}

func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
