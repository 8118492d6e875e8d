// Package sampler draws weighted-random positions from a candidate list.
package sampler

import (
	"errors"
	"math/rand/v2"
	"sort"
)

var (
	// ErrEmptyCandidates is returned when asked to draw from zero candidates.
	ErrEmptyCandidates = errors.New("sampler: empty candidate set")
	// ErrCandidatesExhausted is returned when every candidate is excluded.
	ErrCandidatesExhausted = errors.New("sampler: every candidate is excluded")
)

// Exclusion reports positions that must not be drawn.
type Exclusion interface {
	Contains(position int) bool
}

// Set is a plain Exclusion backed by a map.
type Set map[int]struct{}

func (s Set) Contains(position int) bool {
	_, ok := s[position]
	return ok
}

func (s Set) Add(position int) {
	s[position] = struct{}{}
}

type Sampler struct {
	dist Distribution
	rng  *rand.Rand
}

type Option func(*Sampler)

// WithRand makes the sampler draw from rng, typically a seeded source in tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *Sampler) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func New(dist Distribution, opts ...Option) *Sampler {
	s := &Sampler{
		dist: dist,
		rng:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sampler) Distribution() Distribution { return s.dist }

// Select draws one position in [0, size) with probability proportional to its
// weight, never returning an excluded position. Excluded positions weigh zero.
func (s *Sampler) Select(size int, excluded Exclusion) (int, error) {
	if size <= 0 {
		return 0, ErrEmptyCandidates
	}
	if !s.dist.Valid() {
		return 0, ErrUnknownDistribution
	}
	weights := s.dist.Weights(size)

	cumulative := make([]float64, size)
	total := 0.0
	for i, w := range weights {
		if excluded != nil && excluded.Contains(i) {
			w = 0
		}
		total += w
		cumulative[i] = total
	}
	if total <= 0 {
		return 0, ErrCandidatesExhausted
	}

	target := s.rng.Float64() * total
	return sort.Search(size, func(i int) bool { return cumulative[i] > target }), nil
}
