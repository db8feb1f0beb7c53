// Package random provides port.RandomSource implementations.
package random

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/bnema/colorline/internal/application/port"
)

var _ port.RandomSource = (*Source)(nil)

// Source is a goroutine-safe uniform source in [0,1).
type Source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a source seeded from the clock.
func New() *Source {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

// NewSeeded returns a reproducible source; equal seeds yield equal draws.
func NewSeeded(seed uint64) *Source {
	return &Source{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 implements port.RandomSource.
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}
