// Package idgen produces identifiers for sections, visualizations,
// dimensions and every other entity the builder creates.
package idgen

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Generator produces a fresh identifier on every call.
type Generator interface {
	New() string
}

type uuidGenerator struct{}

func (uuidGenerator) New() string {
	return uuid.NewString()
}

var (
	mu      sync.RWMutex
	current Generator = uuidGenerator{}
)

// New returns a fresh id from the installed generator.
func New() string {
	mu.RLock()
	g := current
	mu.RUnlock()
	return g.New()
}

// Use installs g as the package generator and returns a function restoring
// the previous one. Intended for tests that need predictable ids.
func Use(g Generator) (restore func()) {
	mu.Lock()
	prev := current
	current = g
	mu.Unlock()
	return func() {
		mu.Lock()
		current = prev
		mu.Unlock()
	}
}

// SequenceGenerator yields prefix1, prefix2, ...
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func Sequence(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (s *SequenceGenerator) New() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return s.prefix + strconv.Itoa(s.n)
}
