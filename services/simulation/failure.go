package simulation

import (
	"math/rand"
	"sync"
	"time"
)

// RandomFailurePolicy fails operations at their configured probability.
type RandomFailurePolicy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomFailurePolicy creates a time-seeded random policy.
func NewRandomFailurePolicy() *RandomFailurePolicy {
	return &RandomFailurePolicy{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (p *RandomFailurePolicy) ShouldFail(_ string, probability float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Float64() < probability
}

// NoFailurePolicy never fails. Used when failure injection is disabled
// and as the default test policy.
type NoFailurePolicy struct{}

func (NoFailurePolicy) ShouldFail(string, float64) bool { return false }

// ForcedFailurePolicy fails exactly the named operations. Test fixture.
type ForcedFailurePolicy struct {
	Ops map[string]bool
}

func (p ForcedFailurePolicy) ShouldFail(op string, _ float64) bool {
	return p.Ops[op]
}
