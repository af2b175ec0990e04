package simulation

import (
	"context"
	"time"
)

// Operation names used by failure policies to identify the caller.
const (
	OpBookSession       = "bookSession"
	OpProcessPayment    = "processPayment"
	OpSubmitApplication = "submitMentorApplication"
)

// FailurePolicy decides whether a mutating operation should be failed
// artificially. Injected so tests can force deterministic outcomes.
type FailurePolicy interface {
	// ShouldFail reports whether op should fail this time. probability is
	// the chance of failure in [0, 1].
	ShouldFail(op string, probability float64) bool
}

// LatencyPolicy inserts the artificial wait that emulates network latency.
type LatencyPolicy interface {
	// Wait blocks for roughly d, or until ctx is done.
	Wait(ctx context.Context, d time.Duration) error
}
