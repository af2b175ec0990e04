package simulation

import (
	"context"
	"time"
)

// NetworkLatency waits for the full simulated duration.
type NetworkLatency struct{}

func (NetworkLatency) Wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoLatency skips simulated waits. Used when latency simulation is
// disabled and in tests.
type NoLatency struct{}

func (NoLatency) Wait(context.Context, time.Duration) error { return nil }
