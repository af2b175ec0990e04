package payment

import (
	"context"
	"strings"
	"testing"

	"mentorsetu/services/simulation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessPaymentSucceeds(t *testing.T) {
	svc := &DefaultPaymentService{
		Failures: simulation.NoFailurePolicy{},
		Latency:  simulation.NoLatency{},
	}

	result, err := svc.ProcessPayment(context.Background(), 150, "card")
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.True(t, strings.HasPrefix(result.TransactionID, "txn_"))
	assert.Empty(t, result.Error)
}

func TestProcessPaymentGeneratesUniqueTransactionIDs(t *testing.T) {
	svc := &DefaultPaymentService{
		Failures: simulation.NoFailurePolicy{},
		Latency:  simulation.NoLatency{},
	}

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		result, err := svc.ProcessPayment(context.Background(), 100, "card")
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.False(t, seen[result.TransactionID])
		seen[result.TransactionID] = true
	}
}

func TestProcessPaymentInjectedFailure(t *testing.T) {
	svc := &DefaultPaymentService{
		Failures: simulation.ForcedFailurePolicy{
			Ops: map[string]bool{simulation.OpProcessPayment: true},
		},
		Latency: simulation.NoLatency{},
	}

	result, err := svc.ProcessPayment(context.Background(), 150, "card")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, errPaymentFailed, result.Error)
	assert.Empty(t, result.TransactionID)
}
