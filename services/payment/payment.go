package payment

import (
	"context"
	"fmt"
	"time"

	"mentorsetu/models"
	"mentorsetu/services/simulation"

	"github.com/google/uuid"
)

// processDelay is the simulated processing time of a payment.
const processDelay = 1000 * time.Millisecond

// paymentFailureRate is the injected chance that a payment is declined.
const paymentFailureRate = 0.05

const errPaymentFailed = "Payment failed. Please try again."

// PaymentService simulates a payment gateway. No money moves; amount and
// method are accepted for interface fidelity only.
type PaymentService interface {
	ProcessPayment(ctx context.Context, amount int, method string) (*models.PaymentResult, error)
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Failures simulation.FailurePolicy
	Latency  simulation.LatencyPolicy
}

// ProcessPayment resolves with a fresh transaction id, or with the
// injected decline.
func (svc *DefaultPaymentService) ProcessPayment(ctx context.Context, amount int, method string) (*models.PaymentResult, error) {
	if err := svc.Latency.Wait(ctx, processDelay); err != nil {
		return nil, err
	}

	if svc.Failures.ShouldFail(simulation.OpProcessPayment, paymentFailureRate) {
		return &models.PaymentResult{Success: false, Error: errPaymentFailed}, nil
	}

	return &models.PaymentResult{
		Success:       true,
		TransactionID: newTransactionID(),
	}, nil
}

// newTransactionID generates an opaque transaction identifier.
func newTransactionID() string {
	return fmt.Sprintf("txn_%d_%s", time.Now().UnixMilli(), uuid.New().String()[:9])
}
