package models

// OperationResult is the common result shape for mutations that carry no
// extra payload (cancel, reschedule, status update).
type OperationResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// PaymentResult is returned by the payment simulation.
type PaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	Error         string `json:"error,omitempty"`
}
