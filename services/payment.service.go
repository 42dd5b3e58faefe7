package services

import "context"

// PaymentService is the external payment collaborator. Implementations
// report failures as-is; the booking service never retries a charge or
// refund on its own.
type PaymentService interface {
	Charge(ctx context.Context, amount int64, currency, customerContact, description string) (string, error)
	Refund(ctx context.Context, originalTransactionRef string, amount int64, reason string) (string, error)
}
