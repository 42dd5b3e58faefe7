package domain

import "errors"

var (
	ErrEmptyReason      = errors.New("a reason is required")
	ErrInvalidSelection = errors.New("unknown category or meal plan selection")
	ErrBookingCancelled = errors.New("booking is cancelled and can no longer be changed")
	ErrBookingNotFound  = errors.New("booking not found")
)

// ExternalServiceError wraps a failure reported by the payment or
// refund collaborator. It is propagated to the caller verbatim and
// never retried.
type ExternalServiceError struct {
	Operation string
	Cause     error
}

func (e *ExternalServiceError) Error() string {
	return e.Operation + " failed: " + e.Cause.Error()
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Cause
}
