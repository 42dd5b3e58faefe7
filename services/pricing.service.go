package services

import (
	"context"

	"booking-service/data"
	"booking-service/domain"
)

type PricingService interface {
	Quote(req *data.QuoteRequest, ctx context.Context) (*domain.BookingQuote, error)
}
