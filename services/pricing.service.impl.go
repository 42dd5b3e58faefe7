package services

import (
	"context"
	"errors"
	"math"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"booking-service/data"
	"booking-service/domain"
)

type PricingServiceImpl struct {
	Tracer trace.Tracer
}

func NewPricingServiceImpl(tracer trace.Tracer) PricingService {
	return &PricingServiceImpl{Tracer: tracer}
}

// Quote prices a prospective booking. The per-unit price is the base
// rate scaled by the category multiplier, rounded to the whole rupee,
// plus the flat meal plan fee; the total multiplies by units (nights
// for hotels, passengers for cruises). Pure computation, safe to call
// on every form change.
func (s *PricingServiceImpl) Quote(req *data.QuoteRequest, ctx context.Context) (*domain.BookingQuote, error) {
	_, span := s.Tracer.Start(ctx, "PricingService.Quote")
	defer span.End()

	if req.BaseRate <= 0 {
		span.SetStatus(codes.Error, "base rate must be positive")
		return nil, errors.New("base rate must be positive")
	}
	if req.Units < 1 {
		span.SetStatus(codes.Error, "units must be at least 1")
		return nil, errors.New("units must be at least 1")
	}

	multiplier, err := domain.CategoryMultiplier(req.ProductType, req.Category)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	addOnFee, err := req.MealPlan.Fee()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	perUnit := int64(math.Round(float64(req.BaseRate)*multiplier)) + addOnFee

	return &domain.BookingQuote{
		BaseRate:   req.BaseRate,
		Multiplier: multiplier,
		AddOnFee:   addOnFee,
		Units:      req.Units,
		PerUnit:    perUnit,
		Total:      perUnit * int64(req.Units),
	}, nil
}
