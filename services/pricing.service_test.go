package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"

	"booking-service/data"
	"booking-service/domain"
)

func TestPricingService_Quote(t *testing.T) {
	service := NewPricingServiceImpl(trace.NewNoopTracerProvider().Tracer("test"))

	tests := []struct {
		name      string
		req       data.QuoteRequest
		wantTotal int64
		wantErr   error
	}{
		{
			name: "balcony cabin for two passengers",
			req: data.QuoteRequest{
				ProductType: domain.Cruise,
				BaseRate:    45000,
				Category:    "balcony",
				Units:       2,
			},
			// round(45000*1.6)*2 = 72000*2
			wantTotal: 144000,
		},
		{
			name: "interior cabin single passenger",
			req: data.QuoteRequest{
				ProductType: domain.Cruise,
				BaseRate:    45000,
				Category:    "interior",
				Units:       1,
			},
			wantTotal: 45000,
		},
		{
			name: "deluxe room three nights with breakfast",
			req: data.QuoteRequest{
				ProductType: domain.Hotel,
				BaseRate:    8000,
				Category:    "deluxe",
				MealPlan:    domain.Breakfast,
				Units:       3,
			},
			// (round(8000*1.4) + 1200) * 3 = 12400*3
			wantTotal: 37200,
		},
		{
			name: "multiplier rounding before units",
			req: data.QuoteRequest{
				ProductType: domain.Hotel,
				BaseRate:    9999,
				Category:    "deluxe",
				Units:       2,
			},
			// round(9999*1.4) = round(13998.6) = 13999, times 2
			wantTotal: 27998,
		},
		{
			name: "unknown category",
			req: data.QuoteRequest{
				ProductType: domain.Cruise,
				BaseRate:    45000,
				Category:    "penthouse",
				Units:       2,
			},
			wantErr: domain.ErrInvalidSelection,
		},
		{
			name: "unknown meal plan",
			req: data.QuoteRequest{
				ProductType: domain.Hotel,
				BaseRate:    8000,
				Category:    "standard",
				MealPlan:    "caviar_only",
				Units:       1,
			},
			wantErr: domain.ErrInvalidSelection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := service.Quote(&tt.req, context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, quote.Total)
		})
	}
}

func TestPricingService_Quote_MonotonicInUnits(t *testing.T) {
	service := NewPricingServiceImpl(trace.NewNoopTracerProvider().Tracer("test"))

	var previous int64
	for units := 1; units <= 10; units++ {
		quote, err := service.Quote(&data.QuoteRequest{
			ProductType: domain.Cruise,
			BaseRate:    45000,
			Category:    "ocean_view",
			MealPlan:    domain.HalfBoard,
			Units:       units,
		}, context.Background())
		assert.NoError(t, err)
		assert.Greater(t, quote.Total, previous)
		previous = quote.Total
	}
}
