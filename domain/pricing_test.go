package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		product  ProductType
		category string
		want     float64
		wantErr  bool
	}{
		{"balcony cabin", Cruise, "balcony", 1.6, false},
		{"interior cabin", Cruise, "interior", 1.0, false},
		{"presidential room", Hotel, "presidential", 2.5, false},
		{"unknown cabin", Cruise, "penthouse", 0, true},
		{"hotel key on cruise", Cruise, "deluxe", 0, true},
		{"unknown product", ProductType("train"), "standard", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CategoryMultiplier(tt.product, tt.category)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSelection)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMealPlanFee(t *testing.T) {
	fee, err := FullBoard.Fee()
	assert.NoError(t, err)
	assert.Equal(t, int64(4500), fee)

	fee, err = MealPlan("").Fee()
	assert.NoError(t, err)
	assert.Equal(t, int64(0), fee)

	_, err = MealPlan("caviar_only").Fee()
	assert.ErrorIs(t, err, ErrInvalidSelection)
}
