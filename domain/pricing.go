package domain

// Room and cabin tiers are closed sets. Lookups go through the switch
// mappings below so an unknown key is an error instead of silently
// pricing at the base multiplier.

type CabinCategory string

const (
	Interior   CabinCategory = "interior"
	OceanView  CabinCategory = "ocean_view"
	Balcony    CabinCategory = "balcony"
	CabinSuite CabinCategory = "suite"
)

type RoomCategory string

const (
	Standard     RoomCategory = "standard"
	Deluxe       RoomCategory = "deluxe"
	Executive    RoomCategory = "executive"
	Presidential RoomCategory = "presidential"
)

type MealPlan string

const (
	NoMeals   MealPlan = "none"
	Breakfast MealPlan = "breakfast"
	HalfBoard MealPlan = "half_board"
	FullBoard MealPlan = "full_board"
)

func (c CabinCategory) Multiplier() (float64, error) {
	switch c {
	case Interior:
		return 1.0, nil
	case OceanView:
		return 1.3, nil
	case Balcony:
		return 1.6, nil
	case CabinSuite:
		return 2.2, nil
	}
	return 0, ErrInvalidSelection
}

func (r RoomCategory) Multiplier() (float64, error) {
	switch r {
	case Standard:
		return 1.0, nil
	case Deluxe:
		return 1.4, nil
	case Executive:
		return 1.8, nil
	case Presidential:
		return 2.5, nil
	}
	return 0, ErrInvalidSelection
}

// Fee returns the flat per-unit meal plan add-on in whole rupees.
// An empty plan means no meals were selected.
func (m MealPlan) Fee() (int64, error) {
	switch m {
	case NoMeals, "":
		return 0, nil
	case Breakfast:
		return 1200, nil
	case HalfBoard:
		return 2800, nil
	case FullBoard:
		return 4500, nil
	}
	return 0, ErrInvalidSelection
}

// CategoryMultiplier resolves a category key for the given product.
// Cruise keys are cabin tiers, hotel keys are room tiers.
func CategoryMultiplier(product ProductType, category string) (float64, error) {
	switch product {
	case Cruise:
		return CabinCategory(category).Multiplier()
	case Hotel:
		return RoomCategory(category).Multiplier()
	}
	return 0, ErrInvalidSelection
}

// BookingQuote is an ephemeral price calculation. It has no identity
// and is recomputed from scratch on every request.
type BookingQuote struct {
	BaseRate   int64   `json:"base_rate"`
	Multiplier float64 `json:"multiplier"`
	AddOnFee   int64   `json:"add_on_fee"`
	Units      int     `json:"units"`
	PerUnit    int64   `json:"per_unit"`
	Total      int64   `json:"total"`
}
