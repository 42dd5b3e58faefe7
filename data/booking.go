package data

import (
	"encoding/json"
	"io"
	"time"

	"booking-service/domain"
)

type QuoteRequest struct {
	ProductType domain.ProductType `json:"product_type" validate:"required,oneof=cruise hotel"`
	BaseRate    int64              `json:"base_rate" validate:"required,gt=0"`
	Category    string             `json:"category" validate:"required"`
	MealPlan    domain.MealPlan    `json:"meal_plan"`
	Units       int                `json:"units" validate:"required,gte=1"`
}

type CreateBookingRequest struct {
	GuestID      string             `json:"guest_id" validate:"required"`
	ProductType  domain.ProductType `json:"product_type" validate:"required,oneof=cruise hotel"`
	ProductName  string             `json:"product_name" validate:"required"`
	BaseRate     int64              `json:"base_rate" validate:"required,gt=0"`
	Category     string             `json:"category" validate:"required"`
	MealPlan     domain.MealPlan    `json:"meal_plan"`
	Units        int                `json:"units" validate:"required,gte=1"`
	TravelDate   time.Time          `json:"travel_date" validate:"required"`
	ContactEmail string             `json:"contact_email" validate:"required,email"`
}

type ModifyBookingRequest struct {
	NewTravelDate time.Time `json:"new_travel_date" validate:"required"`
	RoomUpgrade   string    `json:"room_upgrade"`
	Reason        string    `json:"reason" validate:"required"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type WishlistItem struct {
	ItemID string `json:"item_id" validate:"required"`
}

func (q *QuoteRequest) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(q)
}

func (c *CreateBookingRequest) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(c)
}

func (m *ModifyBookingRequest) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(m)
}
