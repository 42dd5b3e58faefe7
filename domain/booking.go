package domain

import (
	"encoding/json"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	Pending   BookingStatus = "Pending"
	Confirmed BookingStatus = "Confirmed"
	Cancelled BookingStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "Paid"
	PaymentPending  PaymentStatus = "Pending"
	PaymentRefunded PaymentStatus = "Refunded"
)

type ProductType string

const (
	Cruise ProductType = "cruise"
	Hotel  ProductType = "hotel"
)

// Booking is the persisted record of a confirmed trip. Amounts are in
// whole rupees. A booking is never deleted, only marked Cancelled.
type Booking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Reference      string             `bson:"reference" json:"reference"`
	GuestID        string             `bson:"guest_id" json:"guest_id"`
	ProductType    ProductType        `bson:"product_type" json:"product_type"`
	ProductName    string             `bson:"product_name" json:"product_name"`
	TravelDate     time.Time          `bson:"travel_date" json:"travel_date"`
	OriginalAmount int64              `bson:"original_amount" json:"original_amount"`
	CurrentAmount  int64              `bson:"current_amount" json:"current_amount"`
	Status         BookingStatus      `bson:"status" json:"status"`
	PaymentStatus  PaymentStatus      `bson:"payment_status" json:"payment_status"`
	TransactionID  string             `bson:"transaction_id" json:"transaction_id"`
	ContactEmail   string             `bson:"contact_email" json:"contact_email"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

type Bookings []*Booking

func (b *Booking) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(b)
}

func (b *Booking) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(b)
}

func (bookings Bookings) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(bookings)
}
