package domain

import "context"

// BookingStore persists bookings. The production implementation is
// backed by MongoDB.
type BookingStore interface {
	Insert(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	GetByGuest(ctx context.Context, guestID string) (Bookings, error)
	Update(ctx context.Context, booking *Booking) error
}

// ModificationStore is the append-only change ledger. The production
// implementation is backed by Cassandra.
type ModificationStore interface {
	InsertModification(record *ModificationRecord) error
	GetModificationsByBooking(bookingID string) (ModificationRecords, error)
}
