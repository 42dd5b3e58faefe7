package services

import (
	"context"

	"booking-service/data"
	"booking-service/domain"
)

type BookingService interface {
	CreateBooking(req *data.CreateBookingRequest, ctx context.Context) (*domain.Booking, error)
	GetBooking(id string, ctx context.Context) (*domain.Booking, error)
	GetBookingsByGuest(guestID string, ctx context.Context) (domain.Bookings, error)
	GetModificationHistory(bookingID string, ctx context.Context) (domain.ModificationRecords, error)
	CancelBooking(id, reason string, ctx context.Context) (*domain.Booking, *domain.ModificationRecord, error)
	ModifyBooking(id string, req *data.ModifyBookingRequest, ctx context.Context) (*domain.Booking, *domain.ModificationRecord, error)
}
