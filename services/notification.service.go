package services

import "booking-service/domain"

type NotificationService interface {
	SendBookingConfirmation(booking *domain.Booking) error
	SendCancellationNotice(booking *domain.Booking, refundAmount int64) error
}
