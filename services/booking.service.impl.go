package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"booking-service/data"
	"booking-service/domain"
)

const currency = "INR"

type BookingServiceImpl struct {
	bookings      domain.BookingStore
	modifications domain.ModificationStore
	pricing       PricingService
	payment       PaymentService
	notifications NotificationService
	clock         domain.Clock
	logger        *logrus.Logger
	Tracer        trace.Tracer
}

func NewBookingServiceImpl(bookings domain.BookingStore, modifications domain.ModificationStore,
	pricing PricingService, payment PaymentService, notifications NotificationService,
	clock domain.Clock, logger *logrus.Logger, tracer trace.Tracer) BookingService {
	return &BookingServiceImpl{
		bookings:      bookings,
		modifications: modifications,
		pricing:       pricing,
		payment:       payment,
		notifications: notifications,
		clock:         clock,
		logger:        logger,
		Tracer:        tracer,
	}
}

// CreateBooking quotes the trip and builds the booking as
// Pending/PaymentPending, then charges the full amount and persists it
// as Confirmed/Paid. A failed charge means nothing is persisted.
func (s *BookingServiceImpl) CreateBooking(req *data.CreateBookingRequest, ctx context.Context) (*domain.Booking, error) {
	ctx, span := s.Tracer.Start(ctx, "BookingService.CreateBooking")
	defer span.End()

	quote, err := s.pricing.Quote(&data.QuoteRequest{
		ProductType: req.ProductType,
		BaseRate:    req.BaseRate,
		Category:    req.Category,
		MealPlan:    req.MealPlan,
		Units:       req.Units,
	}, ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	reference := "YH-" + strings.ToUpper(uuid.NewString()[:8])
	description := fmt.Sprintf("Booking %s: %s", reference, req.ProductName)

	booking := &domain.Booking{
		Reference:      reference,
		GuestID:        req.GuestID,
		ProductType:    req.ProductType,
		ProductName:    req.ProductName,
		TravelDate:     req.TravelDate,
		OriginalAmount: quote.Total,
		CurrentAmount:  quote.Total,
		Status:         domain.Pending,
		PaymentStatus:  domain.PaymentPending,
		ContactEmail:   req.ContactEmail,
		CreatedAt:      s.clock.Now(),
	}

	txID, err := s.payment.Charge(ctx, quote.Total, currency, req.ContactEmail, description)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	booking.Status = domain.Confirmed
	booking.PaymentStatus = domain.PaymentPaid
	booking.TransactionID = txID

	if err := s.bookings.Insert(ctx, booking); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if err := s.notifications.SendBookingConfirmation(booking); err != nil {
		s.logger.WithFields(logrus.Fields{"booking": booking.Reference}).Warn("confirmation email failed: ", err)
	}

	return booking, nil
}

func (s *BookingServiceImpl) GetBooking(id string, ctx context.Context) (*domain.Booking, error) {
	ctx, span := s.Tracer.Start(ctx, "BookingService.GetBooking")
	defer span.End()

	return s.bookings.GetByID(ctx, id)
}

func (s *BookingServiceImpl) GetBookingsByGuest(guestID string, ctx context.Context) (domain.Bookings, error) {
	ctx, span := s.Tracer.Start(ctx, "BookingService.GetBookingsByGuest")
	defer span.End()

	return s.bookings.GetByGuest(ctx, guestID)
}

func (s *BookingServiceImpl) GetModificationHistory(bookingID string, ctx context.Context) (domain.ModificationRecords, error) {
	_, span := s.Tracer.Start(ctx, "BookingService.GetModificationHistory")
	defer span.End()

	return s.modifications.GetModificationsByBooking(bookingID)
}

// CancelBooking applies the refund schedule and marks the booking
// Cancelled. The refund is tracked as a ledger entry; the booking's
// current amount is left as it was before cancellation.
func (s *BookingServiceImpl) CancelBooking(id, reason string, ctx context.Context) (*domain.Booking, *domain.ModificationRecord, error) {
	ctx, span := s.Tracer.Start(ctx, "BookingService.CancelBooking")
	defer span.End()

	if strings.TrimSpace(reason) == "" {
		span.SetStatus(codes.Error, domain.ErrEmptyReason.Error())
		return nil, nil, domain.ErrEmptyReason
	}

	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, nil, err
	}
	if booking.Status == domain.Cancelled {
		span.SetStatus(codes.Error, domain.ErrBookingCancelled.Error())
		return nil, nil, domain.ErrBookingCancelled
	}

	days := domain.DaysUntil(s.clock.Now(), booking.TravelDate)
	percent := domain.RefundPercent(days)
	refundAmount := domain.RefundAmount(booking.CurrentAmount, percent)

	if refundAmount > 0 {
		_, err := s.payment.Refund(ctx, booking.TransactionID, refundAmount, reason)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, nil, err
		}
	}

	record := &domain.ModificationRecord{
		BookingID:       booking.ID.Hex(),
		Type:            domain.Cancellation,
		OldValue:        "Active",
		NewValue:        "Cancelled",
		PriceAdjustment: -refundAmount,
		Timestamp:       s.clock.Now(),
		Reason:          reason,
	}
	if err := s.modifications.InsertModification(record); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, nil, err
	}

	booking.Status = domain.Cancelled
	if refundAmount > 0 {
		booking.PaymentStatus = domain.PaymentRefunded
	}
	if err := s.bookings.Update(ctx, booking); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, nil, err
	}

	if err := s.notifications.SendCancellationNotice(booking, refundAmount); err != nil {
		s.logger.WithFields(logrus.Fields{"booking": booking.Reference}).Warn("cancellation email failed: ", err)
	}

	return booking, record, nil
}

// ModifyBooking moves the travel date and/or upgrades the room for a
// flat fee. The fee is charged before anything is mutated, so a failed
// payment leaves the booking untouched.
func (s *BookingServiceImpl) ModifyBooking(id string, req *data.ModifyBookingRequest, ctx context.Context) (*domain.Booking, *domain.ModificationRecord, error) {
	ctx, span := s.Tracer.Start(ctx, "BookingService.ModifyBooking")
	defer span.End()

	if strings.TrimSpace(req.Reason) == "" {
		span.SetStatus(codes.Error, domain.ErrEmptyReason.Error())
		return nil, nil, domain.ErrEmptyReason
	}

	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, nil, err
	}
	if booking.Status == domain.Cancelled {
		span.SetStatus(codes.Error, domain.ErrBookingCancelled.Error())
		return nil, nil, domain.ErrBookingCancelled
	}

	dateChanged := !domain.SameCalendarDay(booking.TravelDate, req.NewTravelDate)
	roomUpgraded := req.RoomUpgrade != ""
	fee := domain.ModificationFee(dateChanged, roomUpgraded)

	if fee > 0 {
		description := fmt.Sprintf("Modification fee for booking %s", booking.Reference)
		_, err := s.payment.Charge(ctx, fee, currency, booking.ContactEmail, description)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, nil, err
		}
	}

	// Any movement of the travel date is recorded with the old and new
	// dates, fee-exempt same-day slot changes included. Only a pure
	// upgrade, with the date untouched, is typed as one.
	modType := domain.DateChange
	oldValue := booking.TravelDate.Format(time.RFC3339)
	newValue := req.NewTravelDate.Format(time.RFC3339)
	if roomUpgraded && booking.TravelDate.Equal(req.NewTravelDate) {
		modType = domain.RoomUpgrade
		oldValue = ""
		newValue = req.RoomUpgrade
	}

	record := &domain.ModificationRecord{
		BookingID:       booking.ID.Hex(),
		Type:            modType,
		OldValue:        oldValue,
		NewValue:        newValue,
		PriceAdjustment: fee,
		Timestamp:       s.clock.Now(),
		Reason:          req.Reason,
	}
	if err := s.modifications.InsertModification(record); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, nil, err
	}

	booking.TravelDate = req.NewTravelDate
	booking.CurrentAmount += fee
	if err := s.bookings.Update(ctx, booking); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, nil, err
	}

	return booking, record, nil
}
