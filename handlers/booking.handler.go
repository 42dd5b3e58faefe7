package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"booking-service/data"
	"booking-service/domain"
	"booking-service/services"
)

type BookingHandler struct {
	bookingService services.BookingService
	Tracer         trace.Tracer
	validator      *validator.Validate
}

func NewBookingHandler(bookingService services.BookingService, tracer trace.Tracer) BookingHandler {
	return BookingHandler{
		bookingService: bookingService,
		Tracer:         tracer,
		validator:      validator.New(),
	}
}

func (bh *BookingHandler) CreateBooking(ctx *gin.Context) {
	spanCtx, span := bh.Tracer.Start(ctx.Request.Context(), "BookingHandler.CreateBooking")
	defer span.End()

	var req *data.CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	if err := bh.validator.Struct(req); err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	booking, err := bh.bookingService.CreateBooking(req, spanCtx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"status": "success", "booking": booking})
}

func (bh *BookingHandler) GetBooking(ctx *gin.Context) {
	spanCtx, span := bh.Tracer.Start(ctx.Request.Context(), "BookingHandler.GetBooking")
	defer span.End()

	booking, err := bh.bookingService.GetBooking(ctx.Param("id"), spanCtx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "booking": booking})
}

func (bh *BookingHandler) GetBookingsByGuest(ctx *gin.Context) {
	spanCtx, span := bh.Tracer.Start(ctx.Request.Context(), "BookingHandler.GetBookingsByGuest")
	defer span.End()

	bookings, err := bh.bookingService.GetBookingsByGuest(ctx.Param("guestId"), spanCtx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "bookings": bookings})
}

func (bh *BookingHandler) GetModificationHistory(ctx *gin.Context) {
	spanCtx, span := bh.Tracer.Start(ctx.Request.Context(), "BookingHandler.GetModificationHistory")
	defer span.End()

	records, err := bh.bookingService.GetModificationHistory(ctx.Param("id"), spanCtx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "modifications": records})
}

func (bh *BookingHandler) CancelBooking(ctx *gin.Context) {
	spanCtx, span := bh.Tracer.Start(ctx.Request.Context(), "BookingHandler.CancelBooking")
	defer span.End()

	var req *data.CancelBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	booking, record, err := bh.bookingService.CancelBooking(ctx.Param("id"), req.Reason, spanCtx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "booking": booking, "modification": record})
}

func (bh *BookingHandler) ModifyBooking(ctx *gin.Context) {
	spanCtx, span := bh.Tracer.Start(ctx.Request.Context(), "BookingHandler.ModifyBooking")
	defer span.End()

	var req *data.ModifyBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	if err := bh.validator.Struct(req); err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	booking, record, err := bh.bookingService.ModifyBooking(ctx.Param("id"), req, spanCtx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "booking": booking, "modification": record})
}

func respondWithDomainError(ctx *gin.Context, err error) {
	var externalErr *domain.ExternalServiceError

	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"status": "fail", "message": err.Error()})
	case errors.Is(err, domain.ErrEmptyReason), errors.Is(err, domain.ErrInvalidSelection):
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
	case errors.Is(err, domain.ErrBookingCancelled):
		ctx.JSON(http.StatusConflict, gin.H{"status": "fail", "message": err.Error()})
	case errors.As(err, &externalErr):
		ctx.JSON(http.StatusBadGateway, gin.H{"status": "fail", "message": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
	}
}
