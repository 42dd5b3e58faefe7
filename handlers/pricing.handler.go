package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"booking-service/data"
	"booking-service/services"
)

type PricingHandler struct {
	pricingService services.PricingService
	Tracer         trace.Tracer
	validator      *validator.Validate
}

func NewPricingHandler(pricingService services.PricingService, tracer trace.Tracer) PricingHandler {
	return PricingHandler{
		pricingService: pricingService,
		Tracer:         tracer,
		validator:      validator.New(),
	}
}

func (ph *PricingHandler) GetQuote(ctx *gin.Context) {
	spanCtx, span := ph.Tracer.Start(ctx.Request.Context(), "PricingHandler.GetQuote")
	defer span.End()

	var req *data.QuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	if err := ph.validator.Struct(req); err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	quote, err := ph.pricingService.Quote(req, spanCtx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "quote": quote})
}
