package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"booking-service/services"
)

func setupQuoteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	tracer := trace.NewNoopTracerProvider().Tracer("test")
	handler := NewPricingHandler(services.NewPricingServiceImpl(tracer), tracer)

	router := gin.New()
	router.POST("/api/bookings/quote", handler.GetQuote)
	return router
}

func TestPricingHandler_GetQuote(t *testing.T) {
	router := setupQuoteRouter()

	body := `{"product_type":"cruise","base_rate":45000,"category":"balcony","units":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Status string `json:"status"`
		Quote  struct {
			Total int64 `json:"total"`
		} `json:"quote"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "success", response.Status)
	assert.Equal(t, int64(144000), response.Quote.Total)
}

func TestPricingHandler_GetQuote_UnknownCategory(t *testing.T) {
	router := setupQuoteRouter()

	body := `{"product_type":"cruise","base_rate":45000,"category":"penthouse","units":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPricingHandler_GetQuote_MissingFields(t *testing.T) {
	router := setupQuoteRouter()

	body := `{"product_type":"cruise"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
