package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"booking-service/cache"
)

func setupWishlistRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// point the cache at a closed port so lookups come back empty
	t.Setenv("REDIS_HOST", "127.0.0.1")
	t.Setenv("REDIS_PORT", "1")

	tracer := trace.NewNoopTracerProvider().Tracer("test")
	logger := log.New(io.Discard, "[wishlist-cache] ", log.LstdFlags)
	handler := NewWishlistHandler(cache.New(logger, tracer), tracer)

	router := gin.New()
	router.GET("/api/wishlist/:guestId/contains/:itemId", handler.CheckItem)
	return router
}

func TestWishlistHandler_CheckItem_NotInWishlist(t *testing.T) {
	router := setupWishlistRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/wishlist/guest-1/contains/cruise-42", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Status     string `json:"status"`
		InWishlist bool   `json:"in_wishlist"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "success", response.Status)
	assert.False(t, response.InWishlist)
}
