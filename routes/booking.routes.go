package routes

import (
	"github.com/gin-gonic/gin"

	"booking-service/handlers"
)

type BookingRouteHandler struct {
	bookingHandler  handlers.BookingHandler
	pricingHandler  handlers.PricingHandler
	wishlistHandler handlers.WishlistHandler
}

func NewBookingRouteHandler(bookingHandler handlers.BookingHandler, pricingHandler handlers.PricingHandler,
	wishlistHandler handlers.WishlistHandler) BookingRouteHandler {
	return BookingRouteHandler{bookingHandler, pricingHandler, wishlistHandler}
}

func (rc *BookingRouteHandler) BookingRoute(rg *gin.RouterGroup) {
	router := rg.Group("/bookings")

	router.POST("/quote", rc.pricingHandler.GetQuote)
	router.POST("/create", rc.bookingHandler.CreateBooking)
	router.GET("/get/:id", rc.bookingHandler.GetBooking)
	router.GET("/guest/:guestId", rc.bookingHandler.GetBookingsByGuest)
	router.GET("/modifications/:id", rc.bookingHandler.GetModificationHistory)
	router.POST("/cancel/:id", rc.bookingHandler.CancelBooking)
	router.PATCH("/modify/:id", rc.bookingHandler.ModifyBooking)

	wishlist := rg.Group("/wishlist")
	wishlist.POST("/:guestId", rc.wishlistHandler.AddItem)
	wishlist.DELETE("/:guestId/:itemId", rc.wishlistHandler.RemoveItem)
	wishlist.GET("/:guestId", rc.wishlistHandler.GetItems)
	wishlist.GET("/:guestId/contains/:itemId", rc.wishlistHandler.CheckItem)
}
