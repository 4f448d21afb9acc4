package routes

import (
	"spotbook/handlers"
	"spotbook/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	bookings := r.Group("/api/bookings")
	{
		bookings.Use(middleware.JWTAuthMiddleware())
		bookings.GET("/current", bh.ListCurrentUserBookings)
		bookings.GET("/:bookingID", bh.GetBooking)
		bookings.PUT("/:bookingID", bh.UpdateBooking)
		bookings.DELETE("/:bookingID", bh.DeleteBooking)
	}

	spots := r.Group("/api/spots")
	{
		spots.Use(middleware.JWTAuthMiddleware())
		spots.GET("/:spotID/bookings", bh.ListSpotBookings)
		spots.POST("/:spotID/bookings", bh.CreateBooking)
	}
}
