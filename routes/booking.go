package routes

import (
	"akshara/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking widget lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.Booking.InitiateSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.PUT("/session/:sessionID", hb.Booking.UpdateForm)
		bookingGroup.POST("/session/:sessionID/month", hb.Booking.NavigateMonth)
		bookingGroup.POST("/session/:sessionID/date", hb.Booking.SelectDate)
		bookingGroup.POST("/session/:sessionID/time", hb.Booking.SelectTime)
		bookingGroup.POST("/confirm", hb.Booking.Confirm)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}
}
