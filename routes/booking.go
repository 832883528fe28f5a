package routes

import (
	"freshfold/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/session", hb.InitiateSession)
		booking.GET("/session/:sessionID", hb.GetSession)
		booking.PATCH("/session/:sessionID/fields", hb.UpdateFields)
		booking.POST("/session/:sessionID/locker", hb.ToggleLocker)
		booking.POST("/session/:sessionID/customer-type", hb.SelectCustomerType)
		booking.POST("/session/:sessionID/advance", hb.Advance)
		booking.POST("/session/:sessionID/retreat", hb.Retreat)
		booking.POST("/session/:sessionID/resolve", hb.ResolveCustomer)
		booking.POST("/session/:sessionID/submit", hb.Submit)
		booking.DELETE("/session/:sessionID", hb.CancelSession)
		booking.GET("/session/:sessionID/notices", hb.DrainNotices)
	}
}
