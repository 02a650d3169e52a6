package routes

import (
	"careconnect/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the availability, booking and payment endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/slots", hb.GetSlots)
	r.POST("/book", hb.Book)
	r.POST("/create-order", hb.CreateOrder)     // Step 1 of the paid flow
	r.POST("/verify-payment", hb.VerifyPayment) // Step 2: verify and book
}
