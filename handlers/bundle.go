// File: careconnect/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Status endpoints
	RootHandler   gin.HandlerFunc
	HealthHandler gin.HandlerFunc

	// Booking endpoints
	GetSlots gin.HandlerFunc
	Book     gin.HandlerFunc

	// Payment endpoints
	CreateOrder   gin.HandlerFunc
	VerifyPayment gin.HandlerFunc
}
