package booking

import (
	"context"

	"careconnect/models"
)

// BookingService is everything the HTTP layer needs from the booking flow.
type BookingService interface {
	ListBusySlots(ctx context.Context) ([]models.BusySlot, error)
	Book(ctx context.Context, req models.BookingRequest, idempotencyKey string) (*models.BookingConfirmation, error)
	CreateOrder(ctx context.Context, in models.CreateOrderInput) (*models.OrderResponse, error)
	VerifyAndBook(ctx context.Context, in models.VerifyPaymentRequest) (*models.BookingConfirmation, error)
}
