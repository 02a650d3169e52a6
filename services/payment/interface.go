package payment

import (
	"context"

	"careconnect/models"
)

// StatusCaptured is the only payment status that allows a booking.
const StatusCaptured = "captured"

// Gateway is the slice of the payment provider the booking flow relies on.
type Gateway interface {
	CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error)
	FetchPayment(ctx context.Context, paymentID string) (*models.Payment, error)
}
