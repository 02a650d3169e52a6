package booking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"careconnect/models"
	"careconnect/services/availability"
	"careconnect/services/payment"
)

// CreateOrder opens a payable order. The response carries the public key id
// only, never the secret.
func (s *DefaultBookingService) CreateOrder(ctx context.Context, in models.CreateOrderInput) (*models.OrderResponse, error) {
	amount := s.Settings.DefaultAmount
	if in.Amount != nil {
		if *in.Amount <= 0 {
			return nil, ErrInvalidAmount
		}
		amount = *in.Amount
	}

	order, err := s.Payments.CreateOrder(ctx, models.OrderRequest{
		Amount:   amount,
		Currency: s.Settings.Currency,
		Receipt:  fmt.Sprintf("receipt_%d", s.now().UnixMilli()),
		Notes: map[string]string{
			"name":  in.Name,
			"email": in.Email,
		},
	})
	if err != nil {
		return nil, upstream("create order", err)
	}

	return &models.OrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    s.Settings.KeyID,
	}, nil
}

// VerifyAndBook books a paid appointment. The gates run strictly in order:
// signature, capture status, availability, then the calendar write.
// One payment maps to at most one event.
func (s *DefaultBookingService) VerifyAndBook(ctx context.Context, in models.VerifyPaymentRequest) (*models.BookingConfirmation, error) {
	if !payment.VerifySignature(in.OrderID, in.PaymentID, in.Signature, s.Settings.KeySecret) {
		s.logger(ctx).Warn("payment signature mismatch",
			zap.String("order_id", in.OrderID),
			zap.String("payment_id", in.PaymentID))
		return nil, ErrInvalidSignature
	}

	details := in.BookingDetails
	interval, err := availability.ParseInterval(details.Start, details.End)
	if err != nil {
		return nil, err
	}

	return s.once(ctx, "payment:"+in.PaymentID, func() (*models.BookingConfirmation, error) {
		p, err := s.Payments.FetchPayment(ctx, in.PaymentID)
		if err != nil {
			return nil, upstream("fetch payment", err)
		}
		if p.Status != payment.StatusCaptured {
			s.logger(ctx).Warn("payment not captured",
				zap.String("payment_id", in.PaymentID),
				zap.String("status", p.Status))
			return nil, ErrPaymentNotCaptured
		}

		return s.checkAndCreate(ctx, interval, details, in.PaymentID)
	})
}
