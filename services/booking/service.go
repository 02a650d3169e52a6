package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"careconnect/services/calendar"
	"careconnect/services/idempotency"
	"careconnect/services/payment"
	"careconnect/utils"
)

// Settings are the fixed business parameters of the booking flow.
type Settings struct {
	KeyID          string
	KeySecret      string
	DefaultAmount  int64
	Currency       string
	SlotWindow     time.Duration
	IdempotencyTTL time.Duration
	// PendingTTL bounds how long an unfinished attempt holds its key.
	PendingTTL time.Duration
}

// DefaultBookingService implements BookingService. The collaborators are
// built once at startup and shared by every request.
type DefaultBookingService struct {
	Calendar    calendar.Service
	Payments    payment.Gateway
	Idempotency idempotency.Store
	Settings    Settings
	Logger      *zap.Logger
	// Now is overridden in tests.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// logger tags the service logger with the request id carried by ctx.
func (s *DefaultBookingService) logger(ctx context.Context) *zap.Logger {
	l := s.Logger
	if l == nil {
		l = zap.NewNop()
	}
	if id := utils.RequestID(ctx); id != "" {
		l = l.With(zap.String("request_id", id))
	}
	return l
}

func (s *DefaultBookingService) store() idempotency.Store {
	if s.Idempotency != nil {
		return s.Idempotency
	}
	return idempotency.Noop{}
}
