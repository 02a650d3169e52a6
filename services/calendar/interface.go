package calendar

import (
	"context"
	"time"

	"careconnect/models"
)

// Service is the slice of the calendar provider the booking flow relies on.
type Service interface {
	// QueryBusy returns the busy periods of the configured calendar in [timeMin, timeMax].
	QueryBusy(ctx context.Context, timeMin, timeMax time.Time) ([]models.BusySlot, error)
	// CreateEvent inserts an event and returns the calendar's canonical copy.
	CreateEvent(ctx context.Context, in models.EventInput) (*models.CalendarEvent, error)
}
