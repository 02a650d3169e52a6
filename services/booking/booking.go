package booking

import (
	"context"

	"go.uber.org/zap"

	"careconnect/models"
	"careconnect/services/availability"
)

// ListBusySlots returns the calendar's busy periods for the forward window,
// exactly as the calendar reports them.
func (s *DefaultBookingService) ListBusySlots(ctx context.Context) ([]models.BusySlot, error) {
	from := s.now()
	busy, err := s.Calendar.QueryBusy(ctx, from, from.Add(s.Settings.SlotWindow))
	if err != nil {
		return nil, upstream("fetch busy slots", err)
	}
	if busy == nil {
		busy = []models.BusySlot{}
	}
	return busy, nil
}

// Book re-checks the requested interval and creates the event if it is free.
// A non-empty idempotencyKey makes retries replay the first confirmation.
func (s *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest, idempotencyKey string) (*models.BookingConfirmation, error) {
	interval, err := availability.ParseInterval(req.Start, req.End)
	if err != nil {
		return nil, err
	}

	key := ""
	if idempotencyKey != "" {
		key = "book:" + idempotencyKey
	}
	return s.once(ctx, key, func() (*models.BookingConfirmation, error) {
		return s.checkAndCreate(ctx, interval, req, "")
	})
}

// checkAvailability fetches busy periods limited to the interval itself and
// runs the overlap check.
func (s *DefaultBookingService) checkAvailability(ctx context.Context, interval models.TimeInterval) error {
	slots, err := s.Calendar.QueryBusy(ctx, interval.Start, interval.End)
	if err != nil {
		return upstream("check availability", err)
	}
	busy, err := availability.ParseBusy(slots)
	if err != nil {
		return upstream("parse busy slots", err)
	}
	if !availability.IsSlotAvailable(interval, busy) {
		return ErrSlotUnavailable
	}
	return nil
}

func (s *DefaultBookingService) checkAndCreate(ctx context.Context, interval models.TimeInterval, req models.BookingRequest, paymentID string) (*models.BookingConfirmation, error) {
	if err := s.checkAvailability(ctx, interval); err != nil {
		return nil, err
	}

	ev, err := s.Calendar.CreateEvent(ctx, models.EventInput{
		Summary:     eventSummary(req),
		Description: eventDescription(req, paymentID),
		Interval:    interval,
	})
	if err != nil {
		return nil, upstream("create event", err)
	}

	s.logger(ctx).Info("appointment booked",
		zap.String("event_id", ev.ID),
		zap.String("payment_id", paymentID),
		zap.String("start", ev.Start),
		zap.String("end", ev.End))

	return &models.BookingConfirmation{
		Success:       true,
		AppointmentID: ev.ID,
		PaymentID:     paymentID,
		Details: models.BookingDetails{
			Name:  req.Name,
			Start: ev.Start,
			End:   ev.End,
		},
	}, nil
}
