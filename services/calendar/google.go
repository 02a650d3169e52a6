package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"careconnect/models"
)

// Settings describes the single calendar resource this service books into.
type Settings struct {
	CalendarID string
	TimeZone   string
	Timeout    time.Duration
}

// GoogleCalendar implements Service on top of the Google Calendar v3 API.
type GoogleCalendar struct {
	svc      *gcal.Service
	settings Settings
	logger   *zap.Logger
}

// NewGoogleCalendar builds the client once. Credentials are passed as client
// options, e.g. option.WithCredentialsJSON.
func NewGoogleCalendar(ctx context.Context, settings Settings, logger *zap.Logger, opts ...option.ClientOption) (*GoogleCalendar, error) {
	if settings.CalendarID == "" {
		return nil, fmt.Errorf("calendar: calendar id is required")
	}
	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("calendar: failed to create service: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GoogleCalendar{svc: svc, settings: settings, logger: logger}, nil
}

// CredentialOptions returns the client options for a service-account JSON key.
func CredentialOptions(credsJSON string) []option.ClientOption {
	return []option.ClientOption{
		option.WithCredentialsJSON([]byte(credsJSON)),
		option.WithScopes(gcal.CalendarScope),
	}
}

func (g *GoogleCalendar) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.settings.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.settings.Timeout)
}

func (g *GoogleCalendar) QueryBusy(ctx context.Context, timeMin, timeMax time.Time) ([]models.BusySlot, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	req := &gcal.FreeBusyRequest{
		TimeMin: timeMin.Format(time.RFC3339),
		TimeMax: timeMax.Format(time.RFC3339),
		Items:   []*gcal.FreeBusyRequestItem{{Id: g.settings.CalendarID}},
	}
	resp, err := g.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("freebusy query failed: %w", err)
	}

	cal, ok := resp.Calendars[g.settings.CalendarID]
	if !ok {
		return nil, fmt.Errorf("calendar %s missing from freebusy response", g.settings.CalendarID)
	}
	if len(cal.Errors) > 0 {
		reasons := make([]string, 0, len(cal.Errors))
		for _, e := range cal.Errors {
			reasons = append(reasons, e.Reason)
		}
		return nil, fmt.Errorf("freebusy query for %s failed: %s", g.settings.CalendarID, strings.Join(reasons, ", "))
	}

	busy := make([]models.BusySlot, 0, len(cal.Busy))
	for _, p := range cal.Busy {
		busy = append(busy, models.BusySlot{Start: p.Start, End: p.End})
	}
	g.logger.Debug("freebusy query",
		zap.String("time_min", req.TimeMin),
		zap.String("time_max", req.TimeMax),
		zap.Int("busy", len(busy)))
	return busy, nil
}

func (g *GoogleCalendar) CreateEvent(ctx context.Context, in models.EventInput) (*models.CalendarEvent, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	event := &gcal.Event{
		Summary:     in.Summary,
		Description: in.Description,
		Start: &gcal.EventDateTime{
			DateTime: in.Interval.Start.Format(time.RFC3339),
			TimeZone: g.settings.TimeZone,
		},
		End: &gcal.EventDateTime{
			DateTime: in.Interval.End.Format(time.RFC3339),
			TimeZone: g.settings.TimeZone,
		},
		Reminders: &gcal.EventReminders{UseDefault: true},
	}

	created, err := g.svc.Events.Insert(g.settings.CalendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("event insert failed: %w", err)
	}

	out := &models.CalendarEvent{ID: created.Id}
	if created.Start != nil {
		out.Start = created.Start.DateTime
	}
	if created.End != nil {
		out.End = created.End.DateTime
	}
	g.logger.Info("calendar event created", zap.String("event_id", out.ID))
	return out, nil
}
