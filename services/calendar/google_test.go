package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"careconnect/models"
)

const testCalendarID = "clinic@group.calendar.google.com"

func newTestCalendar(t *testing.T, handler http.HandlerFunc) *GoogleCalendar {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := NewGoogleCalendar(context.Background(), Settings{
		CalendarID: testCalendarID,
		TimeZone:   "Asia/Kolkata",
		Timeout:    5 * time.Second,
	}, nil, option.WithEndpoint(srv.URL+"/"), option.WithoutAuthentication(), option.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return g
}

func TestGoogleCalendar_QueryBusy(t *testing.T) {
	var got gcal.FreeBusyRequest
	g := newTestCalendar(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/freeBusy"), r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"calendars":{"` + testCalendarID + `":{"busy":[{"start":"2025-03-10T04:15:00Z","end":"2025-03-10T04:45:00Z"}]}}}`))
	})

	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	busy, err := g.QueryBusy(context.Background(), from, from.Add(24*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, []models.BusySlot{{Start: "2025-03-10T04:15:00Z", End: "2025-03-10T04:45:00Z"}}, busy)
	require.Len(t, got.Items, 1)
	assert.Equal(t, testCalendarID, got.Items[0].Id)
	assert.Equal(t, "2025-03-10T00:00:00Z", got.TimeMin)
	assert.Equal(t, "2025-03-11T00:00:00Z", got.TimeMax)
}

func TestGoogleCalendar_QueryBusy_CalendarError(t *testing.T) {
	g := newTestCalendar(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"calendars":{"` + testCalendarID + `":{"errors":[{"domain":"global","reason":"notFound"}]}}}`))
	})

	_, err := g.QueryBusy(context.Background(), time.Now(), time.Now().Add(time.Hour))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notFound")
}

func TestGoogleCalendar_QueryBusy_Upstream500(t *testing.T) {
	g := newTestCalendar(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":500,"message":"backend error"}}`, http.StatusInternalServerError)
	})

	_, err := g.QueryBusy(context.Background(), time.Now(), time.Now().Add(time.Hour))
	assert.Error(t, err)
}

func TestGoogleCalendar_CreateEvent(t *testing.T) {
	var got gcal.Event
	g := newTestCalendar(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/events"), r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"evt_123","start":{"dateTime":"2025-03-10T10:00:00+05:30","timeZone":"Asia/Kolkata"},"end":{"dateTime":"2025-03-10T10:30:00+05:30","timeZone":"Asia/Kolkata"}}`))
	})

	start := time.Date(2025, 3, 10, 4, 30, 0, 0, time.UTC)
	ev, err := g.CreateEvent(context.Background(), models.EventInput{
		Summary:     "Appointment: Asha",
		Description: "Patient Details:\nName: Asha",
		Interval:    models.TimeInterval{Start: start, End: start.Add(30 * time.Minute)},
	})
	require.NoError(t, err)

	assert.Equal(t, &models.CalendarEvent{
		ID:    "evt_123",
		Start: "2025-03-10T10:00:00+05:30",
		End:   "2025-03-10T10:30:00+05:30",
	}, ev)
	assert.Equal(t, "Appointment: Asha", got.Summary)
	assert.Equal(t, "Asia/Kolkata", got.Start.TimeZone)
	assert.Equal(t, "Asia/Kolkata", got.End.TimeZone)
	assert.Equal(t, "2025-03-10T04:30:00Z", got.Start.DateTime)
	require.NotNil(t, got.Reminders)
	assert.True(t, got.Reminders.UseDefault)
}

func TestNewGoogleCalendar_RequiresCalendarID(t *testing.T) {
	_, err := NewGoogleCalendar(context.Background(), Settings{}, nil, option.WithoutAuthentication())
	assert.Error(t, err)
}
