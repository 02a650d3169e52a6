package models

// BookingRequest is the patient-facing booking form. It lives only for the
// duration of one request.
type BookingRequest struct {
	Start          string     `json:"start"`
	End            string     `json:"end"`
	Name           string     `json:"name"`
	Mobile         FlexString `json:"mobile"`
	Age            FlexString `json:"age"`
	Email          string     `json:"email"`
	AdditionalNote string     `json:"additionalNote"`
	SelectedOption string     `json:"selectedOption"`
}

// EventInput is what the booking flow asks the calendar to create.
type EventInput struct {
	Summary     string
	Description string
	Interval    TimeInterval
}

// CalendarEvent is the calendar's view of a created event. Start and End are
// the canonical values reported back by the calendar.
type CalendarEvent struct {
	ID    string
	Start string
	End   string
}
