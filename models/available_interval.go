package models

import "time"

// TimeInterval is a half-open [Start, End) range. It is used both for busy
// periods reported by the calendar and for a candidate booking.
type TimeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
