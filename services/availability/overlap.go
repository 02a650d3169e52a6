// Package availability decides whether a candidate interval collides with
// busy periods reported by the calendar.
package availability

import (
	"fmt"
	"time"

	"careconnect/models"
)

// IntervalError is returned when a timestamp cannot be parsed.
type IntervalError struct {
	Field string
	Value string
	Err   error
}

func (e *IntervalError) Error() string {
	return fmt.Sprintf("invalid %s timestamp %q: %v", e.Field, e.Value, e.Err)
}

func (e *IntervalError) Unwrap() error {
	return e.Err
}

// ParseTimestamp parses an RFC 3339 timestamp, with or without fractional
// seconds.
func ParseTimestamp(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, &IntervalError{Field: field, Value: value, Err: err}
	}
	return t, nil
}

// ParseInterval builds a candidate interval from client-supplied timestamps.
// Zero-length and inverted intervals are not rejected.
func ParseInterval(start, end string) (models.TimeInterval, error) {
	s, err := ParseTimestamp("start", start)
	if err != nil {
		return models.TimeInterval{}, err
	}
	e, err := ParseTimestamp("end", end)
	if err != nil {
		return models.TimeInterval{}, err
	}
	return models.TimeInterval{Start: s, End: e}, nil
}

// ParseBusy converts the calendar's busy slots into intervals.
func ParseBusy(slots []models.BusySlot) ([]models.TimeInterval, error) {
	intervals := make([]models.TimeInterval, 0, len(slots))
	for _, slot := range slots {
		iv, err := ParseInterval(slot.Start, slot.End)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}

// Overlaps reports whether a and b intersect as half-open intervals.
func Overlaps(a, b models.TimeInterval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// IsSlotAvailable returns true iff no busy interval overlaps the candidate.
func IsSlotAvailable(candidate models.TimeInterval, busy []models.TimeInterval) bool {
	for _, b := range busy {
		if Overlaps(candidate, b) {
			return false
		}
	}
	return true
}
