package models

// BusySlot is a busy period exactly as the calendar reports it.
// The timestamps are RFC 3339 strings and are passed to clients verbatim.
type BusySlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
