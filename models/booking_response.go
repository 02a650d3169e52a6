package models

// BookingDetails echoes the confirmed appointment back to the client.
type BookingDetails struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// BookingConfirmation is returned by POST /book and POST /verify-payment.
type BookingConfirmation struct {
	Success       bool           `json:"success"`
	AppointmentID string         `json:"appointmentId"`
	PaymentID     string         `json:"paymentId,omitempty"`
	Details       BookingDetails `json:"details"`
}
