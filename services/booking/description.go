package booking

import (
	"fmt"
	"strings"

	"careconnect/models"
)

func eventSummary(req models.BookingRequest) string {
	return "Appointment: " + req.Name
}

// eventDescription renders the patient block shown on the calendar event.
// A non-empty paymentID is appended for audit.
func eventDescription(req models.BookingRequest, paymentID string) string {
	var b strings.Builder
	b.WriteString("Patient Details:\n")
	fmt.Fprintf(&b, "Name: %s\n", req.Name)
	fmt.Fprintf(&b, "Phone: %s\n", req.Mobile)
	fmt.Fprintf(&b, "Age: %s\n", req.Age)
	fmt.Fprintf(&b, "First Appointment: %s\n", req.SelectedOption)
	fmt.Fprintf(&b, "Additional Note: %s\n", req.AdditionalNote)
	fmt.Fprintf(&b, "Email: %s", req.Email)
	if paymentID != "" {
		fmt.Fprintf(&b, "\nPayment ID: %s", paymentID)
	}
	return b.String()
}
