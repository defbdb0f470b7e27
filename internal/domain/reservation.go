package domain

import "strings"

// Field names of the reservation form, as used in validation error maps.
const (
	FieldDate            = "date"
	FieldTime            = "time"
	FieldGuests          = "guests"
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldOccasion        = "occasion"
	FieldSpecialRequests = "specialRequests"
)

// RequiredFields lists the form fields that must be filled in, in form order.
var RequiredFields = []string{
	FieldDate,
	FieldTime,
	FieldGuests,
	FieldName,
	FieldEmail,
	FieldPhone,
}

// ReservationForm represents the table reservation form as entered by a guest
type ReservationForm struct {
	Date            string `json:"date"`   // YYYY-MM-DD
	Time            string `json:"time"`   // HH:MM, half-hour slot
	Guests          string `json:"guests"` // "1".."8" or "8+"
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Occasion        string `json:"occasion"`
	SpecialRequests string `json:"specialRequests"`
}

// Value returns the raw value of the named field.
func (f *ReservationForm) Value(field string) string {
	switch field {
	case FieldDate:
		return f.Date
	case FieldTime:
		return f.Time
	case FieldGuests:
		return f.Guests
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldPhone:
		return f.Phone
	case FieldOccasion:
		return f.Occasion
	case FieldSpecialRequests:
		return f.SpecialRequests
	default:
		return ""
	}
}

// MissingRequired returns required fields whose raw value is empty.
// Whitespace-only values are not considered missing here.
func (f *ReservationForm) MissingRequired() []string {
	missing := make([]string, 0)
	for _, field := range RequiredFields {
		if f.Value(field) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// IsEmpty returns true if no field has been filled in
func (f *ReservationForm) IsEmpty() bool {
	return strings.TrimSpace(f.Date+f.Time+f.Guests+f.Name+f.Email+f.Phone+f.Occasion+f.SpecialRequests) == ""
}

// Reset clears every field of the form
func (f *ReservationForm) Reset() {
	*f = ReservationForm{}
}

// ValidationResult is the outcome of validating a reservation form
type ValidationResult struct {
	IsValid bool              `json:"isValid"`
	Errors  map[string]string `json:"errors"`
}

// BookingDetails echoes the booked reservation back to the guest
type BookingDetails struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests string `json:"guests"`
}

// BookingResult is the outcome of a booking submission.
// ReservationID and Details are set only when Success is true.
type BookingResult struct {
	Success       bool            `json:"success"`
	Message       string          `json:"message"`
	ReservationID string          `json:"reservationId,omitempty"`
	Details       *BookingDetails `json:"details,omitempty"`
}
