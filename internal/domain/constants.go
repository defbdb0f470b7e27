package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default policy values of the mocked backend
const (
	DefaultBookingDelayMs          = 5000
	DefaultBookingFailureThreshold = 0.1 // booking succeeds when the random draw is above it
	DefaultSpecialsDelayMs         = 800
	ReservationIDPrefix            = "RES-"
)

// Reservation form enumerations
const (
	DefaultOpeningTime     = "17:00"
	DefaultClosingTime     = "21:00"
	DefaultSlotStepMinutes = 30
	MaxListedGuests        = 8
	LargePartyGuests       = "8+"
	MinNameLength          = 2
	MinPhoneLength         = 10
)

// Occasion is an optional reason for the visit offered by the form
type Occasion struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Occasions lists the occasions offered by the reservation form.
// The field itself is free-form and never validated.
var Occasions = []Occasion{
	{Value: "birthday", Label: "Birthday"},
	{Value: "anniversary", Label: "Anniversary"},
	{Value: "date", Label: "Date Night"},
	{Value: "business", Label: "Business Dinner"},
	{Value: "celebration", Label: "Celebration"},
	{Value: "other", Label: "Other"},
}
