package get_reservation_options

import (
	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
	getReservationOptions "github.com/m04kA/LittleLemon-ReservationService/internal/usecase/get_reservation_options"
)

// OptionsResponse HTTP response model
type OptionsResponse struct {
	MinDate      string            `json:"minDate"`
	TimeSlots    []string          `json:"timeSlots"`
	GuestOptions []string          `json:"guestOptions"`
	Occasions    []domain.Occasion `json:"occasions"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getReservationOptions.Response) *OptionsResponse {
	slots := make([]string, len(resp.TimeSlots))
	for i, slot := range resp.TimeSlots {
		slots[i] = slot.String()
	}

	return &OptionsResponse{
		MinDate:      resp.MinDate,
		TimeSlots:    slots,
		GuestOptions: resp.GuestOptions,
		Occasions:    resp.Occasions,
	}
}
