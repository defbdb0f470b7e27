package create_reservation

import (
	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
	submitReservation "github.com/m04kA/LittleLemon-ReservationService/internal/usecase/submit_reservation"
)

// ReservationRequest HTTP request model
type ReservationRequest struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          string `json:"guests"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Occasion        string `json:"occasion"`
	SpecialRequests string `json:"specialRequests"`
}

// SubmissionResponse HTTP response model
type SubmissionResponse struct {
	Status string                 `json:"status"`           // invalid, succeeded, failed
	Errors map[string]string      `json:"errors,omitempty"` // только для invalid
	Dialog *DialogResponse        `json:"dialog,omitempty"`
	Form   domain.ReservationForm `json:"form"`
	Reset  bool                   `json:"reset"`
}

// DialogResponse HTTP model of the result dialog
type DialogResponse struct {
	Success       bool   `json:"success"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	ReservationID string `json:"reservationId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReservationRequest) ToUseCaseRequest() *submitReservation.Request {
	return &submitReservation.Request{
		Form: domain.ReservationForm{
			Date:            r.Date,
			Time:            r.Time,
			Guests:          r.Guests,
			Name:            r.Name,
			Email:           r.Email,
			Phone:           r.Phone,
			Occasion:        r.Occasion,
			SpecialRequests: r.SpecialRequests,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitReservation.Response) *SubmissionResponse {
	result := &SubmissionResponse{
		Status: string(resp.Outcome),
		Errors: resp.Errors,
		Form:   resp.Form,
		Reset:  resp.Reset,
	}

	if resp.Dialog != nil {
		result.Dialog = &DialogResponse{
			Success:       resp.Dialog.Success,
			Title:         resp.Dialog.Title,
			Message:       resp.Dialog.Message,
			ReservationID: resp.Dialog.ReservationID,
		}
	}

	return result
}
