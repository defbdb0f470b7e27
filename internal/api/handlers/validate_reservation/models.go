package validate_reservation

import "github.com/m04kA/LittleLemon-ReservationService/internal/domain"

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

// ValidationResponse HTTP response model
type ValidationResponse struct {
	IsValid bool              `json:"isValid"`
	Errors  map[string]string `json:"errors"`
}

// ToDomain конвертирует HTTP запрос в форму бронирования
func (r *ReservationRequest) ToDomain() domain.ReservationForm {
	return domain.ReservationForm{
		Date:            r.Date,
		Time:            r.Time,
		Guests:          r.Guests,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Occasion:        r.Occasion,
		SpecialRequests: r.SpecialRequests,
	}
}

// FromDomain конвертирует результат валидации в HTTP response
func FromDomain(result *domain.ValidationResult) *ValidationResponse {
	errs := result.Errors
	if errs == nil {
		errs = map[string]string{}
	}
	return &ValidationResponse{
		IsValid: result.IsValid,
		Errors:  errs,
	}
}
