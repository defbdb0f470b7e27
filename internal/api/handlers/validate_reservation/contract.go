package validate_reservation

import "github.com/m04kA/LittleLemon-ReservationService/internal/domain"

type Validator interface {
	Validate(form domain.ReservationForm) *domain.ValidationResult
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
