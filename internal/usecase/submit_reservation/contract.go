package submit_reservation

import (
	"context"

	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
)

// Validator интерфейс валидатора формы
type Validator interface {
	Validate(form domain.ReservationForm) *domain.ValidationResult
}

// BookingService интерфейс сервиса бронирования
type BookingService interface {
	Submit(ctx context.Context, form domain.ReservationForm) (*domain.BookingResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
