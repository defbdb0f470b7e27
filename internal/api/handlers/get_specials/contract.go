package get_specials

import (
	"context"

	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
)

type SpecialsService interface {
	GetWeeksSpecials(ctx context.Context) (*domain.SpecialsResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
