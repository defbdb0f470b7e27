package get_reservation_options

import (
	"context"

	getReservationOptions "github.com/m04kA/LittleLemon-ReservationService/internal/usecase/get_reservation_options"
)

type GetReservationOptionsUseCase interface {
	Execute(ctx context.Context) (*getReservationOptions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
