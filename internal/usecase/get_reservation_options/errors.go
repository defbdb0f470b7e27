package get_reservation_options

import "errors"

var (
	// ErrInvalidSchedule возвращается при некорректных часах работы или шаге слотов
	ErrInvalidSchedule = errors.New("get_reservation_options: invalid schedule")
)
