package submit_reservation

import "errors"

var (
	// ErrInvalidTransition возвращается при недопустимом переходе между состояниями отправки
	ErrInvalidTransition = errors.New("submit_reservation: invalid state transition")

	// ErrInvalidInput возвращается при отсутствии запроса
	ErrInvalidInput = errors.New("submit_reservation: invalid input data")
)
