package submit_reservation

import (
	"context"
	"fmt"

	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
)

// UseCase use case отправки формы бронирования:
// валидация -> бронирование -> диалог результата
type UseCase struct {
	validator      Validator
	bookingService BookingService
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(validator Validator, bookingService BookingService, logger Logger) *UseCase {
	return &UseCase{
		validator:      validator,
		bookingService: bookingService,
		logger:         logger,
	}
}

// Execute выполняет одну попытку отправки формы.
// Ошибка возвращается только при нарушении автомата состояний;
// сбой сервиса бронирования превращается в диалог "Error".
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}

	form := req.Form
	tracker := newStateTracker()

	uc.logger.Info("SubmitReservation: date=%s, time=%s, guests=%s", form.Date, form.Time, form.Guests)

	// 1. Валидация
	if err := tracker.moveTo(domain.StateValidating); err != nil {
		return nil, err
	}

	validation := uc.validator.Validate(form)
	if !validation.IsValid {
		if err := tracker.moveTo(domain.StateInvalid); err != nil {
			return nil, err
		}
		uc.logger.Warn("SubmitReservation: form is invalid, %d field errors", len(validation.Errors))

		// Сервис бронирования не вызывается, форма возвращается как есть
		return &Response{
			Outcome: tracker.current(),
			States:  tracker.trail(),
			Form:    form,
			Errors:  validation.Errors,
		}, nil
	}

	// 2. Отправка в сервис бронирования
	if err := tracker.moveTo(domain.StateSubmitting); err != nil {
		return nil, err
	}

	result, err := uc.bookingService.Submit(ctx, form)
	if err != nil {
		if err := tracker.moveTo(domain.StateFailed); err != nil {
			return nil, err
		}
		uc.logger.Error("SubmitReservation: booking service failed: %v", err)

		return &Response{
			Outcome: tracker.current(),
			States:  tracker.trail(),
			Form:    form,
			Dialog: &Dialog{
				Success: false,
				Title:   TitleError,
				Message: MsgSubmitError,
			},
		}, nil
	}

	// 3. Бронь отклонена
	if !result.Success {
		if err := tracker.moveTo(domain.StateFailed); err != nil {
			return nil, err
		}
		uc.logger.Warn("SubmitReservation: booking rejected: %s", result.Message)

		return &Response{
			Outcome: tracker.current(),
			States:  tracker.trail(),
			Form:    form,
			Dialog: &Dialog{
				Success: false,
				Title:   TitleFailed,
				Message: result.Message,
			},
		}, nil
	}

	// 4. Бронь подтверждена
	if err := tracker.moveTo(domain.StateSucceeded); err != nil {
		return nil, err
	}
	uc.logger.Info("SubmitReservation: reservation %s confirmed", result.ReservationID)

	// 5. Очистка формы и возврат в idle
	outcome := tracker.current()
	form.Reset()
	if err := tracker.moveTo(domain.StateIdle); err != nil {
		return nil, err
	}

	return &Response{
		Outcome: outcome,
		States:  tracker.trail(),
		Form:    form,
		Errors:  map[string]string{},
		Dialog: &Dialog{
			Success:       true,
			Title:         TitleConfirmed,
			Message:       result.Message,
			ReservationID: result.ReservationID,
		},
		Reset: true,
	}, nil
}

// stateTracker ведет состояние одной попытки отправки
type stateTracker struct {
	states []domain.SubmissionState
}

func newStateTracker() *stateTracker {
	return &stateTracker{states: []domain.SubmissionState{domain.StateIdle}}
}

func (t *stateTracker) current() domain.SubmissionState {
	return t.states[len(t.states)-1]
}

func (t *stateTracker) moveTo(next domain.SubmissionState) error {
	if !t.current().CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.current(), next)
	}
	t.states = append(t.states, next)
	return nil
}

func (t *stateTracker) trail() []domain.SubmissionState {
	trail := make([]domain.SubmissionState, len(t.states))
	copy(trail, t.states)
	return trail
}
