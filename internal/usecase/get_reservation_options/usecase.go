package get_reservation_options

import (
	"context"

	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
)

// UseCase use case получения значений для полей формы бронирования
type UseCase struct {
	schedule     Schedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(schedule Schedule, logger Logger) *UseCase {
	return &UseCase{
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает слоты времени, варианты числа гостей, поводы и минимальную дату
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	slots, err := generateTimeSlots(uc.schedule)
	if err != nil {
		uc.logger.Error("GetReservationOptions: failed to generate slots: %v", err)
		return nil, err
	}

	occasions := make([]domain.Occasion, len(domain.Occasions))
	copy(occasions, domain.Occasions)

	minDate := uc.timeProvider.Now().Format(domain.DateFormat)

	uc.logger.Info("GetReservationOptions: %d slots from %s to %s, minDate=%s",
		len(slots), uc.schedule.OpeningTime, uc.schedule.ClosingTime, minDate)

	return &Response{
		MinDate:      minDate,
		TimeSlots:    slots,
		GuestOptions: generateGuestOptions(),
		Occasions:    occasions,
	}, nil
}
