package get_reservation_options

import (
	"fmt"
	"strconv"

	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
	"github.com/m04kA/LittleLemon-ReservationService/pkg/types"
)

// generateTimeSlots генерирует слоты от открытия до закрытия включительно с фиксированным шагом.
// Последний слот может совпадать со временем закрытия: это время посадки, а не окончания ужина.
func generateTimeSlots(schedule Schedule) ([]types.TimeString, error) {
	if schedule.SlotStepMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot step must be positive, got %d", ErrInvalidSchedule, schedule.SlotStepMinutes)
	}

	if err := schedule.OpeningTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: opening time: %v", ErrInvalidSchedule, err)
	}
	if err := schedule.ClosingTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: closing time: %v", ErrInvalidSchedule, err)
	}
	if schedule.ClosingTime.IsBefore(schedule.OpeningTime) {
		return nil, fmt.Errorf("%w: closing time %s is before opening time %s",
			ErrInvalidSchedule, schedule.ClosingTime, schedule.OpeningTime)
	}

	slots := make([]types.TimeString, 0)
	current := schedule.OpeningTime

	for !current.IsAfter(schedule.ClosingTime) {
		slots = append(slots, current)

		next, err := current.AddMinutes(schedule.SlotStepMinutes)
		if err != nil {
			// Следующий слот перешел бы через полночь
			break
		}
		current = next
	}

	return slots, nil
}

// generateGuestOptions возвращает "1".."8" и "8+" для больших компаний
func generateGuestOptions() []string {
	options := make([]string, 0, domain.MaxListedGuests+1)
	for i := 1; i <= domain.MaxListedGuests; i++ {
		options = append(options, strconv.Itoa(i))
	}
	return append(options, domain.LargePartyGuests)
}
