package get_reservation_options

import (
	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
	"github.com/m04kA/LittleLemon-ReservationService/pkg/types"
)

// Schedule часы приема брони
type Schedule struct {
	OpeningTime     types.TimeString // Первый слот (например, "17:00")
	ClosingTime     types.TimeString // Последний слот включительно (например, "21:00")
	SlotStepMinutes int              // Шаг между слотами
}

// Response модель ответа со значениями для полей формы
type Response struct {
	MinDate      string             // Самая ранняя допустимая дата (сегодня), YYYY-MM-DD
	TimeSlots    []types.TimeString // Допустимые значения поля time
	GuestOptions []string           // Допустимые значения поля guests
	Occasions    []domain.Occasion  // Варианты поля occasion
}
