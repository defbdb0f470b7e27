package get_reservation_options

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
	"github.com/m04kA/LittleLemon-ReservationService/pkg/types"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func defaultSchedule() Schedule {
	return Schedule{
		OpeningTime:     domain.DefaultOpeningTime,
		ClosingTime:     domain.DefaultClosingTime,
		SlotStepMinutes: domain.DefaultSlotStepMinutes,
	}
}

func TestExecute_Defaults(t *testing.T) {
	uc := NewUseCase(defaultSchedule(), nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2030, time.March, 5, 23, 59, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2030-03-05", resp.MinDate)
	assert.Equal(t, []types.TimeString{
		"17:00", "17:30", "18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00",
	}, resp.TimeSlots)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "8+"}, resp.GuestOptions)
	assert.Equal(t, domain.Occasions, resp.Occasions)
}

func TestExecute_OccasionsAreCopied(t *testing.T) {
	uc := NewUseCase(defaultSchedule(), nopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	resp.Occasions[0].Label = "changed"

	assert.Equal(t, "Birthday", domain.Occasions[0].Label)
}

func TestGenerateTimeSlots(t *testing.T) {
	tests := []struct {
		name     string
		schedule Schedule
		want     []types.TimeString
		wantErr  error
	}{
		{
			name:     "шаг не кратен интервалу",
			schedule: Schedule{OpeningTime: "17:00", ClosingTime: "18:00", SlotStepMinutes: 25},
			want:     []types.TimeString{"17:00", "17:25", "17:50"},
		},
		{
			name:     "открытие равно закрытию",
			schedule: Schedule{OpeningTime: "19:00", ClosingTime: "19:00", SlotStepMinutes: 30},
			want:     []types.TimeString{"19:00"},
		},
		{
			name:     "последний слот перед полуночью",
			schedule: Schedule{OpeningTime: "23:00", ClosingTime: "23:30", SlotStepMinutes: 30},
			want:     []types.TimeString{"23:00", "23:30"},
		},
		{
			name:     "нулевой шаг",
			schedule: Schedule{OpeningTime: "17:00", ClosingTime: "21:00", SlotStepMinutes: 0},
			wantErr:  ErrInvalidSchedule,
		},
		{
			name:     "закрытие раньше открытия",
			schedule: Schedule{OpeningTime: "21:00", ClosingTime: "17:00", SlotStepMinutes: 30},
			wantErr:  ErrInvalidSchedule,
		},
		{
			name:     "некорректное время",
			schedule: Schedule{OpeningTime: "5pm", ClosingTime: "21:00", SlotStepMinutes: 30},
			wantErr:  ErrInvalidSchedule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := generateTimeSlots(tt.schedule)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, slots)
		})
	}
}
