package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
)

// Сообщения результата бронирования (показываются гостю как есть)
const (
	MsgBooked          = "Reservation booked successfully!"
	MsgMissingRequired = "Please fill in all required fields"
	MsgSlotUnavailable = "Sorry, this time slot is not available. Please try a different time."
)

// Исходы бронирования для метрик
const (
	OutcomeConfirmed   = "confirmed"
	OutcomeRejected    = "rejected"
	OutcomeUnavailable = "unavailable"
)

// Config политика имитации бэкенда бронирования
type Config struct {
	Delay            time.Duration // искусственная задержка перед ответом
	FailureThreshold float64       // бронь подтверждается, если случайное число > порога
}

// DefaultConfig значения по умолчанию
func DefaultConfig() Config {
	return Config{
		Delay:            domain.DefaultBookingDelayMs * time.Millisecond,
		FailureThreshold: domain.DefaultBookingFailureThreshold,
	}
}

// Service имитация сервиса бронирования столиков.
// Реальной проверки доступности нет: исход определяется случайным числом.
type Service struct {
	cfg          Config
	timeProvider TimeProvider
	sleeper      Sleeper
	random       RandomSource
	metrics      Metrics
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирования
func NewService(cfg Config, random RandomSource, metrics Metrics, logger Logger) *Service {
	if random == nil {
		random = &GlobalRandomSource{}
	}
	return &Service{
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		sleeper:      &RealSleeper{},
		random:       random,
		metrics:      metrics,
		logger:       logger,
	}
}

// Submit отправляет бронь.
//
// Порядок фиксирован: сначала всегда выдерживается задержка (даже для неполной формы),
// затем грубая проверка обязательных полей, затем имитация проверки доступности.
// Отмена через ctx не поддерживается: начатая задержка доигрывается до конца.
// Все исходы возвращаются данными в BookingResult; error зарезервирован для инфраструктурных сбоев.
func (s *Service) Submit(ctx context.Context, form domain.ReservationForm) (*domain.BookingResult, error) {
	s.logger.Info("SubmitBooking: date=%s, time=%s, guests=%s, delay=%s",
		form.Date, form.Time, form.Guests, s.cfg.Delay)

	// 1. Имитация сетевой задержки
	s.sleeper.Sleep(s.cfg.Delay)

	// 2. Поверхностная проверка: только наличие значений, без правил валидатора
	if missing := form.MissingRequired(); len(missing) > 0 {
		s.logger.Warn("SubmitBooking: rejected, missing fields=[%s]", strings.Join(missing, ", "))
		s.metrics.IncBooking(OutcomeRejected)
		return &domain.BookingResult{
			Success: false,
			Message: MsgMissingRequired,
		}, nil
	}

	// 3. Имитация проверки доступности
	draw := s.random.Float64()
	if draw <= s.cfg.FailureThreshold {
		s.logger.Warn("SubmitBooking: slot unavailable, date=%s, time=%s (draw=%.3f)", form.Date, form.Time, draw)
		s.metrics.IncBooking(OutcomeUnavailable)
		return &domain.BookingResult{
			Success: false,
			Message: MsgSlotUnavailable,
		}, nil
	}

	// 4. Бронь подтверждена
	reservationID := fmt.Sprintf("%s%d", domain.ReservationIDPrefix, s.timeProvider.Now().UnixMilli())

	s.logger.Info("SubmitBooking: reservation %s confirmed, date=%s, time=%s, guests=%s",
		reservationID, form.Date, form.Time, form.Guests)
	s.metrics.IncBooking(OutcomeConfirmed)

	return &domain.BookingResult{
		Success:       true,
		Message:       MsgBooked,
		ReservationID: reservationID,
		Details: &domain.BookingDetails{
			Name:   form.Name,
			Date:   form.Date,
			Time:   form.Time,
			Guests: form.Guests,
		},
	}, nil
}
