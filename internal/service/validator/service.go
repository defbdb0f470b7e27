package validator

import (
	"sort"
	"strings"

	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
)

// Service валидатор формы бронирования.
// Оборачивает чистую функцию Validate: подставляет текущее время,
// пишет лог и метрики по невалидным полям.
type Service struct {
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewService создает новый экземпляр валидатора
func NewService(metrics Metrics, logger Logger) *Service {
	return &Service{
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// Validate валидирует форму; "сегодня" читается один раз на вызов
func (s *Service) Validate(form domain.ReservationForm) *domain.ValidationResult {
	result := Validate(form, s.timeProvider.Now())

	if result.IsValid {
		s.logger.Info("ValidateReservation: form is valid, date=%s, time=%s, guests=%s",
			form.Date, form.Time, form.Guests)
		return result
	}

	fields := make([]string, 0, len(result.Errors))
	for field := range result.Errors {
		fields = append(fields, field)
		s.metrics.IncValidationFailure(field)
	}
	sort.Strings(fields)

	s.logger.Warn("ValidateReservation: form is invalid, fields=[%s]", strings.Join(fields, ", "))
	return result
}
