package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type mockMetrics struct {
	failures map[string]int
}

func (m *mockMetrics) IncValidationFailure(field string) {
	if m.failures == nil {
		m.failures = make(map[string]int)
	}
	m.failures[field]++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(now time.Time) (*Service, *mockMetrics) {
	metrics := &mockMetrics{}
	svc := NewService(metrics, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc, metrics
}

func TestService_Validate_UsesTimeProvider(t *testing.T) {
	form := validForm()
	form.Date = "2030-06-15"

	svc, _ := newTestService(testNow)
	assert.True(t, svc.Validate(form).IsValid)

	svc, _ = newTestService(testNow.AddDate(0, 0, 1))
	result := svc.Validate(form)
	assert.False(t, result.IsValid)
	assert.Equal(t, MsgDateInPast, result.Errors[domain.FieldDate])
}

func TestService_Validate_CountsFailedFields(t *testing.T) {
	svc, metrics := newTestService(testNow)

	form := validForm()
	form.Email = ""
	form.Phone = "0123456789"

	svc.Validate(form)
	svc.Validate(form)

	assert.Equal(t, map[string]int{
		domain.FieldEmail: 2,
		domain.FieldPhone: 2,
	}, metrics.failures)
}

func TestService_Validate_ValidFormRecordsNothing(t *testing.T) {
	svc, metrics := newTestService(testNow)

	assert.True(t, svc.Validate(validForm()).IsValid)
	assert.Empty(t, metrics.failures)
}
