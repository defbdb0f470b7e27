package submit_reservation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
)

// mockValidator возвращает заранее заданный результат
type mockValidator struct {
	result *domain.ValidationResult
	calls  int
}

func (m *mockValidator) Validate(form domain.ReservationForm) *domain.ValidationResult {
	m.calls++
	return m.result
}

// mockBookingService запоминает вызовы и возвращает заданный результат
type mockBookingService struct {
	result *domain.BookingResult
	err    error
	calls  int
	form   domain.ReservationForm
}

func (m *mockBookingService) Submit(ctx context.Context, form domain.ReservationForm) (*domain.BookingResult, error) {
	m.calls++
	m.form = form
	return m.result, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validForm() domain.ReservationForm {
	return domain.ReservationForm{
		Date:            "2030-08-10",
		Time:            "19:00",
		Guests:          "4",
		Name:            "John Doe",
		Email:           "john@example.com",
		Phone:           "+1234567890",
		Occasion:        "anniversary",
		SpecialRequests: "Window seat",
	}
}

func validResult() *domain.ValidationResult {
	return &domain.ValidationResult{IsValid: true, Errors: map[string]string{}}
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name       string
		validation *domain.ValidationResult
		booking    *domain.BookingResult
		bookingErr error

		wantOutcome      domain.SubmissionState
		wantStates       []domain.SubmissionState
		wantBookingCalls int
		wantDialog       *Dialog
		wantReset        bool
		wantErrors       map[string]string
	}{
		{
			name: "невалидная форма не отправляется",
			validation: &domain.ValidationResult{
				IsValid: false,
				Errors:  map[string]string{domain.FieldEmail: "Please enter a valid email address"},
			},
			wantOutcome:      domain.StateInvalid,
			wantStates:       []domain.SubmissionState{domain.StateIdle, domain.StateValidating, domain.StateInvalid},
			wantBookingCalls: 0,
			wantErrors:       map[string]string{domain.FieldEmail: "Please enter a valid email address"},
		},
		{
			name:       "успешная бронь",
			validation: validResult(),
			booking: &domain.BookingResult{
				Success:       true,
				Message:       "Reservation booked successfully!",
				ReservationID: "RES-1700000000000",
			},
			wantOutcome:      domain.StateSucceeded,
			wantStates:       []domain.SubmissionState{domain.StateIdle, domain.StateValidating, domain.StateSubmitting, domain.StateSucceeded, domain.StateIdle},
			wantBookingCalls: 1,
			wantDialog: &Dialog{
				Success:       true,
				Title:         TitleConfirmed,
				Message:       "Reservation booked successfully!",
				ReservationID: "RES-1700000000000",
			},
			wantReset:  true,
			wantErrors: map[string]string{},
		},
		{
			name:       "слот недоступен",
			validation: validResult(),
			booking: &domain.BookingResult{
				Success: false,
				Message: "Sorry, this time slot is not available. Please try a different time.",
			},
			wantOutcome:      domain.StateFailed,
			wantStates:       []domain.SubmissionState{domain.StateIdle, domain.StateValidating, domain.StateSubmitting, domain.StateFailed},
			wantBookingCalls: 1,
			wantDialog: &Dialog{
				Success: false,
				Title:   TitleFailed,
				Message: "Sorry, this time slot is not available. Please try a different time.",
			},
		},
		{
			name:             "сбой сервиса бронирования",
			validation:       validResult(),
			bookingErr:       errors.New("backend unreachable"),
			wantOutcome:      domain.StateFailed,
			wantStates:       []domain.SubmissionState{domain.StateIdle, domain.StateValidating, domain.StateSubmitting, domain.StateFailed},
			wantBookingCalls: 1,
			wantDialog: &Dialog{
				Success: false,
				Title:   TitleError,
				Message: MsgSubmitError,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := &mockValidator{result: tt.validation}
			booking := &mockBookingService{result: tt.booking, err: tt.bookingErr}
			uc := NewUseCase(validator, booking, nopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{Form: validForm()})
			require.NoError(t, err)

			assert.Equal(t, tt.wantOutcome, resp.Outcome)
			assert.True(t, resp.Outcome.IsTerminal())
			assert.Equal(t, tt.wantStates, resp.States)
			assert.Equal(t, 1, validator.calls)
			assert.Equal(t, tt.wantBookingCalls, booking.calls)
			assert.Equal(t, tt.wantDialog, resp.Dialog)
			assert.Equal(t, tt.wantReset, resp.Reset)
			assert.Equal(t, tt.wantErrors, resp.Errors)

			if tt.wantReset {
				assert.True(t, resp.Form.IsEmpty())
			} else {
				assert.Equal(t, validForm(), resp.Form)
			}
		})
	}
}

func TestExecute_FormPassedToBookingUnchanged(t *testing.T) {
	booking := &mockBookingService{result: &domain.BookingResult{Success: true, Message: "ok", ReservationID: "RES-1"}}
	uc := NewUseCase(&mockValidator{result: validResult()}, booking, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Form: validForm()})
	require.NoError(t, err)

	assert.Equal(t, validForm(), booking.form)
}

func TestExecute_SuccessReturnsToIdle(t *testing.T) {
	booking := &mockBookingService{result: &domain.BookingResult{Success: true, Message: "ok", ReservationID: "RES-1"}}
	uc := NewUseCase(&mockValidator{result: validResult()}, booking, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Form: validForm()})
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(resp.States), 2)
	last := resp.States[len(resp.States)-1]
	assert.Equal(t, domain.StateIdle, last)
	assert.Equal(t, domain.StateSucceeded, resp.States[len(resp.States)-2])
	assert.Equal(t, domain.StateSucceeded, resp.Outcome)
	assert.True(t, resp.Reset)
	assert.True(t, resp.Form.IsEmpty())

	for i := 1; i < len(resp.States); i++ {
		assert.True(t, resp.States[i-1].CanTransitionTo(resp.States[i]), "%s -> %s", resp.States[i-1], resp.States[i])
	}
}

func TestExecute_NilRequest(t *testing.T) {
	uc := NewUseCase(&mockValidator{result: validResult()}, &mockBookingService{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), nil)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStateTracker_RejectsIllegalTransition(t *testing.T) {
	tracker := newStateTracker()

	err := tracker.moveTo(domain.StateSubmitting)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, domain.StateIdle, tracker.current())

	require.NoError(t, tracker.moveTo(domain.StateValidating))
	assert.ErrorIs(t, tracker.moveTo(domain.StateSucceeded), ErrInvalidTransition)
}
