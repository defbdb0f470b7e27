package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
)

var testNow = time.Date(2030, time.June, 15, 18, 45, 0, 0, time.Local)

func validForm() domain.ReservationForm {
	return domain.ReservationForm{
		Date:            "2030-06-16",
		Time:            "19:00",
		Guests:          "4",
		Name:            "John Doe",
		Email:           "john@example.com",
		Phone:           "+1234567890",
		Occasion:        "birthday",
		SpecialRequests: "Window seat please",
	}
}

func TestValidate_ValidForm(t *testing.T) {
	result := Validate(validForm(), testNow)

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidate_Date(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr string
	}{
		{name: "tomorrow", date: "2030-06-16"},
		{name: "today is allowed", date: "2030-06-15"},
		{name: "far future", date: "2099-01-01"},
		{name: "missing", date: "", wantErr: MsgDateRequired},
		{name: "yesterday", date: "2030-06-14", wantErr: MsgDateInPast},
		{name: "far past", date: "2000-01-01", wantErr: MsgDateInPast},
		{name: "unparseable", date: "next friday", wantErr: MsgDateInPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.Date = tt.date

			result := Validate(form, testNow)

			if tt.wantErr == "" {
				assert.True(t, result.IsValid)
				assert.NotContains(t, result.Errors, domain.FieldDate)
				return
			}
			assert.False(t, result.IsValid)
			assert.Equal(t, tt.wantErr, result.Errors[domain.FieldDate])
			assert.Len(t, result.Errors, 1)
		})
	}
}

func TestValidate_TodayJustBeforeMidnight(t *testing.T) {
	lateNight := time.Date(2030, time.June, 15, 23, 59, 59, 0, time.Local)
	form := validForm()
	form.Date = "2030-06-15"

	assert.True(t, Validate(form, lateNight).IsValid)
}

func TestValidate_TimeAndGuests(t *testing.T) {
	form := validForm()
	form.Time = ""
	form.Guests = ""

	result := Validate(form, testNow)

	assert.False(t, result.IsValid)
	assert.Equal(t, MsgTimeRequired, result.Errors[domain.FieldTime])
	assert.Equal(t, MsgGuestsRequired, result.Errors[domain.FieldGuests])
	assert.Len(t, result.Errors, 2)

	form = validForm()
	form.Guests = domain.LargePartyGuests
	assert.True(t, Validate(form, testNow).IsValid)
}

func TestValidate_Name(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{name: "full name", value: "John Doe"},
		{name: "exactly two characters", value: "Jo"},
		{name: "two characters with padding", value: "  Jo  "},
		{name: "missing", value: "", wantErr: MsgNameRequired},
		{name: "whitespace only", value: "   ", wantErr: MsgNameRequired},
		{name: "too short", value: "A", wantErr: MsgNameTooShort},
		{name: "too short after trim", value: " A ", wantErr: MsgNameTooShort},
		{name: "unicode spaces only", value: "\u00a0\u2003\ufeff", wantErr: MsgNameRequired},
		{name: "too short after unicode trim", value: "\u00a0A\v", wantErr: MsgNameTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.Name = tt.value

			result := Validate(form, testNow)

			if tt.wantErr == "" {
				assert.NotContains(t, result.Errors, domain.FieldName)
				return
			}
			assert.Equal(t, tt.wantErr, result.Errors[domain.FieldName])
		})
	}
}

func TestValidate_Email(t *testing.T) {
	invalid := []string{
		"invalid-email",
		"test@",
		"@example.com",
		"test@example",
		"test.example.com",
		"test@@example.com",
		"test user@example.com",
		"john\u00a0doe@example.com",
		"john\vdoe@example.com",
		"john@exa\u2003mple.com",
		"john@example.\ufeffcom",
	}
	for _, email := range invalid {
		form := validForm()
		form.Email = email

		result := Validate(form, testNow)

		assert.False(t, result.IsValid, email)
		assert.Equal(t, MsgEmailInvalid, result.Errors[domain.FieldEmail], email)
	}

	valid := []string{
		"test@example.com",
		"user.name@domain.com",
		"user+tag@example.org",
		"firstname.lastname@company.co.uk",
	}
	for _, email := range valid {
		form := validForm()
		form.Email = email

		result := Validate(form, testNow)

		assert.True(t, result.IsValid, email)
		assert.NotContains(t, result.Errors, domain.FieldEmail, email)
	}

	for _, empty := range []string{"", "   ", "\u00a0\v\u3000"} {
		form := validForm()
		form.Email = empty
		assert.Equal(t, MsgEmailRequired, Validate(form, testNow).Errors[domain.FieldEmail])
	}
}

func TestValidate_Phone(t *testing.T) {
	invalid := []string{
		"abc123",
		"++1234567890",
		"0123456789",
		"123-456-789",
		"123456789",
		"123",
	}
	for _, phone := range invalid {
		form := validForm()
		form.Phone = phone

		result := Validate(form, testNow)

		assert.False(t, result.IsValid, phone)
		assert.Equal(t, MsgPhoneInvalid, result.Errors[domain.FieldPhone], phone)
	}

	valid := []string{
		"+1234567890",
		"1234567890",
		"+1 (234) 567-8900",
		"234-567-8900",
		"(234) 567-8900",
		"+44 20 7946 0958",
		"+33 1 42 86 83 26",
		"+1\u00a0234\u00a0567\u00a08900",
		"234\v567\v8900",
		"234\u2009567\u20098900",
	}
	for _, phone := range valid {
		form := validForm()
		form.Phone = phone

		result := Validate(form, testNow)

		assert.True(t, result.IsValid, phone)
		assert.NotContains(t, result.Errors, domain.FieldPhone, phone)
	}

	for _, empty := range []string{"", "   ", "\u00a0\ufeff"} {
		form := validForm()
		form.Phone = empty
		assert.Equal(t, MsgPhoneRequired, Validate(form, testNow).Errors[domain.FieldPhone])
	}
}

func TestValidate_AllRequiredMissing(t *testing.T) {
	form := domain.ReservationForm{Occasion: "birthday", SpecialRequests: "anything"}

	result := Validate(form, testNow)

	assert.False(t, result.IsValid)
	assert.Equal(t, map[string]string{
		domain.FieldDate:   MsgDateRequired,
		domain.FieldTime:   MsgTimeRequired,
		domain.FieldGuests: MsgGuestsRequired,
		domain.FieldName:   MsgNameRequired,
		domain.FieldEmail:  MsgEmailRequired,
		domain.FieldPhone:  MsgPhoneRequired,
	}, result.Errors)
}

func TestValidate_OptionalFieldsNeverFail(t *testing.T) {
	form := validForm()
	form.Occasion = "something not in the list"
	form.SpecialRequests = ""

	assert.True(t, Validate(form, testNow).IsValid)
}

func TestValidate_Idempotent(t *testing.T) {
	form := validForm()
	form.Email = "broken"
	form.Name = "A"

	first := Validate(form, testNow)
	second := Validate(form, testNow)

	assert.Equal(t, first, second)
	assert.Equal(t, "broken", form.Email)
}
