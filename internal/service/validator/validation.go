package validator

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
)

// Сообщения об ошибках полей формы (показываются гостю как есть)
const (
	MsgDateRequired   = "Date is required"
	MsgDateInPast     = "Please select a future date"
	MsgTimeRequired   = "Time is required"
	MsgGuestsRequired = "Number of guests is required"
	MsgNameRequired   = "Full name is required"
	MsgNameTooShort   = "Name must be at least 2 characters long"
	MsgEmailRequired  = "Email address is required"
	MsgEmailInvalid   = "Please enter a valid email address"
	MsgPhoneRequired  = "Phone number is required"
	MsgPhoneInvalid   = "Please enter a valid phone number"
)

// Пробельные символы формы: ASCII-пробелы, \v, все символы категории Z и BOM.
// В RE2 \s покрывает только [\t\n\f\r ], поэтому класс расширен явно.
var (
	emailPattern    = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)
	phonePattern    = regexp.MustCompile(`^[+]?[1-9][0-9]{0,15}$`)
	phoneSeparators = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}\-()]`)
)

// Validate проверяет форму бронирования относительно текущего момента now.
// Чистая функция: каждое обязательное поле проверяется независимо,
// в Errors попадают все невалидные поля.
func Validate(form domain.ReservationForm, now time.Time) *domain.ValidationResult {
	errs := make(map[string]string)

	if msg, ok := validateDate(form.Date, now); !ok {
		errs[domain.FieldDate] = msg
	}

	if form.Time == "" {
		errs[domain.FieldTime] = MsgTimeRequired
	}

	if form.Guests == "" {
		errs[domain.FieldGuests] = MsgGuestsRequired
	}

	if msg, ok := validateName(form.Name); !ok {
		errs[domain.FieldName] = msg
	}

	if msg, ok := validateEmail(form.Email); !ok {
		errs[domain.FieldEmail] = msg
	}

	if msg, ok := validatePhone(form.Phone); !ok {
		errs[domain.FieldPhone] = msg
	}

	return &domain.ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// validateDate дата обязательна и не может быть раньше сегодняшнего дня.
// Сегодняшняя дата допустима.
func validateDate(value string, now time.Time) (string, bool) {
	if value == "" {
		return MsgDateRequired, false
	}

	date, err := time.ParseInLocation(domain.DateFormat, value, now.Location())
	if err != nil {
		return MsgDateInPast, false
	}

	if isDateInPast(date, now) {
		return MsgDateInPast, false
	}

	return "", true
}

func validateName(value string) (string, bool) {
	trimmed := trimSpace(value)
	if trimmed == "" {
		return MsgNameRequired, false
	}
	if utf8.RuneCountInString(trimmed) < domain.MinNameLength {
		return MsgNameTooShort, false
	}
	return "", true
}

// validateEmail пустота проверяется по обрезанному значению, шаблон - по исходному
func validateEmail(value string) (string, bool) {
	if trimSpace(value) == "" {
		return MsgEmailRequired, false
	}
	if !emailPattern.MatchString(value) {
		return MsgEmailInvalid, false
	}
	return "", true
}

// validatePhone убирает пробелы, дефисы и скобки; ведущий "+" учитывается в длине
func validatePhone(value string) (string, bool) {
	if trimSpace(value) == "" {
		return MsgPhoneRequired, false
	}

	cleaned := phoneSeparators.ReplaceAllString(value, "")
	if !phonePattern.MatchString(cleaned) || len(cleaned) < domain.MinPhoneLength {
		return MsgPhoneInvalid, false
	}

	return "", true
}

// isFormSpace тот же набор пробельных символов, что и в шаблонах выше
func isFormSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF':
		return true
	}
	return unicode.In(r, unicode.Z)
}

func trimSpace(value string) string {
	return strings.TrimFunc(value, isFormSpace)
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
