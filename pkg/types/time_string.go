package types

import (
	"errors"
	"fmt"
	"time"
)

const timeLayout = "15:04"

const minutesInDay = 24 * 60

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, если результат сложения выходит за пределы суток
	ErrTimeOverflow = errors.New("time string overflows the day")
)

// TimeString time of day in "HH:MM" form, e.g. "17:30".
type TimeString string

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses "HH:MM".
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

func (t TimeString) String() string {
	return string(t)
}

func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the "HH:MM" format.
func (t TimeString) Validate() error {
	if len(t) != len(timeLayout) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes returns minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns t shifted by minutes; the result must stay within the same day.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total := current + minutes
	if total < 0 || total >= minutesInDay {
		return "", fmt.Errorf("%w: %s%+d min", ErrTimeOverflow, t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	return errA == nil && errB == nil && a < b
}

func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	return errA == nil && errB == nil && a > b
}
