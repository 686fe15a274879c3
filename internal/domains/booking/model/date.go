package model

import (
	"fmt"
	"pororo/shared/constant"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// Date is a calendar day. It is always held at midnight UTC so that the
// difference between two dates is a whole number of days.
type Date struct {
	t time.Time
}

// ParseDate parses text in the exact DD/MM/YYYY form.
func ParseDate(text string) (Date, error) {
	t, err := time.Parse(constant.StayDateLayout, text)
	if err != nil {
		return Date{}, fmt.Errorf("%q: %w", text, ErrInvalidDate)
	}

	return Date{t: t}, nil
}

// NewDate builds a Date from its parts. Out of range parts are normalised the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Time() time.Time {
	return d.t
}

// String renders the date as DD/MM/YYYY.
func (d Date) String() string {
	return d.t.Format(constant.StayDateLayout)
}

// NightsBetween returns the number of nights from checkIn to checkOut.
// It is zero or negative when checkOut is not after checkIn.
func NightsBetween(checkIn, checkOut Date) int {
	return int((checkOut.t.Unix() - checkIn.t.Unix()) / secondsPerDay)
}
