package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ISOLayout is the YYYY-MM-DD layout used for every date that leaves the picker
const ISOLayout = "2006-01-02"

// ErrInvalidDate is returned when a string is not a valid ISO calendar date
var ErrInvalidDate = errors.New("invalid calendar date")

// Date is a calendar day with no time-of-day or timezone component
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the date for year/month/day, normalizing overflow the way
// time.Date does (New(2024, 2, 30) is 2024-03-01)
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar day of t in t's own location
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current local calendar day
func Today() Date {
	return FromTime(time.Now())
}

// Parse parses a YYYY-MM-DD string
func Parse(s string) (Date, error) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return FromTime(t), nil
}

// Time returns midnight UTC of the date. UTC keeps day arithmetic free of DST gaps.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week, Sunday = 0
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsWeekend reports whether the date falls on a Saturday or Sunday
func (d Date) IsWeekend() bool {
	return IsWeekend(d)
}

// AddDays returns the date n days later (or earlier for negative n)
func (d Date) AddDays(n int) Date {
	return New(d.Year, d.Month, d.Day+n)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

// Before reports whether d is strictly earlier than o
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool { return d == Date{} }

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsWeekend reports whether d is a Saturday or Sunday
func IsWeekend(d Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MonthTitle formats a month header such as "March 2024"
func MonthTitle(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month.String(), year)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
