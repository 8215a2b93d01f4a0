package calendar

import (
	"iter"
	"time"
)

// DaysIn returns the number of days in the month. Day 0 of the following
// month is the last day of this one, so leap years need no table.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthDays yields every date of the month from the 1st to the last day.
// The sequence holds no state and can be ranged over any number of times.
func MonthDays(year int, month time.Month) iter.Seq[Date] {
	first := New(year, month, 1)
	return Days(first, New(first.Year, first.Month, DaysIn(first.Year, first.Month)))
}

// Days yields every date from from to to inclusive. Nothing is yielded when from is after to.
func Days(from, to Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := from; !d.After(to); d = d.AddDays(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// WeekendsBetween returns the Saturdays and Sundays from from to to inclusive, in order
func WeekendsBetween(from, to Date) []Date {
	var weekends []Date
	for d := range Days(from, to) {
		if IsWeekend(d) {
			weekends = append(weekends, d)
		}
	}
	return weekends
}

// LeadingBlanks returns how many empty cells precede the 1st of the month in
// a grid whose rows begin on weekStart
func LeadingBlanks(year int, month time.Month, weekStart time.Weekday) int {
	first := New(year, month, 1).Weekday()
	return (int(first) - int(weekStart) + 7) % 7
}

// WeekdayHeaders returns two-letter column headers starting at weekStart
func WeekdayHeaders(weekStart time.Weekday) []string {
	headers := make([]string, 7)
	for i := range headers {
		headers[i] = time.Weekday((int(weekStart) + i) % 7).String()[:2]
	}
	return headers
}
