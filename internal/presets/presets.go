// Package presets resolves the predefined ranges offered next to the calendar.
// Ranges are resolved once, against a fixed "today", and never change afterwards.
package presets

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"rangepick/internal/calendar"
	"rangepick/internal/domain"
)

// ErrUnknownRelative is returned for a relative spec outside the supported grammar
var ErrUnknownRelative = errors.New("unknown relative range")

// Relative range specs
const (
	RelativeLastPrefix  = "last:"
	RelativeThisMonth   = "this-month"
	RelativeLastMonth   = "last-month"
	RelativeMonthToDate = "month-to-date"
	RelativeYearToDate  = "year-to-date"
)

// Spec describes one preset as written in the config file: either absolute
// start/end ISO dates or a relative spec
type Spec struct {
	Label    string `toml:"label"`
	Start    string `toml:"start,omitempty"`
	End      string `toml:"end,omitempty"`
	Relative string `toml:"relative,omitempty"`
}

// DefaultSpecs are used when the config lists no presets
func DefaultSpecs() []Spec {
	return []Spec{
		{Label: "Last 7 Days", Relative: "last:7"},
		{Label: "Last 30 Days", Relative: "last:30"},
		{Label: "This Month", Relative: RelativeThisMonth},
		{Label: "Last Month", Relative: RelativeLastMonth},
		{Label: "Month to Date", Relative: RelativeMonthToDate},
	}
}

// Resolve turns specs into ranges, in order
func Resolve(specs []Spec, today calendar.Date) ([]domain.PredefinedRange, error) {
	ranges := make([]domain.PredefinedRange, 0, len(specs))
	for i, spec := range specs {
		r, err := spec.Resolve(today)
		if err != nil {
			return nil, fmt.Errorf("preset %d (%q): %w", i+1, spec.Label, err)
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// Resolve turns one spec into a range
func (s Spec) Resolve(today calendar.Date) (domain.PredefinedRange, error) {
	label := strings.TrimSpace(s.Label)
	if label == "" {
		return domain.PredefinedRange{}, errors.New("missing label")
	}

	if s.Relative != "" {
		if s.Start != "" || s.End != "" {
			return domain.PredefinedRange{}, errors.New("relative and start/end are mutually exclusive")
		}
		start, end, err := Relative(s.Relative, today)
		if err != nil {
			return domain.PredefinedRange{}, err
		}
		return domain.PredefinedRange{Label: label, Start: start, End: end}, nil
	}

	start, err := calendar.Parse(s.Start)
	if err != nil {
		return domain.PredefinedRange{}, fmt.Errorf("start: %w", err)
	}
	end, err := calendar.Parse(s.End)
	if err != nil {
		return domain.PredefinedRange{}, fmt.Errorf("end: %w", err)
	}
	if end.Before(start) {
		start, end = end, start
	}
	return domain.PredefinedRange{Label: label, Start: start, End: end}, nil
}

// Relative evaluates a relative spec against today
func Relative(spec string, today calendar.Date) (calendar.Date, calendar.Date, error) {
	spec = strings.ToLower(strings.TrimSpace(spec))
	firstOfMonth := calendar.New(today.Year, today.Month, 1)

	switch spec {
	case RelativeThisMonth:
		return firstOfMonth, calendar.New(today.Year, today.Month, calendar.DaysIn(today.Year, today.Month)), nil
	case RelativeLastMonth:
		// Day 0 of this month is the last day of the previous one
		end := calendar.New(today.Year, today.Month, 0)
		return calendar.New(end.Year, end.Month, 1), end, nil
	case RelativeMonthToDate:
		return firstOfMonth, today, nil
	case RelativeYearToDate:
		return calendar.New(today.Year, time.January, 1), today, nil
	}

	if n, ok := strings.CutPrefix(spec, RelativeLastPrefix); ok {
		days, err := strconv.Atoi(n)
		if err != nil || days < 1 {
			return calendar.Date{}, calendar.Date{}, fmt.Errorf("%w: %q needs a positive day count", ErrUnknownRelative, spec)
		}
		// Today minus N days through today, so "last:7" spans eight calendar days
		return today.AddDays(-days), today, nil
	}

	return calendar.Date{}, calendar.Date{}, fmt.Errorf("%w: %q", ErrUnknownRelative, spec)
}
