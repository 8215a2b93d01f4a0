package domain

import (
	"time"

	"rangepick/internal/calendar"
)

// SelectionKind tags which variant a Selection holds
type SelectionKind int

const (
	SelectionEmpty SelectionKind = iota
	SelectionPartial
	SelectionComplete
)

func (k SelectionKind) String() string {
	switch k {
	case SelectionPartial:
		return "partial"
	case SelectionComplete:
		return "complete"
	default:
		return "empty"
	}
}

// Selection is one of Empty, PartialStart(start) or Complete(start, end).
// Fields are unexported so an end without a start, or an end before its
// start, cannot be built.
type Selection struct {
	kind  SelectionKind
	start calendar.Date
	end   calendar.Date
}

// EmptySelection returns the Empty variant
func EmptySelection() Selection {
	return Selection{}
}

// PartialSelection returns PartialStart(start)
func PartialSelection(start calendar.Date) Selection {
	return Selection{kind: SelectionPartial, start: start}
}

// CompleteSelection returns Complete with the earlier date as start
func CompleteSelection(a, b calendar.Date) Selection {
	if b.Before(a) {
		a, b = b, a
	}
	return Selection{kind: SelectionComplete, start: a, end: b}
}

// Kind returns the variant tag
func (s Selection) Kind() SelectionKind { return s.kind }

// Start returns the start date; ok is false for Empty
func (s Selection) Start() (calendar.Date, bool) {
	return s.start, s.kind != SelectionEmpty
}

// End returns the end date; ok is false unless Complete
func (s Selection) End() (calendar.Date, bool) {
	return s.end, s.kind == SelectionComplete
}

// Contains reports whether d lies inside a complete selection, or equals a partial start
func (s Selection) Contains(d calendar.Date) bool {
	switch s.kind {
	case SelectionPartial:
		return d == s.start
	case SelectionComplete:
		return !d.Before(s.start) && !d.After(s.end)
	}
	return false
}

func (s Selection) String() string {
	switch s.kind {
	case SelectionPartial:
		return "PartialStart(" + s.start.String() + ")"
	case SelectionComplete:
		return "Complete(" + s.start.String() + ", " + s.end.String() + ")"
	}
	return "Empty"
}

// DisplayCursor is the month being shown. Month is 0-indexed (0 = January).
type DisplayCursor struct {
	Year  int
	Month int
}

// CursorFor returns the cursor showing d's month
func CursorFor(d calendar.Date) DisplayCursor {
	return DisplayCursor{Year: d.Year, Month: int(d.Month) - 1}
}

// CalendarMonth converts the 0-indexed month to a time.Month
func (c DisplayCursor) CalendarMonth() time.Month {
	return time.Month(c.Month + 1)
}

// Title returns the header text, e.g. "March 2024"
func (c DisplayCursor) Title() string {
	return calendar.MonthTitle(c.Year, c.CalendarMonth())
}

// PredefinedRange is a labelled, ready-made selection supplied by the container
type PredefinedRange struct {
	Label string
	Start calendar.Date
	End   calendar.Date
}

// RangeChange is the record handed to the change callback whenever a range completes
type RangeChange struct {
	Range        [2]string `json:"range"`
	WeekendDates []string  `json:"weekendDates"`
}

// NewRangeChange builds the emission for start..end, listing every weekend day inside it
func NewRangeChange(start, end calendar.Date) RangeChange {
	weekends := calendar.WeekendsBetween(start, end)
	change := RangeChange{
		Range:        [2]string{start.String(), end.String()},
		WeekendDates: make([]string, 0, len(weekends)),
	}
	for _, d := range weekends {
		change.WeekendDates = append(change.WeekendDates, d.String())
	}
	return change
}
