package navigation

import (
	"rangepick/internal/calendar"
	"rangepick/internal/domain"
	"rangepick/internal/ui/services/events"
)

// Service handles the displayed month and the focused day within it
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a navigation service showing start's month with start focused
func NewService(bus events.EventBus, start calendar.Date) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			Cursor:   domain.CursorFor(start),
			FocusDay: start.Day,
		},
		bus: bus,
	}
}

// SetCarryYear sets whether wrapping past December/January also changes the year.
// Off by default: the month index wraps and the year stays put.
func (s *Service) SetCarryYear(carry bool) {
	s.state.Carry = carry
}

// Cursor returns the displayed year and 0-indexed month
func (s *Service) Cursor() domain.DisplayCursor {
	return s.state.Cursor
}

// FocusDay returns the focused day of month
func (s *Service) FocusDay() int {
	return s.state.FocusDay
}

// Focus returns the focused date
func (s *Service) Focus() calendar.Date {
	c := s.state.Cursor
	return calendar.New(c.Year, c.CalendarMonth(), s.state.FocusDay)
}

// NextYear shows the same month one year later
func (s *Service) NextYear() { s.moveYear(1) }

// PrevYear shows the same month one year earlier
func (s *Service) PrevYear() { s.moveYear(-1) }

// NextMonth advances the month index, wrapping 11 to 0
func (s *Service) NextMonth() { s.moveMonth(1) }

// PrevMonth moves the month index back, wrapping 0 to 11
func (s *Service) PrevMonth() { s.moveMonth(-1) }

// JumpTo shows d's month and focuses d
func (s *Service) JumpTo(d calendar.Date) {
	s.setCursor(domain.CursorFor(d))
	s.setFocus(d.Day)
}

// Navigate moves the focus within the displayed month
func (s *Service) Navigate(direction Direction) {
	switch direction {
	case DirectionLeft:
		s.MoveFocus(-1)
	case DirectionRight:
		s.MoveFocus(1)
	case DirectionUp:
		s.MoveFocus(-7)
	case DirectionDown:
		s.MoveFocus(7)
	case DirectionHome:
		s.setFocus(1)
	case DirectionEnd:
		s.setFocus(s.daysInMonth())
	}
}

// MoveFocus shifts the focused day by n, clamped to the displayed month
func (s *Service) MoveFocus(n int) {
	s.setFocus(s.state.FocusDay + n)
}

func (s *Service) moveYear(delta int) {
	c := s.state.Cursor
	c.Year += delta
	s.setCursor(c)
}

func (s *Service) moveMonth(delta int) {
	c := s.state.Cursor
	month := c.Month + delta
	if s.state.Carry {
		c.Year += floorDiv(month, 12)
	}
	c.Month = ((month % 12) + 12) % 12
	s.setCursor(c)
}

func (s *Service) setCursor(c domain.DisplayCursor) {
	old := s.state.Cursor
	if old == c {
		return
	}
	s.state.Cursor = c
	s.bus.Publish(CursorMovedEvent{From: old, To: c})
	// Keep focus inside the new month, e.g. 31 becomes 29 in a leap February
	s.setFocus(s.state.FocusDay)
}

func (s *Service) setFocus(day int) {
	last := s.daysInMonth()
	switch {
	case day < 1:
		day = 1
	case day > last:
		day = last
	}
	if day == s.state.FocusDay {
		return
	}
	s.state.FocusDay = day
	s.bus.Publish(FocusMovedEvent{Day: day})
}

func (s *Service) daysInMonth() int {
	c := s.state.Cursor
	return calendar.DaysIn(c.Year, c.CalendarMonth())
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
