package selection

import (
	"rangepick/internal/calendar"
	"rangepick/internal/domain"
	"rangepick/internal/ui/services/events"
)

// Service handles selection logic
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new selection service starting from an empty selection
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{Current: domain.EmptySelection()},
		bus:   bus,
	}
}

// Current returns the selection
func (s *Service) Current() domain.Selection {
	return s.state.Current
}

// LastPreset returns the label of the preset that produced the current selection, if any
func (s *Service) LastPreset() string {
	return s.state.LastPreset
}

// Click feeds a date click into the state machine. Weekend dates are not
// selectable endpoints and leave the state untouched. Returns whether the
// click was accepted.
func (s *Service) Click(d calendar.Date) bool {
	if calendar.IsWeekend(d) {
		s.bus.Publish(ClickIgnoredEvent{Date: d})
		return false
	}

	s.state.LastPreset = ""
	cur := s.state.Current
	switch cur.Kind() {
	case domain.SelectionPartial:
		start, _ := cur.Start()
		s.state.Current = domain.CompleteSelection(start, d)
		start, _ = s.state.Current.Start()
		end, _ := s.state.Current.End()
		s.bus.Publish(SelectionCompletedEvent{Start: start, End: end})
	default:
		// Empty, or a finished range being replaced
		s.state.Current = domain.PartialSelection(d)
		s.bus.Publish(SelectionStartedEvent{Start: d})
	}
	return true
}

// Apply replaces the selection with a predefined range. Preset dates are
// trusted and skip the weekend check.
func (s *Service) Apply(r domain.PredefinedRange) {
	s.state.Current = domain.CompleteSelection(r.Start, r.End)
	s.state.LastPreset = r.Label
	s.bus.Publish(PresetAppliedEvent{Preset: r})
}

// Reset clears the selection
func (s *Service) Reset() {
	if s.state.Current.Kind() == domain.SelectionEmpty {
		return
	}
	s.state.Current = domain.EmptySelection()
	s.state.LastPreset = ""
	s.bus.Publish(SelectionClearedEvent{})
}

// IsComplete returns true if both endpoints are set
func (s *Service) IsComplete() bool {
	return s.state.Current.Kind() == domain.SelectionComplete
}
