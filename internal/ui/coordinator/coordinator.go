package coordinator

import (
	"slices"

	"rangepick/internal/calendar"
	"rangepick/internal/domain"
	"rangepick/internal/ui/services/events"
	"rangepick/internal/ui/services/navigation"
	"rangepick/internal/ui/services/selection"
)

// ChangeFunc receives every completed range
type ChangeFunc func(domain.RangeChange)

// Options configures a Coordinator
type Options struct {
	Start     calendar.Date // month shown and day focused initially
	Presets   []domain.PredefinedRange
	OnChange  ChangeFunc
	CarryYear bool // month wrap also moves the year
}

// Coordinator is the calendar range selector: it owns the selection and the
// display cursor and turns every completed selection into a RangeChange.
// All operations run synchronously on the caller's goroutine.
type Coordinator struct {
	// Services
	Navigation *navigation.Service
	Selection  *selection.Service

	presets  []domain.PredefinedRange
	onChange ChangeFunc
	bus      events.EventBus
	last     domain.RangeChange
}

// NewCoordinator creates a new coordinator with all services
func NewCoordinator(bus events.EventBus, opts Options) *Coordinator {
	if bus == nil {
		bus = &events.NullBus{}
	}
	c := &Coordinator{
		Navigation: navigation.NewService(bus, opts.Start),
		Selection:  selection.NewService(bus),
		presets:    append([]domain.PredefinedRange(nil), opts.Presets...),
		onChange:   opts.OnChange,
		bus:        bus,
	}
	c.Navigation.SetCarryYear(opts.CarryYear)
	return c
}

// ClickDate feeds a date click to the selection. Returns false for ignored (weekend) clicks.
func (c *Coordinator) ClickDate(d calendar.Date) bool {
	if !c.Selection.Click(d) {
		return false
	}
	if c.Selection.IsComplete() {
		c.emit()
	}
	return true
}

// ClickFocused clicks the focused day of the displayed month
func (c *Coordinator) ClickFocused() bool {
	return c.ClickDate(c.Navigation.Focus())
}

// ApplyPreset applies the i-th predefined range and emits it. Out of range indexes are ignored.
func (c *Coordinator) ApplyPreset(i int) bool {
	if i < 0 || i >= len(c.presets) {
		return false
	}
	c.Selection.Apply(c.presets[i])
	c.emit()
	return true
}

// Clear resets the selection to empty; nothing is emitted
func (c *Coordinator) Clear() {
	c.Selection.Reset()
}

// NextYear shows the next year
func (c *Coordinator) NextYear() { c.Navigation.NextYear() }

// PrevYear shows the previous year
func (c *Coordinator) PrevYear() { c.Navigation.PrevYear() }

// NextMonth shows the next month
func (c *Coordinator) NextMonth() { c.Navigation.NextMonth() }

// PrevMonth shows the previous month
func (c *Coordinator) PrevMonth() { c.Navigation.PrevMonth() }

// MoveFocus moves the focused day by n days within the displayed month
func (c *Coordinator) MoveFocus(n int) { c.Navigation.MoveFocus(n) }

// JumpTo shows and focuses d
func (c *Coordinator) JumpTo(d calendar.Date) { c.Navigation.JumpTo(d) }

// Current returns the selection
func (c *Coordinator) Current() domain.Selection {
	return c.Selection.Current()
}

// Cursor returns the displayed month
func (c *Coordinator) Cursor() domain.DisplayCursor {
	return c.Navigation.Cursor()
}

// Focus returns the focused date
func (c *Coordinator) Focus() calendar.Date {
	return c.Navigation.Focus()
}

// Presets returns a copy of the predefined ranges in display order
func (c *Coordinator) Presets() []domain.PredefinedRange {
	return slices.Clone(c.presets)
}

// Result returns the emitted change for the current selection; ok is false
// unless the selection is complete
func (c *Coordinator) Result() (domain.RangeChange, bool) {
	if !c.Selection.IsComplete() {
		return domain.RangeChange{}, false
	}
	return c.last, true
}

// emit must only be called while the selection is complete
func (c *Coordinator) emit() {
	start, _ := c.Selection.Current().Start()
	end, _ := c.Selection.Current().End()

	c.last = domain.NewRangeChange(start, end)
	if c.onChange != nil {
		c.onChange(c.last)
	}
	c.bus.Publish(domain.RangeChangedEvent{Change: c.last})
}
