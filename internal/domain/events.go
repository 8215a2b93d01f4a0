package domain

import "rangepick/internal/calendar"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionStarted   EventType = "SelectionStarted"
	EventSelectionCompleted EventType = "SelectionCompleted"
	EventSelectionCleared   EventType = "SelectionCleared"
	EventClickIgnored       EventType = "ClickIgnored"
	EventPresetApplied      EventType = "PresetApplied"
	EventCursorMoved        EventType = "CursorMoved"
	EventFocusMoved         EventType = "FocusMoved"
	EventRangeChanged       EventType = "RangeChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionStartedEvent is emitted when a click opens a new range
type SelectionStartedEvent struct {
	Start calendar.Date
}

func (e SelectionStartedEvent) Type() EventType { return EventSelectionStarted }

// SelectionCompletedEvent is emitted when a click closes the range
type SelectionCompletedEvent struct {
	Start calendar.Date
	End   calendar.Date
}

func (e SelectionCompletedEvent) Type() EventType { return EventSelectionCompleted }

// SelectionClearedEvent is emitted when the selection is reset to empty
type SelectionClearedEvent struct{}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// ClickIgnoredEvent is emitted when a weekend date is clicked
type ClickIgnoredEvent struct {
	Date calendar.Date
}

func (e ClickIgnoredEvent) Type() EventType { return EventClickIgnored }

// PresetAppliedEvent is emitted when a predefined range replaces the selection
type PresetAppliedEvent struct {
	Preset PredefinedRange
}

func (e PresetAppliedEvent) Type() EventType { return EventPresetApplied }

// CursorMovedEvent is emitted when the displayed month or year changes
type CursorMovedEvent struct {
	From DisplayCursor
	To   DisplayCursor
}

func (e CursorMovedEvent) Type() EventType { return EventCursorMoved }

// FocusMovedEvent is emitted when the focused day changes
type FocusMovedEvent struct {
	Day int
}

func (e FocusMovedEvent) Type() EventType { return EventFocusMoved }

// RangeChangedEvent carries the record passed to the change callback
type RangeChangedEvent struct {
	Change RangeChange
}

func (e RangeChangedEvent) Type() EventType { return EventRangeChanged }
