package navigation

import "rangepick/internal/domain"

// State holds all navigation-related state
type State struct {
	Cursor   domain.DisplayCursor
	FocusDay int  // focused day of the displayed month, 1-based
	Carry    bool // carry the year when the month wraps
}

// Direction represents focus movement directions
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionHome  Direction = "home"
	DirectionEnd   Direction = "end"
)

// Event types for navigation changes
type (
	CursorMovedEvent = domain.CursorMovedEvent
	FocusMovedEvent  = domain.FocusMovedEvent
)
