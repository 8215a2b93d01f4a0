package selection

import "rangepick/internal/domain"

// State holds selection state
type State struct {
	Current domain.Selection
	// Label of the preset that produced Current; cleared by clicks
	LastPreset string
}

// Event types
type (
	SelectionStartedEvent   = domain.SelectionStartedEvent
	SelectionCompletedEvent = domain.SelectionCompletedEvent
	SelectionClearedEvent   = domain.SelectionClearedEvent
	ClickIgnoredEvent       = domain.ClickIgnoredEvent
	PresetAppliedEvent      = domain.PresetAppliedEvent
)
