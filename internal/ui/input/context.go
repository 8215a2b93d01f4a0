package input

import (
	"rangepick/internal/domain"
	"rangepick/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State     *state.AppState
	Presets   []domain.PredefinedRange
	Selection domain.Selection
}

// PresetCount returns how many predefined ranges are on offer
func (c *ModelContext) PresetCount() int {
	return len(c.Presets)
}

// PresetIndex returns the highlighted row of the preset list
func (c *ModelContext) PresetIndex() int {
	return c.State.PresetIndex
}

// HasSelection returns true if a range is started or complete
func (c *ModelContext) HasSelection() bool {
	return c.Selection.Kind() != domain.SelectionEmpty
}
