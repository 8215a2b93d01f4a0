package types

// Focus actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Display cursor actions
type MonthAction struct {
	Delta int // +1 next month, -1 previous month
}

func (a MonthAction) Type() string { return "month" }

type YearAction struct {
	Delta int
}

func (a YearAction) Type() string { return "year" }

type TodayAction struct{}

func (a TodayAction) Type() string { return "today" }

// Selection actions
type ClickAction struct{}

func (a ClickAction) Type() string { return "click" }

type ClearAction struct{}

func (a ClearAction) Type() string { return "clear" }

type ApplyPresetAction struct {
	Index int
}

func (a ApplyPresetAction) Type() string { return "apply_preset" }

type MovePresetCursorAction struct {
	Delta int
}

func (a MovePresetCursorAction) Type() string { return "move_preset_cursor" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C (no output), false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
