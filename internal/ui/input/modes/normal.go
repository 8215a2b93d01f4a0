package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rangepick/internal/ui/input/types"
)

type NormalMode struct {
	keys Bindings
}

// Bindings is the subset of the key map the calendar mode reacts to
type Bindings struct {
	Left, Right, Up, Down, Home, End key.Binding
	Click, Clear, Today              key.Binding
	PrevMonth, NextMonth             key.Binding
	PrevYear, NextYear               key.Binding
	Presets, Preset                  key.Binding
	Help, Quit, ForceQuit            key.Binding
}

func NewNormalMode(keys Bindings) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "calendar"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.Left):
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	case key.Matches(msg, k.Right):
		return []types.Action{types.NavigateAction{Direction: "right"}}, true
	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, k.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, k.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, k.PrevMonth):
		return []types.Action{types.MonthAction{Delta: -1}}, true
	case key.Matches(msg, k.NextMonth):
		return []types.Action{types.MonthAction{Delta: 1}}, true
	case key.Matches(msg, k.PrevYear):
		return []types.Action{types.YearAction{Delta: -1}}, true
	case key.Matches(msg, k.NextYear):
		return []types.Action{types.YearAction{Delta: 1}}, true
	case key.Matches(msg, k.Today):
		return []types.Action{types.TodayAction{}}, true

	case key.Matches(msg, k.Click):
		return []types.Action{types.ClickAction{}}, true

	case key.Matches(msg, k.Clear):
		if ctx.HasSelection() {
			return []types.Action{types.ClearAction{}}, true
		}
		return nil, true // consume esc even with nothing to clear

	case key.Matches(msg, k.Presets):
		if ctx.PresetCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModePresets}}, true

	case key.Matches(msg, k.Preset):
		// Digit shortcuts are 1-based
		n := int(msg.String()[0] - '0')
		if n > ctx.PresetCount() {
			return nil, true
		}
		return []types.Action{types.ApplyPresetAction{Index: n - 1}}, true

	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
