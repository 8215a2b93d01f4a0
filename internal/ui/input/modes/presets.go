package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rangepick/internal/ui/input/types"
)

// PresetMode lets the user pick a predefined range from the list
type PresetMode struct {
	back      key.Binding
	forceQuit key.Binding
}

func NewPresetMode(back, forceQuit key.Binding) *PresetMode {
	return &PresetMode{back: back, forceQuit: forceQuit}
}

func (m *PresetMode) Name() string {
	return "presets"
}

func (m *PresetMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *PresetMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *PresetMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if key.Matches(msg, m.forceQuit) {
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	if key.Matches(msg, m.back) {
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	switch msg.String() {
	case "up", "k":
		return []types.Action{types.MovePresetCursorAction{Delta: -1}}, true
	case "down", "j":
		return []types.Action{types.MovePresetCursorAction{Delta: 1}}, true
	case "enter", " ":
		return []types.Action{
			types.ApplyPresetAction{Index: ctx.PresetIndex()},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// Swallow everything else so calendar keys don't leak through
	return nil, true
}
