package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"rangepick/internal/ui/input/modes"
	"rangepick/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        KeyMap
}

func New(keys KeyMap) *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode(modes.Bindings{
		Left: keys.Left, Right: keys.Right, Up: keys.Up, Down: keys.Down,
		Home: keys.Home, End: keys.End,
		Click: keys.Click, Clear: keys.Clear, Today: keys.Today,
		PrevMonth: keys.PrevMonth, NextMonth: keys.NextMonth,
		PrevYear: keys.PrevYear, NextYear: keys.NextYear,
		Presets: keys.Presets, Preset: keys.Preset,
		Help: keys.Help, Quit: keys.Quit, ForceQuit: keys.ForceQuit,
	})
	h.modes[types.ModePresets] = modes.NewPresetMode(keys.Back, keys.ForceQuit)

	return h
}

// HandleKey routes a key to the current mode, applying any mode change it
// requests, and returns the remaining actions for the model
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}

	var allActions []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}

		// Exit current mode
		if h.modes[h.currentMode] != nil {
			allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
		}

		h.currentMode = changeMode.Mode

		// Enter new mode
		if h.modes[h.currentMode] != nil {
			allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
		}
	}

	return allActions
}

// CurrentMode returns the active input mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// ModeName returns the display name of the active mode
func (h *Handler) ModeName() string {
	if m := h.modes[h.currentMode]; m != nil {
		return m.Name()
	}
	return ""
}

// Keys returns the key map the handler was built with
func (h *Handler) Keys() KeyMap {
	return h.keys
}
