package input

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"rangepick/internal/ui/input/types"
)

// KeyMap holds every binding the picker understands
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Home      key.Binding
	End       key.Binding
	Click     key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding
	Today     key.Binding
	Presets   key.Binding
	Preset    key.Binding
	Clear     key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		Home:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first day")),
		End:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last day")),
		Click:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "pick day")),
		PrevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		PrevYear:  key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "prev year")),
		NextYear:  key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "next year")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Presets:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "presets")),
		Preset:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "apply preset")),
		Clear:     key.NewBinding(key.WithKeys("c", "esc"), key.WithHelp("c", "clear")),
		Back:      key.NewBinding(key.WithKeys("esc", "p"), key.WithHelp("esc", "back")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "done")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "abort")),
	}
}

// ForMode returns the bindings shown in the footer for a mode
func (k KeyMap) ForMode(mode types.Mode) help.KeyMap {
	if mode == types.ModePresets {
		return presetHelp{k}
	}
	return normalHelp{k}
}

type normalHelp struct{ k KeyMap }

func (h normalHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Click, h.k.PrevMonth, h.k.NextMonth, h.k.Presets, h.k.Clear, h.k.Help, h.k.Quit}
}

func (h normalHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Left, h.k.Right, h.k.Up, h.k.Down, h.k.Home, h.k.End},
		{h.k.PrevMonth, h.k.NextMonth, h.k.PrevYear, h.k.NextYear, h.k.Today},
		{h.k.Click, h.k.Presets, h.k.Preset, h.k.Clear},
		{h.k.Help, h.k.Quit, h.k.ForceQuit},
	}
}

type presetHelp struct{ k KeyMap }

func (h presetHelp) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "choose")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		h.k.Back,
	}
}

func (h presetHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
