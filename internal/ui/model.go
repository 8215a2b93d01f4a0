package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"rangepick/internal/calendar"
	"rangepick/internal/config"
	"rangepick/internal/domain"
	"rangepick/internal/ui/coordinator"
	"rangepick/internal/ui/input"
	inputtypes "rangepick/internal/ui/input/types"
	"rangepick/internal/ui/services/events"
	"rangepick/internal/ui/services/navigation"
	"rangepick/internal/ui/state"
	"rangepick/internal/ui/views"
)

// statusTimeout is how long a status message stays on screen
const statusTimeout = 3 * time.Second

// Options configures the container page
type Options struct {
	Today    calendar.Date // highlighted as today and target of the "today" key
	Start    calendar.Date // initially displayed and focused; defaults to Today
	Presets  []domain.PredefinedRange
	OnChange coordinator.ChangeFunc
}

// Model is the container page: it hosts the range selector, owns the
// preset list and shows what the selector emitted
type Model struct {
	bus    events.EventBus
	config *config.Config
	state  *state.AppState

	coord        *coordinator.Coordinator
	help         help.Model
	renderer     *views.Renderer
	inputHandler *input.Handler
	helpOps      *HelpOps

	today     calendar.Date
	weekStart time.Weekday
	statusSeq int

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus events.EventBus, cfg *config.Config, opts Options) (*Model, error) {
	if bus == nil {
		bus = events.NewBus()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	weekStart, err := cfg.UISettings.WeekStartDay()
	if err != nil {
		return nil, err
	}
	if opts.Today.IsZero() {
		opts.Today = calendar.Today()
	}
	if opts.Start.IsZero() {
		opts.Start = opts.Today
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        state.NewAppState(),
		help:         help.New(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(input.DefaultKeyMap()),
		helpOps:      NewHelpOps(nil),
		today:        opts.Today,
		weekStart:    weekStart,
	}
	m.coord = coordinator.NewCoordinator(bus, coordinator.Options{
		Start:     opts.Start,
		Presets:   opts.Presets,
		OnChange:  opts.OnChange,
		CarryYear: cfg.UISettings.CarryYearOnWrap,
	})
	m.subscribe()

	return m, nil
}

// subscribe turns selector events into status messages. The bus delivers
// synchronously, so these run inside Update.
func (m *Model) subscribe() {
	m.bus.Subscribe(domain.EventClickIgnored, func(e domain.DomainEvent) {
		ev := e.(domain.ClickIgnoredEvent)
		m.state.SetError(fmt.Sprintf("%s is a %s: weekends cannot start or end a range", ev.Date, ev.Date.Weekday()))
	})
	m.bus.Subscribe(domain.EventPresetApplied, func(e domain.DomainEvent) {
		ev := e.(domain.PresetAppliedEvent)
		m.state.SetStatus(fmt.Sprintf("Applied %q", ev.Preset.Label))
	})
	m.bus.Subscribe(domain.EventSelectionCleared, func(domain.DomainEvent) {
		m.state.SetStatus("Selection cleared")
	})
	m.bus.Subscribe(domain.EventSelectionStarted, func(domain.DomainEvent) {
		m.state.ClearStatus()
	})
	m.bus.Subscribe(domain.EventSelectionCompleted, func(domain.DomainEvent) {
		m.state.ClearStatus()
	})
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Coordinator exposes the hosted range selector
func (m *Model) Coordinator() *coordinator.Coordinator {
	return m.coord
}

// Result returns the last emitted range; ok is false unless a range is complete
func (m *Model) Result() (domain.RangeChange, bool) {
	return m.coord.Result()
}

// Finished reports whether the user confirmed with q
func (m *Model) Finished() bool {
	return m.state.Finished
}

// Aborted reports whether the user quit with ctrl+c
func (m *Model) Aborted() bool {
	return m.state.Aborted
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.state.InPagerMode {
			return m, nil
		}

		ctx := &input.ModelContext{
			State:     m.state,
			Presets:   m.coord.Presets(),
			Selection: m.coord.Current(),
		}
		prevStatus := m.state.StatusMessage

		cmds := []tea.Cmd{}
		for _, action := range m.inputHandler.HandleKey(msg, ctx) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

		if m.state.StatusMessage != "" && m.state.StatusMessage != prevStatus {
			cmds = append(cmds, m.clearStatusLater())
		}
		return m, tea.Batch(cmds...)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.state.ClearStatus()
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return m, tea.ClearScreen
	}

	return m, nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.coord.Navigation.Navigate(navigation.Direction(a.Direction))

	case inputtypes.MonthAction:
		if a.Delta > 0 {
			m.coord.NextMonth()
		} else {
			m.coord.PrevMonth()
		}

	case inputtypes.YearAction:
		if a.Delta > 0 {
			m.coord.NextYear()
		} else {
			m.coord.PrevYear()
		}

	case inputtypes.TodayAction:
		m.coord.JumpTo(m.today)

	case inputtypes.ClickAction:
		m.coord.ClickFocused()

	case inputtypes.ClearAction:
		m.coord.Clear()

	case inputtypes.ApplyPresetAction:
		if !m.coord.ApplyPreset(a.Index) {
			m.state.SetError(fmt.Sprintf("No preset #%d", a.Index+1))
		}

	case inputtypes.MovePresetCursorAction:
		m.state.MovePresetIndex(a.Delta, len(m.coord.Presets()))

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			m.help.ShowAll = !m.help.ShowAll
			return nil
		}
		return m.fetchHelpPager(m.helpContent())

	case inputtypes.QuitAction:
		if a.Force {
			m.state.Aborted = true
		} else {
			m.state.Finished = true
		}
		return tea.Quit

	default:
		log.Printf("processAction: unhandled %T", action)
	}
	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

func (m *Model) helpContent() string {
	keys := m.inputHandler.Keys().ForMode(inputtypes.ModeNormal)
	return views.RenderHelpContent(views.SectionsFromHelp(keys, "Days", "Months", "Range", "Other"))
}

func (m *Model) clearStatusLater() tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// View renders the UI
func (m *Model) View() string {
	if m.state.InPagerMode {
		return ""
	}

	var result *domain.RangeChange
	if change, ok := m.coord.Result(); ok {
		result = &change
	}

	return m.renderer.Render(views.ViewState{
		Width:            m.state.Width,
		Height:           m.state.Height,
		Cursor:           m.coord.Cursor(),
		Focus:            m.coord.Focus(),
		Today:            m.today,
		WeekStart:        m.weekStart,
		Selection:        m.coord.Current(),
		Result:           result,
		Presets:          m.coord.Presets(),
		PresetIndex:      m.state.PresetIndex,
		PresetMode:       m.inputHandler.CurrentMode() == inputtypes.ModePresets,
		ActivePreset:     m.coord.Selection.LastPreset(),
		ShowWeekendCount: m.config.UISettings.ShowWeekendCount,
		StatusMessage:    m.state.StatusMessage,
		StatusIsError:    m.state.StatusIsError,
		HelpModel:        m.help,
		HelpKeys:         m.inputHandler.Keys().ForMode(m.inputHandler.CurrentMode()),
	})
}
