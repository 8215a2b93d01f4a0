package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"rangepick/internal/calendar"
	"rangepick/internal/domain"
)

// maxListedWeekends caps the weekend dates printed in the summary line
const maxListedWeekends = 6

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	Cursor           domain.DisplayCursor
	Focus            calendar.Date
	Today            calendar.Date
	WeekStart        time.Weekday
	Selection        domain.Selection
	Result           *domain.RangeChange
	Presets          []domain.PredefinedRange
	PresetIndex      int
	PresetMode       bool
	ActivePreset     string
	ShowWeekendCount bool
	StatusMessage    string
	StatusIsError    bool
	HelpModel        help.Model
	HelpKeys         help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles         *Styles
	calendarRender *CalendarRenderer
	presetRender   *PresetRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:         styles,
		calendarRender: NewCalendarRenderer(styles),
		presetRender:   NewPresetRenderer(styles),
	}
}

// Styles exposes the renderer's style set
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("rangepick"))
	content.WriteString("\n")

	calendarBox := r.styles.ActiveBox
	presetBox := r.styles.Box
	if state.PresetMode {
		calendarBox, presetBox = presetBox, calendarBox
	}

	body := calendarBox.Render(r.calendarRender.Render(state))
	if len(state.Presets) > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			body,
			"  ",
			presetBox.Render(r.presetRender.Render(state)),
		)
	}
	content.WriteString(body)
	content.WriteString("\n")

	content.WriteString(r.styles.Summary.Render(r.renderSummary(state)))

	if state.StatusMessage != "" {
		content.WriteString("\n")
		if state.StatusIsError {
			content.WriteString(r.styles.StatusError.Render(state.StatusMessage))
		} else {
			content.WriteString(r.styles.Status.Render(state.StatusMessage))
		}
	}

	if state.HelpKeys != nil {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpModel.View(state.HelpKeys)))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderSummary describes the current selection in one or two lines
func (r *Renderer) renderSummary(state ViewState) string {
	switch state.Selection.Kind() {
	case domain.SelectionPartial:
		start, _ := state.Selection.Start()
		return fmt.Sprintf("Start %s · pick an end date", start)
	case domain.SelectionComplete:
		start, _ := state.Selection.Start()
		end, _ := state.Selection.End()
		line := fmt.Sprintf("Range %s → %s", start, end)
		if state.Result == nil || !state.ShowWeekendCount {
			return line
		}
		return line + "\n" + r.renderWeekends(state.Result.WeekendDates)
	}
	return r.styles.Dim.Render("No range selected · pick a start date")
}

func (r *Renderer) renderWeekends(dates []string) string {
	if len(dates) == 0 {
		return r.styles.Dim.Render("No weekend days in range")
	}

	noun := "days"
	if len(dates) == 1 {
		noun = "day"
	}
	listed := dates
	more := ""
	if len(dates) > maxListedWeekends {
		listed = dates[:maxListedWeekends]
		more = fmt.Sprintf(" +%d more", len(dates)-maxListedWeekends)
	}
	return fmt.Sprintf("%d weekend %s: %s%s", len(dates), noun, strings.Join(listed, ", "), more)
}
