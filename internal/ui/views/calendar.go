package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rangepick/internal/calendar"
	"rangepick/internal/domain"
)

// cellWidth is the rendered width of one day column
const cellWidth = 4

// CalendarRenderer handles month grid rendering
type CalendarRenderer struct {
	styles *Styles
}

// NewCalendarRenderer creates a new calendar renderer
func NewCalendarRenderer(styles *Styles) *CalendarRenderer {
	return &CalendarRenderer{styles: styles}
}

// Render draws the displayed month: title, weekday headers and one row per week
func (cr *CalendarRenderer) Render(state ViewState) string {
	year, month := state.Cursor.Year, state.Cursor.CalendarMonth()
	gridWidth := cellWidth * 7

	var b strings.Builder
	title := lipgloss.PlaceHorizontal(gridWidth, lipgloss.Center, state.Cursor.Title())
	b.WriteString(cr.styles.MonthTitle.Render(title))
	b.WriteString("\n")

	for i, h := range calendar.WeekdayHeaders(state.WeekStart) {
		style := cr.styles.WeekdayHeader
		if wd := (int(state.WeekStart) + i) % 7; wd == 0 || wd == 6 {
			style = cr.styles.WeekendHeader
		}
		b.WriteString(style.Render(fmt.Sprintf(" %s ", h)))
	}

	col := calendar.LeadingBlanks(year, month, state.WeekStart)
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", col*cellWidth))
	for d := range calendar.MonthDays(year, month) {
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
		b.WriteString(cr.renderDay(d, state))
		col++
	}
	// Pad the last week so the box keeps its width
	b.WriteString(strings.Repeat(" ", (7-col)*cellWidth))

	return b.String()
}

func (cr *CalendarRenderer) renderDay(d calendar.Date, state ViewState) string {
	text := fmt.Sprintf(" %2d ", d.Day)
	if d == state.Focus {
		text = fmt.Sprintf("[%2d]", d.Day)
	}

	style := cr.dayStyle(d, state)
	if d == state.Today {
		style = style.Inherit(cr.styles.Today)
	}
	if d == state.Focus {
		style = cr.styles.Focus.Inherit(style)
	}
	return style.Render(text)
}

func (cr *CalendarRenderer) dayStyle(d calendar.Date, state ViewState) lipgloss.Style {
	sel := state.Selection
	start, _ := sel.Start()
	end, complete := sel.End()

	switch {
	case sel.Kind() != domain.SelectionEmpty && d == start, complete && d == end:
		return cr.styles.RangeEdge
	case complete && sel.Contains(d) && d.IsWeekend():
		return cr.styles.InRangeWeekend
	case complete && sel.Contains(d):
		return cr.styles.InRange
	case d.IsWeekend():
		return cr.styles.Weekend
	}
	return cr.styles.Day
}
