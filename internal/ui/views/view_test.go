package views

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangepick/internal/calendar"
	"rangepick/internal/domain"
)

func march2024(day int) calendar.Date {
	return calendar.New(2024, time.March, day)
}

func baseState() ViewState {
	return ViewState{
		Width:            100,
		Height:           40,
		Cursor:           domain.CursorFor(march2024(1)),
		Focus:            march2024(15),
		Today:            march2024(20),
		WeekStart:        time.Sunday,
		Selection:        domain.EmptySelection(),
		ShowWeekendCount: true,
	}
}

func TestCalendarGridLayout(t *testing.T) {
	cr := NewCalendarRenderer(NewStyles())

	t.Run("sunday start", func(t *testing.T) {
		lines := strings.Split(cr.Render(baseState()), "\n")
		require.GreaterOrEqual(t, len(lines), 7)
		assert.Contains(t, lines[0], "March 2024")
		assert.Less(t, strings.Index(lines[1], "Su"), strings.Index(lines[1], "Mo"))
		// March 1st 2024 is a Friday: five blank cells before it
		assert.True(t, strings.HasPrefix(lines[2], strings.Repeat(" ", 5*cellWidth)+"  1 "), lines[2])
		assert.Contains(t, lines[len(lines)-1], "31")
	})

	t.Run("monday start", func(t *testing.T) {
		state := baseState()
		state.WeekStart = time.Monday
		lines := strings.Split(cr.Render(state), "\n")
		assert.Less(t, strings.Index(lines[1], "Mo"), strings.Index(lines[1], "Su"))
		assert.True(t, strings.HasPrefix(lines[2], strings.Repeat(" ", 4*cellWidth)+"  1 "), lines[2])
	})

	t.Run("rows are equal width", func(t *testing.T) {
		lines := strings.Split(cr.Render(baseState()), "\n")
		for _, line := range lines[2:] {
			assert.Len(t, line, 7*cellWidth)
		}
	})
}

func TestCalendarMarksFocus(t *testing.T) {
	cr := NewCalendarRenderer(NewStyles())
	out := cr.Render(baseState())
	assert.Contains(t, out, "[15]")
	assert.NotContains(t, out, "[14]")
}

func TestSummaryLine(t *testing.T) {
	r := NewRenderer()

	t.Run("empty", func(t *testing.T) {
		assert.Contains(t, r.Render(baseState()), "No range selected")
	})

	t.Run("partial", func(t *testing.T) {
		state := baseState()
		state.Selection = domain.PartialSelection(march2024(4))
		assert.Contains(t, r.Render(state), "Start 2024-03-04 · pick an end date")
	})

	t.Run("complete with weekends", func(t *testing.T) {
		state := baseState()
		state.Selection = domain.CompleteSelection(march2024(1), march2024(11))
		change := domain.NewRangeChange(march2024(1), march2024(11))
		state.Result = &change

		out := r.Render(state)
		assert.Contains(t, out, "Range 2024-03-01 → 2024-03-11")
		assert.Contains(t, out, "4 weekend days: 2024-03-02, 2024-03-03, 2024-03-09, 2024-03-10")
	})

	t.Run("weekend count hidden", func(t *testing.T) {
		state := baseState()
		state.ShowWeekendCount = false
		state.Selection = domain.CompleteSelection(march2024(1), march2024(11))
		change := domain.NewRangeChange(march2024(1), march2024(11))
		state.Result = &change
		assert.NotContains(t, r.Render(state), "weekend days")
	})

	t.Run("no weekends", func(t *testing.T) {
		state := baseState()
		state.Selection = domain.CompleteSelection(march2024(4), march2024(8))
		change := domain.NewRangeChange(march2024(4), march2024(8))
		state.Result = &change
		assert.Contains(t, r.Render(state), "No weekend days in range")
	})
}

func TestWeekendListIsCapped(t *testing.T) {
	r := NewRenderer()
	change := domain.NewRangeChange(march2024(1), calendar.New(2024, time.April, 30))
	out := r.renderWeekends(change.WeekendDates)
	assert.Contains(t, out, "18 weekend days")
	assert.Contains(t, out, "+12 more")
}

func TestPresetList(t *testing.T) {
	r := NewRenderer()
	state := baseState()
	state.Presets = []domain.PredefinedRange{
		{Label: "Sprint", Start: march2024(4), End: march2024(15)},
		{Label: "Launch week", Start: march2024(18), End: march2024(22)},
	}

	out := r.Render(state)
	assert.Contains(t, out, "Presets")
	assert.Contains(t, out, "1 Sprint")
	assert.Contains(t, out, "2 Launch week")
	assert.Contains(t, out, "2024-03-18 → 2024-03-22")
	assert.NotContains(t, out, "▸")

	state.PresetMode = true
	state.PresetIndex = 1
	assert.Contains(t, r.Render(state), "▸ 2 Launch week")

	state.PresetMode = false
	state.ActivePreset = "Sprint"
	assert.Contains(t, r.Render(state), "✓ 1 Sprint")
}

func TestStatusAndHelpFooter(t *testing.T) {
	r := NewRenderer()
	state := baseState()
	state.StatusMessage = "Weekend days cannot be picked"
	state.StatusIsError = true
	state.HelpModel = help.New()
	state.HelpKeys = testKeys{key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "done"))}

	out := r.Render(state)
	assert.Contains(t, out, "Weekend days cannot be picked")
	assert.Contains(t, out, "done")
}

func TestRenderHelpContent(t *testing.T) {
	quit := key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "done"))
	month := key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month"))
	out := RenderHelpContent(SectionsFromHelp(testKeys{quit, month}, "General"))

	assert.Contains(t, out, "rangepick Help")
	assert.Contains(t, out, "General")
	assert.Contains(t, out, "next month")
	assert.Contains(t, out, "Weekend days cannot start or end a range")
}

type testKeys []key.Binding

func (k testKeys) ShortHelp() []key.Binding  { return k }
func (k testKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k} }
