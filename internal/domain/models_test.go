package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangepick/internal/calendar"
)

func TestSelectionVariants(t *testing.T) {
	d1 := calendar.New(2024, time.March, 4)
	d2 := calendar.New(2024, time.March, 8)

	empty := EmptySelection()
	assert.Equal(t, SelectionEmpty, empty.Kind())
	_, ok := empty.Start()
	assert.False(t, ok)
	_, ok = empty.End()
	assert.False(t, ok)

	partial := PartialSelection(d1)
	assert.Equal(t, SelectionPartial, partial.Kind())
	start, ok := partial.Start()
	assert.True(t, ok)
	assert.Equal(t, d1, start)
	_, ok = partial.End()
	assert.False(t, ok)

	complete := CompleteSelection(d2, d1)
	assert.Equal(t, SelectionComplete, complete.Kind())
	start, _ = complete.Start()
	end, ok := complete.End()
	assert.True(t, ok)
	assert.Equal(t, d1, start, "start must be the earlier date")
	assert.Equal(t, d2, end)
	assert.Equal(t, "Complete(2024-03-04, 2024-03-08)", complete.String())
}

func TestSelectionContains(t *testing.T) {
	s := CompleteSelection(calendar.New(2024, time.March, 4), calendar.New(2024, time.March, 8))
	assert.True(t, s.Contains(calendar.New(2024, time.March, 4)))
	assert.True(t, s.Contains(calendar.New(2024, time.March, 6)))
	assert.True(t, s.Contains(calendar.New(2024, time.March, 8)))
	assert.False(t, s.Contains(calendar.New(2024, time.March, 9)))

	p := PartialSelection(calendar.New(2024, time.March, 4))
	assert.True(t, p.Contains(calendar.New(2024, time.March, 4)))
	assert.False(t, p.Contains(calendar.New(2024, time.March, 5)))

	assert.False(t, EmptySelection().Contains(calendar.New(2024, time.March, 4)))
}

func TestNewRangeChange(t *testing.T) {
	change := NewRangeChange(calendar.New(2024, time.March, 1), calendar.New(2024, time.March, 10))
	assert.Equal(t, [2]string{"2024-03-01", "2024-03-10"}, change.Range)
	assert.Equal(t, []string{"2024-03-02", "2024-03-03", "2024-03-09", "2024-03-10"}, change.WeekendDates)
}

func TestRangeChangeJSON(t *testing.T) {
	change := NewRangeChange(calendar.New(2024, time.March, 4), calendar.New(2024, time.March, 8))
	data, err := json.Marshal(change)
	require.NoError(t, err)
	assert.JSONEq(t, `{"range":["2024-03-04","2024-03-08"],"weekendDates":[]}`, string(data))
}

func TestDisplayCursor(t *testing.T) {
	c := CursorFor(calendar.New(2024, time.December, 25))
	assert.Equal(t, DisplayCursor{Year: 2024, Month: 11}, c)
	assert.Equal(t, time.December, c.CalendarMonth())
	assert.Equal(t, "December 2024", c.Title())
}
