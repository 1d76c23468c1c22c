package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectMonth_February2024(t *testing.T) {
	grid := ProjectMonth(2024, time.February, nil, NewDate(2024, time.February, 14))

	assert.Equal(t, 29, grid.DaysInMonth)
	// 2024-02-01 was a Thursday.
	assert.Equal(t, 4, grid.StartDayOfWeek)
	require.Len(t, grid.Cells, grid.StartDayOfWeek+grid.DaysInMonth)

	for i := 0; i < grid.StartDayOfWeek; i++ {
		assert.True(t, grid.Cells[i].Empty(), "cell %d should be a placeholder", i)
	}
	assert.Equal(t, 1, grid.Cells[4].Day)
	assert.Equal(t, 29, grid.Cells[len(grid.Cells)-1].Day)
	assert.Equal(t, "February 2024", grid.Title())
}

func TestProjectMonth_CellCountEveryMonth(t *testing.T) {
	for _, year := range []int{2023, 2024, 2100} {
		for m := time.January; m <= time.December; m++ {
			grid := ProjectMonth(year, m, nil, Date{})
			first := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)

			assert.Equal(t, int(first.Weekday()), grid.StartDayOfWeek, "%d-%02d", year, m)
			assert.Equal(t, first.AddDate(0, 1, -1).Day(), grid.DaysInMonth, "%d-%02d", year, m)
			assert.Len(t, grid.Cells, grid.StartDayOfWeek+grid.DaysInMonth)
		}
	}
}

func TestProjectMonth_PlacesEventsAndToday(t *testing.T) {
	events := []CalendarEvent{
		{ID: "a", Date: NewDate(2024, time.March, 10), Title: "first", Type: EventTypeEvent},
		{ID: "b", Date: NewDate(2024, time.April, 10), Title: "other month", Type: EventTypeGoal},
		{ID: "c", Date: NewDate(2024, time.March, 10), Title: "second", Type: EventTypeUpdate},
		{ID: "d", Date: NewDate(2023, time.March, 10), Title: "other year", Type: EventTypeEvent},
	}
	today := NewDate(2024, time.March, 10)

	grid := ProjectMonth(2024, time.March, events, today)

	var todayCells int
	for _, c := range grid.Cells {
		if c.IsToday {
			todayCells++
			require.Len(t, c.Events, 2)
			assert.Equal(t, "a", c.Events[0].ID)
			assert.Equal(t, "c", c.Events[1].ID)
		} else {
			assert.Empty(t, c.Events)
		}
	}
	assert.Equal(t, 1, todayCells)
}

func TestNavigate_ClampsDay(t *testing.T) {
	tests := []struct {
		name    string
		current Date
		action  NavAction
		want    Date
	}{
		{"jan31 next non-leap", NewDate(2023, time.January, 31), NavNext, NewDate(2023, time.February, 28)},
		{"jan31 next leap", NewDate(2024, time.January, 31), NavNext, NewDate(2024, time.February, 29)},
		{"mar31 prev leap", NewDate(2024, time.March, 31), NavPrev, NewDate(2024, time.February, 29)},
		{"dec rolls year", NewDate(2024, time.December, 15), NavNext, NewDate(2025, time.January, 15)},
		{"jan rolls back", NewDate(2024, time.January, 15), NavPrev, NewDate(2023, time.December, 15)},
		{"no action", NewDate(2024, time.May, 5), NavNone, NewDate(2024, time.May, 5)},
	}

	today := NewDate(2024, time.June, 1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Navigate(tt.current, tt.action, today)
			assert.Equal(t, tt.want, got)
			if tt.action == NavNext || tt.action == NavPrev {
				assert.NotEqual(t, time.March, got.Month, "month navigation must never skip February")
			}
		})
	}
}

func TestNavigate_Today(t *testing.T) {
	today := NewDate(2024, time.June, 1)
	assert.Equal(t, today, Navigate(NewDate(1999, time.January, 1), NavToday, today))
}

func TestParseNavAction(t *testing.T) {
	a, err := ParseNavAction(" Next ")
	require.NoError(t, err)
	assert.Equal(t, NavNext, a)

	_, err = ParseNavAction("sideways")
	assert.ErrorIs(t, err, ErrInvalidNavigation)
}
