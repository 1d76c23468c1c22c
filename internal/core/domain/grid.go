package domain

import (
	"fmt"
	"strings"
	"time"
)

// Cell is one slot of the month grid. Leading cells before the 1st are empty:
// Day is zero and Events is nil.
type Cell struct {
	Day     int
	Date    Date
	IsToday bool
	Events  []CalendarEvent
}

// Empty reports whether c is a leading placeholder cell.
func (c Cell) Empty() bool {
	return c.Day == 0
}

// MonthGrid is the Sunday-start projection of one month.
type MonthGrid struct {
	Year           int
	Month          time.Month
	StartDayOfWeek int
	DaysInMonth    int
	Cells          []Cell
}

// ProjectMonth lays out the events of year/month as a grid: StartDayOfWeek empty
// cells followed by one cell per day. Events keep their input order within a
// day. today is compared by calendar date only.
func ProjectMonth(year int, month time.Month, events []CalendarEvent, today Date) MonthGrid {
	first := NewDate(year, month, 1)
	days := DaysIn(first.Year, first.Month)
	start := int(first.Weekday())

	byDay := make(map[int][]CalendarEvent)
	for _, e := range events {
		if e.Date.Year != first.Year || e.Date.Month != first.Month {
			continue
		}
		byDay[e.Date.Day] = append(byDay[e.Date.Day], e)
	}

	cells := make([]Cell, 0, start+days)
	for i := 0; i < start; i++ {
		cells = append(cells, Cell{})
	}
	for d := 1; d <= days; d++ {
		date := Date{Year: first.Year, Month: first.Month, Day: d}
		cells = append(cells, Cell{
			Day:     d,
			Date:    date,
			IsToday: date.Equal(today),
			Events:  byDay[d],
		})
	}

	return MonthGrid{
		Year:           first.Year,
		Month:          first.Month,
		StartDayOfWeek: start,
		DaysInMonth:    days,
		Cells:          cells,
	}
}

// Title renders the month heading, e.g. "February 2024".
func (g MonthGrid) Title() string {
	return fmt.Sprintf("%s %d", g.Month, g.Year)
}

// WeekdayHeaders are the Sunday-start column headings of the grid.
var WeekdayHeaders = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// NavAction moves the month view.
type NavAction string

const (
	NavNone  NavAction = ""
	NavPrev  NavAction = "prev"
	NavNext  NavAction = "next"
	NavToday NavAction = "today"
)

// ParseNavAction converts s into a NavAction. An empty string means no move.
func ParseNavAction(s string) (NavAction, error) {
	switch NavAction(strings.ToLower(strings.TrimSpace(s))) {
	case NavNone:
		return NavNone, nil
	case NavPrev:
		return NavPrev, nil
	case NavNext:
		return NavNext, nil
	case NavToday:
		return NavToday, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidNavigation, s)
	}
}

// Navigate returns the current date after applying action. prev and next move
// one month, clamping the day to the target month's length.
func Navigate(current Date, action NavAction, today Date) Date {
	switch action {
	case NavPrev:
		return current.AddMonths(-1)
	case NavNext:
		return current.AddMonths(1)
	case NavToday:
		return today
	default:
		return current
	}
}
