package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/familyhub/calendar-hub/internal/core/domain"
	"github.com/familyhub/calendar-hub/internal/core/ports"
)

func TestCalendarHandler_Month(t *testing.T) {
	cal := &stubCalendarService{
		monthViewFn: func(ctx context.Context, in ports.MonthViewInput) (*ports.MonthView, error) {
			if in.ActorID != "u1" || in.Nav != domain.NavNext || in.Filter != domain.FilterAll {
				t.Fatalf("unexpected input: %+v", in)
			}
			if !in.Date.Equal(domain.NewDate(2024, time.January, 31)) {
				t.Fatalf("unexpected date %s", in.Date)
			}

			current := domain.NewDate(2024, time.February, 29)
			grid := domain.ProjectMonth(2024, time.February, []domain.CalendarEvent{
				{ID: "e1", Date: current, Title: "Leap day", Type: domain.EventTypeEvent, CreatedBy: "u1"},
			}, domain.NewDate(2024, time.February, 10))

			view := &ports.MonthView{
				Title:          grid.Title(),
				Year:           grid.Year,
				Month:          grid.Month,
				Current:        current,
				Today:          domain.NewDate(2024, time.February, 10),
				Filter:         domain.FilterAll,
				StartDayOfWeek: grid.StartDayOfWeek,
				DaysInMonth:    grid.DaysInMonth,
				Weekdays:       domain.WeekdayHeaders,
			}
			for _, c := range grid.Cells {
				day := ports.DayView{Day: c.Day, Date: c.Date, IsToday: c.IsToday}
				for _, e := range c.Events {
					day.Events = append(day.Events, ports.EventView{CalendarEvent: e, CreatorName: "Sudheer", CanDelete: true})
				}
				view.Cells = append(view.Cells, day)
			}
			for _, et := range domain.EventTypes {
				view.Legend = append(view.Legend, ports.LegendItem{Type: et, Label: et.Label(), Color: et.Color()})
			}
			return view, nil
		},
	}
	h := NewCalendarHandler(cal, time.UTC)

	c, rec := newTestContext(http.MethodGet, "/v1/calendar?date=2024-01-31&nav=next", nil, "u1")

	if err := h.Month(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp monthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Title != "February 2024" || resp.Current != "2024-02-29" {
		t.Fatalf("unexpected header: %q %q", resp.Title, resp.Current)
	}
	if resp.DaysInMonth != 29 || resp.StartDayOfWeek != 4 {
		t.Fatalf("unexpected grid shape: %d days, start %d", resp.DaysInMonth, resp.StartDayOfWeek)
	}
	if len(resp.Cells) != 33 {
		t.Fatalf("expected 33 cells, got %d", len(resp.Cells))
	}
	if resp.Cells[0].Day != 0 || resp.Cells[0].Date != "" {
		t.Fatalf("leading cell should be empty: %+v", resp.Cells[0])
	}
	last := resp.Cells[len(resp.Cells)-1]
	if last.Day != 29 || len(last.Events) != 1 || last.Events[0].Title != "Leap day" {
		t.Fatalf("unexpected last cell: %+v", last)
	}
	if !resp.Cells[4+9].IsToday {
		t.Fatalf("expected Feb 10 to be today")
	}
	if len(resp.Legend) != 3 || resp.Legend[1].Label != "Goals" {
		t.Fatalf("unexpected legend: %+v", resp.Legend)
	}
}

func TestCalendarHandler_Month_BadNav(t *testing.T) {
	h := NewCalendarHandler(&stubCalendarService{}, time.UTC)

	c, _ := newTestContext(http.MethodGet, "/v1/calendar?nav=sideways", nil, "u1")

	if err := h.Month(c); !errors.Is(err, domain.ErrInvalidNavigation) {
		t.Fatalf("expected ErrInvalidNavigation, got %v", err)
	}
}

func TestCalendarHandler_Month_BadDate(t *testing.T) {
	h := NewCalendarHandler(&stubCalendarService{}, time.UTC)

	c, _ := newTestContext(http.MethodGet, "/v1/calendar?date=yesterday", nil, "u1")

	if err := h.Month(c); !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestCalendarHandler_Export(t *testing.T) {
	cal := &stubCalendarService{
		exportFn: func(ctx context.Context, filter domain.TypeFilter) ([]byte, string, error) {
			if filter != domain.TypeFilter(domain.EventTypeUpdate) {
				t.Fatalf("unexpected filter %q", filter)
			}
			return []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"), "text/calendar; charset=utf-8", nil
		},
	}
	h := NewCalendarHandler(cal, time.UTC)

	c, rec := newTestContext(http.MethodGet, "/v1/calendar/export.ics?type=UPDATE", nil, "u1")

	if err := h.Export(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/calendar; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if rec.Header().Get("Content-Disposition") == "" {
		t.Fatalf("missing content disposition")
	}
}
