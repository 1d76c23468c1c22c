package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/calendar-hub/internal/core/domain"
	"github.com/familyhub/calendar-hub/internal/core/ports"
)

func TestEventHandler_Add_Success(t *testing.T) {
	cal := &stubCalendarService{
		addEventFn: func(ctx context.Context, in ports.AddEventInput) (*ports.EventView, error) {
			if in.ActorID != "u2" || in.Title != "Science fair" || in.Type != "GOAL" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if !in.Date.Equal(domain.NewDate(2024, time.February, 29)) {
				t.Fatalf("unexpected date %s", in.Date)
			}
			if in.IdempotencyKey != "key-1" {
				t.Fatalf("idempotency key not forwarded: %q", in.IdempotencyKey)
			}
			return &ports.EventView{
				CalendarEvent: domain.CalendarEvent{
					ID:        "e1",
					Date:      in.Date,
					Title:     in.Title,
					Type:      domain.EventTypeGoal,
					CreatedBy: in.ActorID,
				},
				CreatorName: "Aruna",
				CanDelete:   true,
			}, nil
		},
	}
	h := NewEventHandler(cal, time.UTC)

	c, rec := newTestContext(http.MethodPost, "/v1/events",
		strings.NewReader(`{"date":"2024-02-29","title":"Science fair","type":"GOAL"}`), "u2")
	c.Request().Header.Set("Idempotency-Key", "key-1")

	if err := h.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp eventResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "e1" || resp.Date != "2024-02-29" || resp.CreatorName != "Aruna" || !resp.CanDelete {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestEventHandler_Add_ValidationError(t *testing.T) {
	cal := &stubCalendarService{
		addEventFn: func(context.Context, ports.AddEventInput) (*ports.EventView, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewEventHandler(cal, time.UTC)

	c, _ := newTestContext(http.MethodPost, "/v1/events",
		strings.NewReader(`{"date":"2024-02-29","title":"","type":"EVENT"}`), "u2")

	err := h.Add(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestEventHandler_List_FilterAndDate(t *testing.T) {
	cal := &stubCalendarService{
		listEventsFn: func(ctx context.Context, in ports.ListEventsInput) ([]ports.EventView, error) {
			if in.Filter != domain.TypeFilter(domain.EventTypeGoal) {
				t.Fatalf("unexpected filter %q", in.Filter)
			}
			if in.Date == nil || in.Date.String() != "2024-03-15" {
				t.Fatalf("unexpected date %v", in.Date)
			}
			return []ports.EventView{{
				CalendarEvent: domain.CalendarEvent{ID: "e2", Date: *in.Date, Title: "Read 20 pages", Type: domain.EventTypeGoal, CreatedBy: "u9"},
				CreatorName:   domain.UnknownUserName,
			}}, nil
		},
	}
	h := NewEventHandler(cal, time.UTC)

	c, rec := newTestContext(http.MethodGet, "/v1/events?type=goal&date=2024-03-15", nil, "u1")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp eventListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Filter != "GOAL" || resp.Date != "2024-03-15" || resp.Count != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Events[0].CreatorName != "Unknown" {
		t.Fatalf("expected Unknown creator, got %q", resp.Events[0].CreatorName)
	}
}

func TestEventHandler_List_BadFilter(t *testing.T) {
	h := NewEventHandler(&stubCalendarService{}, time.UTC)

	c, _ := newTestContext(http.MethodGet, "/v1/events?type=CHORE", nil, "u1")

	if err := h.List(c); !errors.Is(err, domain.ErrInvalidEventType) {
		t.Fatalf("expected ErrInvalidEventType, got %v", err)
	}
}

func TestEventHandler_Delete(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  error
	}{
		{"allowed", nil, http.StatusNoContent, nil},
		{"forbidden", domain.ErrForbidden, 0, domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := &stubCalendarService{
				deleteFn: func(ctx context.Context, actorID, eventID string) error {
					if actorID != "u3" || eventID != "e1" {
						t.Fatalf("unexpected args: %s %s", actorID, eventID)
					}
					return tt.err
				},
			}
			h := NewEventHandler(cal, time.UTC)

			c, rec := newTestContext(http.MethodDelete, "/v1/events/e1", nil, "u3")
			c.SetParamNames("id")
			c.SetParamValues("e1")

			err := h.Delete(c)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
		})
	}
}
