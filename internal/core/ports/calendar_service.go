package ports

import (
	"context"
	"time"

	"github.com/familyhub/calendar-hub/internal/core/domain"
)

// AddEventInput is the DTO passed from the transport layer to CalendarService.AddEvent.
type AddEventInput struct {
	ActorID     string
	Date        domain.Date
	Title       string
	Description string
	Type        string
	// IdempotencyKey is optional; a repeated key returns the event created first.
	IdempotencyKey string
}

// EventView is an event as shown to a particular user.
type EventView struct {
	domain.CalendarEvent
	CreatorName string
	CanDelete   bool
}

// UserView is a roster entry with display information.
type UserView struct {
	domain.User
	Initial string
	Active  bool
}

// ListEventsInput selects events by type and, optionally, by date.
type ListEventsInput struct {
	ActorID string
	Filter  domain.TypeFilter
	Date    *domain.Date
}

// MonthViewInput carries the current view date and a navigation action.
// A zero Date means today.
type MonthViewInput struct {
	ActorID string
	Date    domain.Date
	Nav     domain.NavAction
	Filter  domain.TypeFilter
}

// DayView is one cell of the month view.
type DayView struct {
	Day     int
	Date    domain.Date
	IsToday bool
	Events  []EventView
}

// LegendItem describes one event type in the month view legend.
type LegendItem struct {
	Type  domain.EventType
	Label string
	Color string
}

// MonthView is the projected month together with the state needed to render it.
type MonthView struct {
	Title          string
	Year           int
	Month          time.Month
	Current        domain.Date
	Today          domain.Date
	Filter         domain.TypeFilter
	StartDayOfWeek int
	DaysInMonth    int
	Weekdays       []string
	Cells          []DayView
	Legend         []LegendItem
}

// CalendarService defines the household calendar use cases.
type CalendarService interface {
	ActiveUser(ctx context.Context) (domain.User, error)
	ListUsers(ctx context.Context) ([]UserView, error)
	ToggleRole(ctx context.Context, actorID, targetID string) (domain.User, error)

	AddEvent(ctx context.Context, in AddEventInput) (*EventView, error)
	DeleteEvent(ctx context.Context, actorID, eventID string) error
	ListEvents(ctx context.Context, in ListEventsInput) ([]EventView, error)
	MonthView(ctx context.Context, in MonthViewInput) (*MonthView, error)
	Export(ctx context.Context, filter domain.TypeFilter) ([]byte, string, error)
}
