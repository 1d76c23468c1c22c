package domain

import (
	"fmt"
	"strings"
)

// EventType is the closed set of calendar item categories.
type EventType string

const (
	EventTypeEvent  EventType = "EVENT"
	EventTypeGoal   EventType = "GOAL"
	EventTypeUpdate EventType = "UPDATE"
)

// EventTypes lists every EventType in display order.
var EventTypes = []EventType{EventTypeEvent, EventTypeGoal, EventTypeUpdate}

// ParseEventType converts s into an EventType. Matching is case-insensitive.
func ParseEventType(s string) (EventType, error) {
	switch EventType(strings.ToUpper(strings.TrimSpace(s))) {
	case EventTypeEvent:
		return EventTypeEvent, nil
	case EventTypeGoal:
		return EventTypeGoal, nil
	case EventTypeUpdate:
		return EventTypeUpdate, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidEventType, s)
	}
}

// Label is the plural legend/filter label for the type.
func (t EventType) Label() string {
	switch t {
	case EventTypeEvent:
		return "Events"
	case EventTypeGoal:
		return "Goals"
	case EventTypeUpdate:
		return "Updates"
	default:
		return string(t)
	}
}

// Color is the presentation tag for the type.
func (t EventType) Color() string {
	switch t {
	case EventTypeEvent:
		return "bg-blue-400"
	case EventTypeGoal:
		return "bg-green-400"
	case EventTypeUpdate:
		return "bg-yellow-400"
	default:
		return ""
	}
}

// TypeFilter selects events by type. The zero value and FilterAll match every
// event.
type TypeFilter string

const FilterAll TypeFilter = "ALL"

// ParseTypeFilter accepts "ALL", an EventType, or an empty string (ALL).
func ParseTypeFilter(s string) (TypeFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(FilterAll)) {
		return FilterAll, nil
	}
	t, err := ParseEventType(s)
	if err != nil {
		return "", err
	}
	return TypeFilter(t), nil
}

// Matches reports whether an event of type t passes the filter.
func (f TypeFilter) Matches(t EventType) bool {
	if f == "" || f == FilterAll {
		return true
	}
	return EventType(f) == t
}

// EventDraft is the user-supplied part of a new calendar item.
type EventDraft struct {
	Title       string
	Description string
	Type        EventType
}

// Validate enforces the creation boundary: a non-blank title and a known type.
func (d EventDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	switch d.Type {
	case EventTypeEvent, EventTypeGoal, EventTypeUpdate:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEventType, d.Type)
	}
}

// CalendarEvent is a dated item on the shared calendar.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Date        Date      `json:"date"`
	Title       string    `json:"title"`
	Type        EventType `json:"type"`
	Description string    `json:"description,omitempty"`
	CreatedBy   string    `json:"createdBy"`
}
