package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/familyhub/calendar-hub/internal/core/domain"
	"github.com/familyhub/calendar-hub/internal/core/ports"
)

// EventStore owns the household's calendar items. Every successful mutation
// rewrites the whole events blob; the in-memory collection only changes once
// that write has succeeded.
type EventStore struct {
	mu     sync.RWMutex
	blobs  ports.BlobStore
	events []domain.CalendarEvent
	newID  func() string
}

// NewEventStore returns a store holding events, persisting through blobs.
func NewEventStore(blobs ports.BlobStore, events []domain.CalendarEvent) *EventStore {
	return &EventStore{
		blobs:  blobs,
		events: slices.Clone(events),
		newID:  uuid.NewString,
	}
}

// Add validates draft and appends a new event dated date and created by
// authorID. Insertion order is the stable order of same-day events.
func (s *EventStore) Add(ctx context.Context, draft domain.EventDraft, date domain.Date, authorID string) (domain.CalendarEvent, error) {
	if err := draft.Validate(); err != nil {
		return domain.CalendarEvent{}, err
	}
	if date.IsZero() {
		return domain.CalendarEvent{}, fmt.Errorf("%w: missing date", domain.ErrInvalidDate)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ev := domain.CalendarEvent{
		ID:          s.newID(),
		Date:        date,
		Title:       draft.Title,
		Description: draft.Description,
		Type:        draft.Type,
		CreatedBy:   authorID,
	}

	next := make([]domain.CalendarEvent, len(s.events), len(s.events)+1)
	copy(next, s.events)
	next = append(next, ev)

	if err := s.persist(ctx, next); err != nil {
		return domain.CalendarEvent{}, err
	}
	s.events = next
	return ev, nil
}

// Remove deletes the event with the given id. An unknown id is a no-op and
// causes no write.
func (s *EventStore) Remove(ctx context.Context, id string) error {
	_, _, err := s.RemoveIf(ctx, id, nil)
	return err
}

// RemoveIf deletes the event with the given id after allow accepts it. allow
// runs under the store lock, so the decision and the removal are atomic. The
// removed event is returned; ok is false when no event matched.
func (s *EventStore) RemoveIf(ctx context.Context, id string, allow func(domain.CalendarEvent) error) (removed domain.CalendarEvent, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.events, func(e domain.CalendarEvent) bool { return e.ID == id })
	if idx < 0 {
		return domain.CalendarEvent{}, false, nil
	}
	target := s.events[idx]
	if allow != nil {
		if err := allow(target); err != nil {
			return domain.CalendarEvent{}, false, err
		}
	}

	next := make([]domain.CalendarEvent, 0, len(s.events)-1)
	next = append(next, s.events[:idx]...)
	next = append(next, s.events[idx+1:]...)

	if err := s.persist(ctx, next); err != nil {
		return domain.CalendarEvent{}, false, err
	}
	s.events = next
	return target, true, nil
}

// Get returns the event with the given id.
func (s *EventStore) Get(id string) (domain.CalendarEvent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return domain.CalendarEvent{}, false
}

// All returns a copy of every event in insertion order.
func (s *EventStore) All() []domain.CalendarEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events)
}

// FilterByDate returns the events falling on date.
func (s *EventStore) FilterByDate(date domain.Date) []domain.CalendarEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CalendarEvent, 0)
	for _, e := range s.events {
		if e.Date.Equal(date) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByType returns the events matching filter.
func (s *EventStore) FilterByType(filter domain.TypeFilter) []domain.CalendarEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CalendarEvent, 0, len(s.events))
	for _, e := range s.events {
		if filter.Matches(e.Type) {
			out = append(out, e)
		}
	}
	return out
}

func (s *EventStore) persist(ctx context.Context, events []domain.CalendarEvent) error {
	payload, err := EncodeEvents(events)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return writeBlob(ctx, s.blobs, ports.BlobEvents, payload)
}
