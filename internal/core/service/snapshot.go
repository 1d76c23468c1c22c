package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/familyhub/calendar-hub/internal/core/domain"
	"github.com/familyhub/calendar-hub/internal/core/ports"
	"github.com/familyhub/calendar-hub/internal/pkg/metrics"
)

// eventRecord is the persisted shape of a CalendarEvent. The date is kept as a
// string so that legacy RFC 3339 timestamps can be reduced in the household's
// time zone instead of time.Local.
type eventRecord struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	CreatedBy   string `json:"createdBy"`
}

// EncodeEvents serialises the event collection as stored in the events blob.
func EncodeEvents(events []domain.CalendarEvent) ([]byte, error) {
	recs := make([]eventRecord, 0, len(events))
	for _, e := range events {
		recs = append(recs, eventRecord{
			ID:          e.ID,
			Date:        e.Date.String(),
			Title:       e.Title,
			Description: e.Description,
			Type:        string(e.Type),
			CreatedBy:   e.CreatedBy,
		})
	}
	return json.Marshal(recs)
}

// DecodeEvents parses the events blob. loc is used for timestamps written by
// older clients; nil means time.Local.
func DecodeEvents(b []byte, loc *time.Location) ([]domain.CalendarEvent, error) {
	var recs []eventRecord
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}

	events := make([]domain.CalendarEvent, 0, len(recs))
	for i, r := range recs {
		date, err := domain.ParseDate(r.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("decode events: event[%d]: %w", i, err)
		}
		t, err := domain.ParseEventType(r.Type)
		if err != nil {
			return nil, fmt.Errorf("decode events: event[%d]: %w", i, err)
		}
		events = append(events, domain.CalendarEvent{
			ID:          r.ID,
			Date:        date,
			Title:       r.Title,
			Description: r.Description,
			Type:        t,
			CreatedBy:   r.CreatedBy,
		})
	}
	return events, nil
}

// EncodeUsers serialises the roster.
func EncodeUsers(users []domain.User) ([]byte, error) {
	if users == nil {
		users = []domain.User{}
	}
	return json.Marshal(users)
}

// DecodeUsers parses the roster blob.
func DecodeUsers(b []byte) ([]domain.User, error) {
	var users []domain.User
	if err := json.Unmarshal(b, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	for i, u := range users {
		if !u.Role.Valid() {
			return nil, fmt.Errorf("decode users: user[%d]: %w: %q", i, domain.ErrInvalidRole, u.Role)
		}
	}
	return users, nil
}

// readBlob fetches key and reports whether it existed.
func readBlob(ctx context.Context, blobs ports.BlobStore, key string) ([]byte, bool, error) {
	b, err := blobs.Get(ctx, key)
	if errors.Is(err, domain.ErrSnapshotNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return b, true, nil
}

// writeBlob stores payload under key. Failures are wrapped in ErrPersistence.
func writeBlob(ctx context.Context, blobs ports.BlobStore, key string, payload []byte) error {
	start := time.Now()
	err := blobs.Put(ctx, key, payload)
	metrics.SnapshotWriteDuration.WithLabelValues(key).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SnapshotWritesTotal.WithLabelValues(key, "error").Inc()
		return fmt.Errorf("%w: write %s: %w", domain.ErrPersistence, key, err)
	}
	metrics.SnapshotWritesTotal.WithLabelValues(key, "ok").Inc()
	return nil
}
