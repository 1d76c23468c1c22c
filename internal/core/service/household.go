package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/familyhub/calendar-hub/internal/core/domain"
	"github.com/familyhub/calendar-hub/internal/core/ports"
)

// Household is the process-wide calendar state: the roster and the events.
// It is built once at startup and passed to the services that need it.
type Household struct {
	Roster *RosterStore
	Events *EventStore
}

// LoadHousehold reads the three blobs from blobs. Any blob that does not exist
// yet is filled from seed and written back, so the next start sees the same
// state.
func LoadHousehold(ctx context.Context, blobs ports.BlobStore, seed ports.Seed, loc *time.Location, log zerolog.Logger) (*Household, error) {
	users, err := loadUsers(ctx, blobs, seed, log)
	if err != nil {
		return nil, err
	}

	activeID, err := loadActiveID(ctx, blobs, users, log)
	if err != nil {
		return nil, err
	}

	events, err := loadEvents(ctx, blobs, seed, loc, log)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("users", len(users)).
		Int("events", len(events)).
		Str("active_user", activeID).
		Msg("household loaded")

	return &Household{
		Roster: NewRosterStore(blobs, users, activeID),
		Events: NewEventStore(blobs, events),
	}, nil
}

func loadUsers(ctx context.Context, blobs ports.BlobStore, seed ports.Seed, log zerolog.Logger) ([]domain.User, error) {
	b, found, err := readBlob(ctx, blobs, ports.BlobUsers)
	if err != nil {
		return nil, fmt.Errorf("load household: %w", err)
	}
	if found {
		users, err := DecodeUsers(b)
		if err != nil {
			return nil, fmt.Errorf("load household: %w", err)
		}
		return users, nil
	}

	payload, err := EncodeUsers(seed.Users)
	if err != nil {
		return nil, fmt.Errorf("load household: %w", err)
	}
	if err := writeBlob(ctx, blobs, ports.BlobUsers, payload); err != nil {
		return nil, fmt.Errorf("load household: seed users: %w", err)
	}
	log.Info().Int("users", len(seed.Users)).Msg("roster seeded")
	return seed.Users, nil
}

func loadActiveID(ctx context.Context, blobs ports.BlobStore, users []domain.User, log zerolog.Logger) (string, error) {
	b, found, err := readBlob(ctx, blobs, ports.BlobCurrentUser)
	if err != nil {
		return "", fmt.Errorf("load household: %w", err)
	}
	if found {
		var current domain.User
		if err := json.Unmarshal(b, &current); err != nil {
			log.Warn().Err(err).Msg("unreadable current user, falling back to first roster member")
			return "", nil
		}
		return current.ID, nil
	}

	if len(users) == 0 {
		return "", nil
	}
	payload, err := json.Marshal(users[0])
	if err != nil {
		return "", fmt.Errorf("load household: %w", err)
	}
	if err := writeBlob(ctx, blobs, ports.BlobCurrentUser, payload); err != nil {
		return "", fmt.Errorf("load household: seed current user: %w", err)
	}
	return users[0].ID, nil
}

func loadEvents(ctx context.Context, blobs ports.BlobStore, seed ports.Seed, loc *time.Location, log zerolog.Logger) ([]domain.CalendarEvent, error) {
	b, found, err := readBlob(ctx, blobs, ports.BlobEvents)
	if err != nil {
		return nil, fmt.Errorf("load household: %w", err)
	}
	if found {
		events, err := DecodeEvents(b, loc)
		if err != nil {
			return nil, fmt.Errorf("load household: %w", err)
		}
		return events, nil
	}

	payload, err := EncodeEvents(seed.Events)
	if err != nil {
		return nil, fmt.Errorf("load household: %w", err)
	}
	if err := writeBlob(ctx, blobs, ports.BlobEvents, payload); err != nil {
		return nil, fmt.Errorf("load household: seed events: %w", err)
	}
	log.Info().Int("events", len(seed.Events)).Msg("events seeded")
	return seed.Events, nil
}
