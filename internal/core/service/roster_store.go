package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/familyhub/calendar-hub/internal/core/domain"
	"github.com/familyhub/calendar-hub/internal/core/ports"
)

// RosterStore owns the household members and the active member. Mutations
// are computed on a copy and committed only after the blob write succeeds.
type RosterStore struct {
	mu       sync.RWMutex
	blobs    ports.BlobStore
	users    []domain.User
	activeID string
}

// NewRosterStore returns a store holding users with activeID as the active
// member.
func NewRosterStore(blobs ports.BlobStore, users []domain.User, activeID string) *RosterStore {
	return &RosterStore{
		blobs:    blobs,
		users:    slices.Clone(users),
		activeID: activeID,
	}
}

// ListUsers returns a copy of the roster in insertion order.
func (s *RosterStore) ListUsers() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users)
}

// Get returns the member with the given id.
func (s *RosterStore) Get(id string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.users[i], true
	}
	return domain.User{}, false
}

// Active returns the active member. When the stored id no longer names a
// roster member the first member is used; ok is false only for an empty
// roster.
func (s *RosterStore) Active() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(s.activeID); i >= 0 {
		return s.users[i], true
	}
	if len(s.users) == 0 {
		return domain.User{}, false
	}
	return s.users[0], true
}

// SetActiveUser makes id the active member. An unknown id is a silent no-op.
func (s *RosterStore) SetActiveUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	payload, err := json.Marshal(s.users[i])
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	if err := writeBlob(ctx, s.blobs, ports.BlobCurrentUser, payload); err != nil {
		return err
	}
	s.activeID = id
	return nil
}

// ToggleRole flips the role of member id between admin and user. An unknown id
// is a silent no-op. No self-restriction applies at this level.
func (s *RosterStore) ToggleRole(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	next := slices.Clone(s.users)
	next[i].Role = next[i].Role.Toggled()

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.users = next
	return nil
}

// AddUser appends u to the roster.
func (s *RosterStore) AddUser(ctx context.Context, u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(u.ID) >= 0 {
		return fmt.Errorf("add user %s: duplicate id", u.ID)
	}

	next := make([]domain.User, len(s.users), len(s.users)+1)
	copy(next, s.users)
	next = append(next, u)

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.users = next
	return nil
}

func (s *RosterStore) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.users, func(u domain.User) bool { return u.ID == id })
}

func (s *RosterStore) persist(ctx context.Context, users []domain.User) error {
	payload, err := EncodeUsers(users)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return writeBlob(ctx, s.blobs, ports.BlobUsers, payload)
}
