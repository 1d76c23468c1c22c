package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/familyhub/calendar-hub/internal/core/domain"
	"github.com/familyhub/calendar-hub/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubBlobStore struct {
	mu     sync.Mutex
	blobs  map[string][]byte
	puts   map[string]int
	putErr error
	getErr error
}

func newStubBlobStore() *stubBlobStore {
	return &stubBlobStore{blobs: make(map[string][]byte), puts: make(map[string]int)}
}

func (s *stubBlobStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	b, ok := s.blobs[key]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	return append([]byte(nil), b...), nil
}

func (s *stubBlobStore) Put(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return s.putErr
	}
	s.blobs[key] = append([]byte(nil), payload...)
	s.puts[key]++
	return nil
}

func (s *stubBlobStore) writes(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puts[key]
}

type stubExporter struct {
	got []ports.ExportEvent
}

func (e *stubExporter) Export(_ string, events []ports.ExportEvent) ([]byte, error) {
	e.got = events
	return []byte("BEGIN:VCALENDAR"), nil
}

func (e *stubExporter) ContentType() string { return "text/calendar" }

// pendingEventID marks a reserved key whose event is not recorded yet.
const pendingEventID = ""

type stubIdempotency struct {
	keys       map[string]string
	reserveErr error
	released   []string
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{keys: make(map[string]string)}
}

func (i *stubIdempotency) Reserve(_ context.Context, key string) (string, bool, error) {
	if i.reserveErr != nil {
		return "", false, i.reserveErr
	}
	if id, ok := i.keys[key]; ok {
		return id, false, nil
	}
	i.keys[key] = pendingEventID
	return "", true, nil
}

func (i *stubIdempotency) Remember(_ context.Context, key, eventID string) error {
	i.keys[key] = eventID
	return nil
}

func (i *stubIdempotency) Release(_ context.Context, key string) error {
	delete(i.keys, key)
	i.released = append(i.released, key)
	return nil
}

type stubProvider struct {
	text  string
	err   error
	delay time.Duration
	calls int
}

func (p *stubProvider) GenerateIdea(ctx context.Context) (string, error) {
	p.calls++
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return p.text, p.err
}

var errBackendDown = errors.New("backend down")

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

var (
	u1 = domain.User{ID: "u1", Name: "Sudheer", Role: domain.RoleAdmin, AvatarColor: "bg-rose-400"}
	u2 = domain.User{ID: "u2", Name: "Aruna", Role: domain.RoleUser, AvatarColor: "bg-sky-400"}
	u3 = domain.User{ID: "u3", Name: "Amsu", Role: domain.RoleUser, AvatarColor: "bg-teal-400"}
)

func testRoster() []domain.User {
	return []domain.User{u1, u2, u3}
}

func newTestHousehold(blobs ports.BlobStore, events ...domain.CalendarEvent) *Household {
	return &Household{
		Roster: NewRosterStore(blobs, testRoster(), u1.ID),
		Events: NewEventStore(blobs, events),
	}
}

func newTestCalendarService(h *Household, idem ports.IdempotencyStore, now time.Time) (*CalendarService, *stubExporter) {
	exp := &stubExporter{}
	svc := NewCalendarService(h, exp, idem, time.UTC, zerolog.Nop())
	svc.now = func() time.Time { return now }
	return svc, exp
}
