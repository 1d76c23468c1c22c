package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/familyhub/calendar-hub/internal/core/domain"
	"github.com/familyhub/calendar-hub/internal/core/ports"
)

func testSeed() ports.Seed {
	return ports.Seed{
		Users: testRoster(),
		Events: []domain.CalendarEvent{
			{ID: "s1", Date: domain.NewDate(2024, time.March, 15), Title: "Family Movie Night", Type: domain.EventTypeEvent, CreatedBy: "u1"},
		},
	}
}

func TestLoadHousehold_SeedsMissingBlobs(t *testing.T) {
	blobs := newStubBlobStore()

	h, err := LoadHousehold(context.Background(), blobs, testSeed(), time.UTC, zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadHousehold: %v", err)
	}
	if len(h.Roster.ListUsers()) != 3 || len(h.Events.All()) != 1 {
		t.Fatal("expected seeded state")
	}
	for _, key := range []string{ports.BlobUsers, ports.BlobCurrentUser, ports.BlobEvents} {
		if blobs.writes(key) != 1 {
			t.Fatalf("expected %s to be written once, got %d", key, blobs.writes(key))
		}
	}
	if active, _ := h.Roster.Active(); active.ID != "u1" {
		t.Fatalf("expected first user active, got %s", active.ID)
	}
}

func TestLoadHousehold_ReadsExistingBlobs(t *testing.T) {
	blobs := newStubBlobStore()
	blobs.blobs[ports.BlobUsers] = []byte(`[{"id":"x","name":"Xena","role":"admin","avatarColor":"bg-pink-400"},{"id":"y","name":"Yuri","role":"user","avatarColor":"bg-lime-400"}]`)
	blobs.blobs[ports.BlobCurrentUser] = []byte(`{"id":"y","name":"Yuri","role":"user","avatarColor":"bg-lime-400"}`)
	// Legacy clients stored full timestamps; 22:30Z on the 9th is the 10th in UTC+9.
	blobs.blobs[ports.BlobEvents] = []byte(`[{"id":"e","date":"2024-03-09T22:30:00.000Z","title":"Old","type":"GOAL","createdBy":"x"}]`)

	tokyo := time.FixedZone("JST", 9*60*60)
	h, err := LoadHousehold(context.Background(), blobs, testSeed(), tokyo, zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadHousehold: %v", err)
	}

	if active, _ := h.Roster.Active(); active.ID != "y" {
		t.Fatalf("expected y active, got %s", active.ID)
	}
	events := h.Events.All()
	if len(events) != 1 || !events[0].Date.Equal(domain.NewDate(2024, time.March, 10)) {
		t.Fatalf("unexpected events: %+v", events)
	}
	if blobs.writes(ports.BlobUsers)+blobs.writes(ports.BlobEvents)+blobs.writes(ports.BlobCurrentUser) != 0 {
		t.Fatal("existing blobs must not be rewritten on load")
	}
}

func TestLoadHousehold_StaleActiveUserFallsBack(t *testing.T) {
	blobs := newStubBlobStore()
	blobs.blobs[ports.BlobCurrentUser] = []byte(`{"id":"deleted","name":"Gone","role":"user"}`)

	h, err := LoadHousehold(context.Background(), blobs, testSeed(), time.UTC, zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadHousehold: %v", err)
	}
	if active, _ := h.Roster.Active(); active.ID != "u1" {
		t.Fatalf("expected fallback to u1, got %s", active.ID)
	}
}

func TestLoadHousehold_BackendError(t *testing.T) {
	blobs := newStubBlobStore()
	blobs.getErr = errBackendDown

	if _, err := LoadHousehold(context.Background(), blobs, testSeed(), time.UTC, zerolog.Nop()); !errors.Is(err, errBackendDown) {
		t.Fatalf("expected backend error, got %v", err)
	}
}
