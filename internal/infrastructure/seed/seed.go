// Package seed loads the initial household roster and starter events.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/familyhub/calendar-hub/internal/core/domain"
	"github.com/familyhub/calendar-hub/internal/core/ports"
)

//go:embed default.yaml
var defaultSeed []byte

type document struct {
	Users  []userEntry  `yaml:"users"`
	Events []eventEntry `yaml:"events"`
}

type userEntry struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Role        string `yaml:"role"`
	AvatarColor string `yaml:"avatarColor"`
}

type eventEntry struct {
	Title       string `yaml:"title"`
	Type        string `yaml:"type"`
	DayOffset   int    `yaml:"dayOffset"`
	CreatedBy   string `yaml:"createdBy"`
	Description string `yaml:"description"`
}

// Load reads the seed document at path, or the built-in one when path is
// empty, and resolves event offsets against today.
func Load(path string, today domain.Date) (ports.Seed, error) {
	raw := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return ports.Seed{}, fmt.Errorf("seed: %w", err)
		}
		raw = b
	}
	return Parse(raw, today)
}

// Parse decodes a YAML seed document.
func Parse(raw []byte, today domain.Date) (ports.Seed, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return ports.Seed{}, fmt.Errorf("seed: decode: %w", err)
	}
	if len(doc.Users) == 0 {
		return ports.Seed{}, fmt.Errorf("seed: at least one user is required")
	}

	out := ports.Seed{
		Users:  make([]domain.User, 0, len(doc.Users)),
		Events: make([]domain.CalendarEvent, 0, len(doc.Events)),
	}

	ids := make(map[string]bool, len(doc.Users))
	for i, u := range doc.Users {
		role, err := domain.ParseRole(u.Role)
		if err != nil {
			return ports.Seed{}, fmt.Errorf("seed: users[%d]: %w", i, err)
		}
		if u.ID == "" || ids[u.ID] {
			return ports.Seed{}, fmt.Errorf("seed: users[%d]: missing or duplicate id %q", i, u.ID)
		}
		ids[u.ID] = true

		color := u.AvatarColor
		if color == "" {
			color = domain.AvatarColors[i%len(domain.AvatarColors)]
		}
		out.Users = append(out.Users, domain.User{ID: u.ID, Name: u.Name, Role: role, AvatarColor: color})
	}

	for i, e := range doc.Events {
		t, err := domain.ParseEventType(e.Type)
		if err != nil {
			return ports.Seed{}, fmt.Errorf("seed: events[%d]: %w", i, err)
		}
		draft := domain.EventDraft{Title: e.Title, Description: e.Description, Type: t}
		if err := draft.Validate(); err != nil {
			return ports.Seed{}, fmt.Errorf("seed: events[%d]: %w", i, err)
		}
		out.Events = append(out.Events, domain.CalendarEvent{
			ID:          uuid.NewString(),
			Date:        today.AddDays(e.DayOffset),
			Title:       draft.Title,
			Description: draft.Description,
			Type:        t,
			CreatedBy:   e.CreatedBy,
		})
	}

	return out, nil
}
