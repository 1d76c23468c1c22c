package ports

import "github.com/familyhub/calendar-hub/internal/core/domain"

// Seed is the household state used for any blob that does not exist yet.
type Seed struct {
	Users  []domain.User
	Events []domain.CalendarEvent
}
