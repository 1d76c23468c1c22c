package ports

import "github.com/familyhub/calendar-hub/internal/core/domain"

// ExportEvent is a calendar item enriched with its creator's display name.
type ExportEvent struct {
	domain.CalendarEvent
	CreatorName string
}

// CalendarExporter renders events into an interchange format.
type CalendarExporter interface {
	Export(name string, events []ExportEvent) ([]byte, error)
	ContentType() string
}
