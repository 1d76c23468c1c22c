// Package ical renders calendar items as an iCalendar (RFC 5545) document.
package ical

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/familyhub/calendar-hub/internal/core/ports"
)

const (
	productID   = "-//familyhub//calendar-hub//EN"
	uidDomain   = "calendar-hub"
	contentType = "text/calendar; charset=utf-8"
)

// Exporter writes every item as an all-day VEVENT. The item type goes into
// CATEGORIES and the creator's name is appended to the description.
type Exporter struct {
	now func() time.Time
}

func NewExporter() *Exporter {
	return &Exporter{now: time.Now}
}

func (x *Exporter) ContentType() string {
	return contentType
}

// Export serialises events into a VCALENDAR named name.
func (x *Exporter) Export(name string, events []ports.ExportEvent) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(name)

	stamp := x.now().UTC()
	for _, e := range events {
		if e.ID == "" {
			return nil, fmt.Errorf("export: event %q has no id", e.Title)
		}
		start := e.Date.Time(time.UTC)

		ve := cal.AddEvent(fmt.Sprintf("%s@%s", e.ID, uidDomain))
		ve.SetDtStampTime(stamp)
		ve.SetAllDayStartAt(start)
		ve.SetAllDayEndAt(start.AddDate(0, 0, 1))
		ve.SetSummary(e.Title)
		ve.SetDescription(description(e))
		ve.SetProperty(ics.ComponentPropertyCategories, string(e.Type))
	}

	return []byte(cal.Serialize()), nil
}

func description(e ports.ExportEvent) string {
	var b strings.Builder
	if d := strings.TrimSpace(e.Description); d != "" {
		b.WriteString(d)
		b.WriteString("\n\n")
	}
	b.WriteString("Added by ")
	b.WriteString(e.CreatorName)
	return b.String()
}
