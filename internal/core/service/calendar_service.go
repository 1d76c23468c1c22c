package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/familyhub/calendar-hub/internal/core/domain"
	"github.com/familyhub/calendar-hub/internal/core/ports"
	"github.com/familyhub/calendar-hub/internal/pkg/metrics"
)

const exportCalendarName = "Family Calendar"

// CalendarService implements the household calendar commands and views on
// top of a Household.
type CalendarService struct {
	household *Household
	exporter  ports.CalendarExporter
	idem      ports.IdempotencyStore
	loc       *time.Location
	now       func() time.Time
	logger    zerolog.Logger
}

// NewCalendarService returns a CalendarService. idem may be nil, in which case
// Idempotency-Key values are ignored. loc is the household time zone used to
// decide what "today" is.
func NewCalendarService(
	household *Household,
	exporter ports.CalendarExporter,
	idem ports.IdempotencyStore,
	loc *time.Location,
	logger zerolog.Logger,
) *CalendarService {
	if loc == nil {
		loc = time.Local
	}
	return &CalendarService{
		household: household,
		exporter:  exporter,
		idem:      idem,
		loc:       loc,
		now:       time.Now,
		logger:    logger,
	}
}

// ActiveUser returns the active member, falling back to the first roster member.
func (s *CalendarService) ActiveUser(_ context.Context) (domain.User, error) {
	u, ok := s.household.Roster.Active()
	if !ok {
		return domain.User{}, fmt.Errorf("active user: %w", domain.ErrUserNotFound)
	}
	return u, nil
}

// ListUsers returns the roster with display information.
func (s *CalendarService) ListUsers(_ context.Context) ([]ports.UserView, error) {
	active, _ := s.household.Roster.Active()
	users := s.household.Roster.ListUsers()

	views := make([]ports.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, ports.UserView{
			User:    u,
			Initial: u.Initial(),
			Active:  u.ID == active.ID,
		})
	}
	return views, nil
}

// ToggleRole flips targetID between admin and user on behalf of actorID.
// Only admins may change roles and nobody may change their own.
func (s *CalendarService) ToggleRole(ctx context.Context, actorID, targetID string) (domain.User, error) {
	actor, err := s.actor(actorID)
	if err != nil {
		return domain.User{}, fmt.Errorf("toggle role: %w", err)
	}
	target, ok := s.household.Roster.Get(targetID)
	if !ok {
		return domain.User{}, fmt.Errorf("toggle role: %w", domain.ErrUserNotFound)
	}
	if err := domain.CanChangeRole(actor, target); err != nil {
		return domain.User{}, fmt.Errorf("toggle role: %w", err)
	}

	if err := s.household.Roster.ToggleRole(ctx, targetID); err != nil {
		s.logger.Error().Err(err).Str("user_id", targetID).Msg("failed to toggle role")
		return domain.User{}, fmt.Errorf("toggle role: %w", err)
	}

	updated, _ := s.household.Roster.Get(targetID)
	metrics.RoleChangesTotal.WithLabelValues(string(updated.Role)).Inc()
	s.logger.Info().
		Str("actor_id", actor.ID).
		Str("user_id", updated.ID).
		Str("role", string(updated.Role)).
		Msg("role changed")

	return updated, nil
}

// AddEvent validates and stores a new calendar item created by the acting user.
// A repeated Idempotency-Key returns the event created the first time; a
// repeat that arrives while the first request is still running fails with
// ErrRequestInFlight.
func (s *CalendarService) AddEvent(ctx context.Context, in ports.AddEventInput) (*ports.EventView, error) {
	actor, err := s.actor(in.ActorID)
	if err != nil {
		return nil, fmt.Errorf("add event: %w", err)
	}

	eventType, err := domain.ParseEventType(in.Type)
	if err != nil {
		return nil, fmt.Errorf("add event: %w", err)
	}

	key, replay, err := s.reserve(ctx, actor, in.IdempotencyKey)
	if err != nil {
		return nil, fmt.Errorf("add event: %w", err)
	}
	if replay != nil {
		return replay, nil
	}

	draft := domain.EventDraft{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Type:        eventType,
	}

	ev, err := s.household.Events.Add(ctx, draft, in.Date, actor.ID)
	if err != nil {
		if key != "" {
			if rerr := s.idem.Release(ctx, key); rerr != nil {
				s.logger.Warn().Err(rerr).Str("idempotency_key", in.IdempotencyKey).Msg("failed to release idempotency key")
			}
		}
		return nil, fmt.Errorf("add event: %w", err)
	}

	if key != "" {
		if err := s.idem.Remember(ctx, key, ev.ID); err != nil {
			s.logger.Warn().Err(err).Str("event_id", ev.ID).Msg("failed to store idempotency key")
		}
	}

	metrics.EventsAddedTotal.WithLabelValues(string(ev.Type)).Inc()
	s.logger.Info().
		Str("event_id", ev.ID).
		Str("type", string(ev.Type)).
		Str("date", ev.Date.String()).
		Str("created_by", actor.ID).
		Msg("event added")

	view := s.view(ev, actor, s.household.Roster.ListUsers())
	return &view, nil
}

// reserve claims the Idempotency-Key for actor. It returns the store key the
// caller now owns, or the replayed event when the key already produced one.
// An empty store key means creation proceeds without idempotency.
func (s *CalendarService) reserve(ctx context.Context, actor domain.User, clientKey string) (string, *ports.EventView, error) {
	if s.idem == nil || clientKey == "" {
		return "", nil, nil
	}
	key := idempotencyKey(actor.ID, clientKey)

	id, reserved, err := s.idem.Reserve(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Msg("idempotency reservation failed, creating anyway")
		return "", nil, nil
	}
	if reserved {
		return key, nil, nil
	}
	if id == "" {
		metrics.IdempotencyConflictsTotal.Inc()
		return "", nil, domain.ErrRequestInFlight
	}

	ev, ok := s.household.Events.Get(id)
	if !ok {
		// The replayed event was deleted since; record the new one instead.
		return key, nil, nil
	}

	metrics.IdempotentReplaysTotal.Inc()
	s.logger.Info().Str("idempotency_key", clientKey).Str("event_id", id).Msg("idempotent replay")
	view := s.view(ev, actor, s.household.Roster.ListUsers())
	return "", &view, nil
}

func idempotencyKey(actorID, key string) string {
	return actorID + ":" + key
}

// DeleteEvent removes eventID if actorID is an admin or the event's creator.
// Removing an id that does not exist succeeds without effect.
func (s *CalendarService) DeleteEvent(ctx context.Context, actorID, eventID string) error {
	actor, err := s.actor(actorID)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	removed, ok, err := s.household.Events.RemoveIf(ctx, eventID, func(e domain.CalendarEvent) error {
		if !domain.CanDelete(actor, e) {
			return domain.ErrForbidden
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.DeletesDeniedTotal.Inc()
			s.logger.Warn().Str("actor_id", actor.ID).Str("event_id", eventID).Msg("delete denied")
		}
		return fmt.Errorf("delete event: %w", err)
	}
	if !ok {
		return nil
	}

	metrics.EventsRemovedTotal.WithLabelValues(string(removed.Type)).Inc()
	s.logger.Info().Str("event_id", removed.ID).Str("actor_id", actor.ID).Msg("event removed")
	return nil
}

// ListEvents returns the events matching the filter, optionally restricted to
// a single date, as seen by the acting user.
func (s *CalendarService) ListEvents(_ context.Context, in ports.ListEventsInput) ([]ports.EventView, error) {
	actor, err := s.actor(in.ActorID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	var events []domain.CalendarEvent
	if in.Date != nil {
		for _, e := range s.household.Events.FilterByDate(*in.Date) {
			if in.Filter.Matches(e.Type) {
				events = append(events, e)
			}
		}
	} else {
		events = s.household.Events.FilterByType(in.Filter)
	}

	roster := s.household.Roster.ListUsers()
	views := make([]ports.EventView, 0, len(events))
	for _, e := range events {
		views = append(views, s.view(e, actor, roster))
	}
	return views, nil
}

// MonthView applies the navigation action to the requested date and projects
// that month. "Today" is recomputed from the clock on every call.
func (s *CalendarService) MonthView(_ context.Context, in ports.MonthViewInput) (*ports.MonthView, error) {
	actor, err := s.actor(in.ActorID)
	if err != nil {
		return nil, fmt.Errorf("month view: %w", err)
	}

	today := s.today()
	current := in.Date
	if current.IsZero() {
		current = today
	}
	current = domain.Navigate(current, in.Nav, today)

	filter := in.Filter
	if filter == "" {
		filter = domain.FilterAll
	}

	grid := domain.ProjectMonth(current.Year, current.Month, s.household.Events.FilterByType(filter), today)
	roster := s.household.Roster.ListUsers()

	cells := make([]ports.DayView, 0, len(grid.Cells))
	for _, c := range grid.Cells {
		day := ports.DayView{Day: c.Day, Date: c.Date, IsToday: c.IsToday}
		if len(c.Events) > 0 {
			day.Events = make([]ports.EventView, 0, len(c.Events))
			for _, e := range c.Events {
				day.Events = append(day.Events, s.view(e, actor, roster))
			}
		}
		cells = append(cells, day)
	}

	legend := make([]ports.LegendItem, 0, len(domain.EventTypes))
	for _, t := range domain.EventTypes {
		legend = append(legend, ports.LegendItem{Type: t, Label: t.Label(), Color: t.Color()})
	}

	return &ports.MonthView{
		Title:          grid.Title(),
		Year:           grid.Year,
		Month:          grid.Month,
		Current:        current,
		Today:          today,
		Filter:         filter,
		StartDayOfWeek: grid.StartDayOfWeek,
		DaysInMonth:    grid.DaysInMonth,
		Weekdays:       domain.WeekdayHeaders,
		Cells:          cells,
		Legend:         legend,
	}, nil
}

// Export renders the events matching filter and returns the document with its
// content type.
func (s *CalendarService) Export(_ context.Context, filter domain.TypeFilter) ([]byte, string, error) {
	events := s.household.Events.FilterByType(filter)
	roster := s.household.Roster.ListUsers()

	out := make([]ports.ExportEvent, 0, len(events))
	for _, e := range events {
		out = append(out, ports.ExportEvent{CalendarEvent: e, CreatorName: creatorName(roster, e.CreatedBy)})
	}

	doc, err := s.exporter.Export(exportCalendarName, out)
	if err != nil {
		return nil, "", fmt.Errorf("export: %w", err)
	}
	return doc, s.exporter.ContentType(), nil
}

func (s *CalendarService) actor(id string) (domain.User, error) {
	u, ok := s.household.Roster.Get(id)
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *CalendarService) today() domain.Date {
	return domain.DateOf(s.now().In(s.loc))
}

func (s *CalendarService) view(e domain.CalendarEvent, actor domain.User, roster []domain.User) ports.EventView {
	return ports.EventView{
		CalendarEvent: e,
		CreatorName:   creatorName(roster, e.CreatedBy),
		CanDelete:     domain.CanDelete(actor, e),
	}
}

func creatorName(roster []domain.User, id string) string {
	for _, u := range roster {
		if u.ID == id {
			return u.Name
		}
	}
	return domain.UnknownUserName
}
