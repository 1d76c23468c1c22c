package handler

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/calendar-hub/internal/core/domain"
	"github.com/familyhub/calendar-hub/internal/core/ports"
)

type stubCalendarService struct {
	activeUserFn func(ctx context.Context) (domain.User, error)
	listUsersFn  func(ctx context.Context) ([]ports.UserView, error)
	toggleRoleFn func(ctx context.Context, actorID, targetID string) (domain.User, error)
	addEventFn   func(ctx context.Context, in ports.AddEventInput) (*ports.EventView, error)
	deleteFn     func(ctx context.Context, actorID, eventID string) error
	listEventsFn func(ctx context.Context, in ports.ListEventsInput) ([]ports.EventView, error)
	monthViewFn  func(ctx context.Context, in ports.MonthViewInput) (*ports.MonthView, error)
	exportFn     func(ctx context.Context, filter domain.TypeFilter) ([]byte, string, error)
}

func (s *stubCalendarService) ActiveUser(ctx context.Context) (domain.User, error) {
	return s.activeUserFn(ctx)
}

func (s *stubCalendarService) ListUsers(ctx context.Context) ([]ports.UserView, error) {
	return s.listUsersFn(ctx)
}

func (s *stubCalendarService) ToggleRole(ctx context.Context, actorID, targetID string) (domain.User, error) {
	return s.toggleRoleFn(ctx, actorID, targetID)
}

func (s *stubCalendarService) AddEvent(ctx context.Context, in ports.AddEventInput) (*ports.EventView, error) {
	return s.addEventFn(ctx, in)
}

func (s *stubCalendarService) DeleteEvent(ctx context.Context, actorID, eventID string) error {
	return s.deleteFn(ctx, actorID, eventID)
}

func (s *stubCalendarService) ListEvents(ctx context.Context, in ports.ListEventsInput) ([]ports.EventView, error) {
	return s.listEventsFn(ctx, in)
}

func (s *stubCalendarService) MonthView(ctx context.Context, in ports.MonthViewInput) (*ports.MonthView, error) {
	return s.monthViewFn(ctx, in)
}

func (s *stubCalendarService) Export(ctx context.Context, filter domain.TypeFilter) ([]byte, string, error) {
	return s.exportFn(ctx, filter)
}

type stubSessionService struct {
	joinFn   func(ctx context.Context, name, passphrase string) (*ports.Session, error)
	switchFn func(ctx context.Context, userID, passphrase string) (*ports.Session, error)
}

func (s *stubSessionService) Join(ctx context.Context, name, passphrase string) (*ports.Session, error) {
	return s.joinFn(ctx, name, passphrase)
}

func (s *stubSessionService) Switch(ctx context.Context, userID, passphrase string) (*ports.Session, error) {
	return s.switchFn(ctx, userID, passphrase)
}

type stubSuggestionService struct {
	idea domain.Idea
	err  error
}

func (s *stubSuggestionService) Suggest(context.Context) (domain.Idea, error) {
	return s.idea, s.err
}

var (
	sudheer = domain.User{ID: "u1", Name: "Sudheer", Role: domain.RoleAdmin, AvatarColor: "bg-rose-500"}
	aruna   = domain.User{ID: "u2", Name: "Aruna", Role: domain.RoleUser, AvatarColor: "bg-sky-500"}
)

// newTestContext builds an echo context with the validator installed and,
// when actorID is not empty, the claims the Auth middleware would set.
func newTestContext(method, target string, body io.Reader, actorID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actorID != "" {
		c.Set("user_id", actorID)
	}
	return c, rec
}
