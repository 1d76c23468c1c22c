package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/calendar-hub/internal/core/domain"
	"github.com/familyhub/calendar-hub/internal/core/ports"
)

func TestUserHandler_List(t *testing.T) {
	cal := &stubCalendarService{
		listUsersFn: func(context.Context) ([]ports.UserView, error) {
			return []ports.UserView{
				{User: sudheer, Initial: "S", Active: true},
				{User: aruna, Initial: "A"},
			}, nil
		},
	}
	h := NewUserHandler(cal)

	c, rec := newTestContext(http.MethodGet, "/v1/users", nil, "u1")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp))
	}
	if !resp[0].Active || resp[1].Active {
		t.Fatalf("active flag not mapped: %+v", resp)
	}
	if resp[1].Initial != "A" {
		t.Fatalf("expected initial A, got %q", resp[1].Initial)
	}
}

func TestUserHandler_ToggleRole(t *testing.T) {
	cal := &stubCalendarService{
		toggleRoleFn: func(ctx context.Context, actorID, targetID string) (domain.User, error) {
			if actorID != "u1" || targetID != "u2" {
				t.Fatalf("unexpected args: %s %s", actorID, targetID)
			}
			promoted := aruna
			promoted.Role = domain.RoleAdmin
			return promoted, nil
		},
	}
	h := NewUserHandler(cal)

	c, rec := newTestContext(http.MethodPatch, "/v1/users/u2/role", nil, "u1")
	c.SetParamNames("id")
	c.SetParamValues("u2")

	if err := h.ToggleRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Role != "admin" {
		t.Fatalf("expected admin, got %q", resp.Role)
	}
}

func TestUserHandler_ToggleRole_Self(t *testing.T) {
	cal := &stubCalendarService{
		toggleRoleFn: func(context.Context, string, string) (domain.User, error) {
			return domain.User{}, domain.ErrSelfRoleChange
		},
	}
	h := NewUserHandler(cal)

	c, _ := newTestContext(http.MethodPatch, "/v1/users/u1/role", nil, "u1")
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.ToggleRole(c); !errors.Is(err, domain.ErrSelfRoleChange) {
		t.Fatalf("expected ErrSelfRoleChange, got %v", err)
	}
}

func TestUserHandler_ToggleRole_NoClaims(t *testing.T) {
	h := NewUserHandler(&stubCalendarService{})

	c, _ := newTestContext(http.MethodPatch, "/v1/users/u2/role", nil, "")

	err := h.ToggleRole(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
