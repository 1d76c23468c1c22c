package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/calendar-hub/internal/core/ports"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestReadiness(t *testing.T) {
	tests := []struct {
		name       string
		deps       map[string]ports.Pinger
		wantStatus int
		wantBody   string
	}{
		{
			name:       "all healthy",
			deps:       map[string]ports.Pinger{"storage": pingerFunc(func(context.Context) error { return nil })},
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name: "one dependency down",
			deps: map[string]ports.Pinger{
				"storage": pingerFunc(func(context.Context) error { return nil }),
				"redis":   pingerFunc(func(context.Context) error { return errors.New("connection refused") }),
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := NewHealthDependenciesHandler(tt.deps).Readiness(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}

			var body readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Status != tt.wantBody {
				t.Fatalf("expected status %q, got %q", tt.wantBody, body.Status)
			}
			if len(body.Dependencies) != len(tt.deps) {
				t.Fatalf("expected %d dependencies, got %d", len(tt.deps), len(body.Dependencies))
			}
		})
	}
}

func TestLiveness(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
