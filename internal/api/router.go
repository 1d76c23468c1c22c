package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/familyhub/calendar-hub/docs"
	"github.com/familyhub/calendar-hub/internal/api/handler"
	"github.com/familyhub/calendar-hub/internal/api/middleware"
	"github.com/familyhub/calendar-hub/internal/core/domain"
	"github.com/familyhub/calendar-hub/internal/core/ports"
	"github.com/familyhub/calendar-hub/internal/infrastructure/http/handlers"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Logger      zerolog.Logger
	JWTSecret   string
	Location    *time.Location
	Calendar    ports.CalendarService
	Sessions    ports.SessionService
	Suggestions ports.SuggestionService
	// Roles resolves the live role of a token's member. Optional.
	Roles middleware.RoleLookup
	// Readiness lists the dependencies pinged by /health/ready.
	Readiness map[string]ports.Pinger
	// Registerer receives the HTTP request metrics. Defaults to the
	// Prometheus default registerer.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	registerer := d.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "calendar",
		Registerer: registerer,
	}))

	// --- Operational endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Handlers ---
	sessionHandler := handler.NewSessionHandler(d.Sessions, d.Calendar)
	userHandler := handler.NewUserHandler(d.Calendar)
	eventHandler := handler.NewEventHandler(d.Calendar, d.Location)
	calendarHandler := handler.NewCalendarHandler(d.Calendar, d.Location)
	suggestionHandler := handler.NewSuggestionHandler(d.Suggestions)

	v1 := e.Group("/v1")

	// --- Session routes ---
	v1.POST("/session/join", sessionHandler.Join)
	v1.POST("/session/switch", sessionHandler.Switch)

	auth := v1.Group("", middleware.Auth(d.JWTSecret, d.Roles))
	auth.GET("/session/active", sessionHandler.Active)

	// --- Roster ---
	auth.GET("/users", userHandler.List)
	auth.PATCH("/users/:id/role", userHandler.ToggleRole, middleware.RBAC(domain.RoleAdmin))

	// --- Calendar items ---
	auth.GET("/events", eventHandler.List)
	auth.POST("/events", eventHandler.Add)
	auth.DELETE("/events/:id", eventHandler.Delete)

	// --- Month view and export ---
	auth.GET("/calendar", calendarHandler.Month)
	auth.GET("/calendar/export.ics", calendarHandler.Export)

	// --- Suggestions ---
	auth.POST("/suggestions", suggestionHandler.Suggest)

	return e
}
