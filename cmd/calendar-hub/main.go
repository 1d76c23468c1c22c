// Command calendar-hub serves the shared household calendar API.
//
// Usage:
//
//	calendar-hub [serve]          start the HTTP server (default)
//	calendar-hub hash-passphrase  print a bcrypt hash for HOUSEHOLD_PASSPHRASE_HASH
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/familyhub/calendar-hub/internal/api"
	"github.com/familyhub/calendar-hub/internal/core/domain"
	"github.com/familyhub/calendar-hub/internal/core/service"
	"github.com/familyhub/calendar-hub/internal/infrastructure/ical"
	"github.com/familyhub/calendar-hub/internal/infrastructure/llm"
	"github.com/familyhub/calendar-hub/internal/infrastructure/seed"
	"github.com/familyhub/calendar-hub/internal/pkg/config"
	"github.com/familyhub/calendar-hub/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		serve()
	case "hash-passphrase":
		if err := hashPassphrase(os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "hash-passphrase:", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (want serve or hash-passphrase)\n", cmd)
		os.Exit(2)
	}
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "calendar-hub",
	})

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid time zone")
	}

	st, err := openStorage(ctx, cfg, logger.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Storage.Backend).Msg("storage initialization error")
	}
	defer st.Close()

	today := domain.DateOf(time.Now().In(loc))
	initial, err := seed.Load(cfg.Storage.SeedFile, today)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load seed")
	}

	household, err := service.LoadHousehold(ctx, st.blobs, initial, loc, logger.Component("household"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load household")
	}

	provider, err := llm.New(llm.Config{
		Provider: cfg.Suggestion.Provider,
		OpenAI: llm.OpenAIConfig{
			APIKey:  cfg.Suggestion.OpenAIAPIKey,
			BaseURL: cfg.Suggestion.OpenAIBaseURL,
			Model:   cfg.Suggestion.OpenAIModel,
		},
		Anthropic: llm.AnthropicConfig{
			APIKey: cfg.Suggestion.AnthropicAPIKey,
			Model:  cfg.Suggestion.AnthropicModel,
		},
	}, logger.Component("suggestions"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure suggestion provider")
	}

	calendar := service.NewCalendarService(household, ical.NewExporter(), st.idempotency, loc, logger.Component("calendar"))
	sessions := service.NewSessionService(household.Roster, cfg.Session.JWTSecret, cfg.Session.TokenTTL,
		cfg.Session.PassphraseHash, logger.Component("session"))
	suggestions := service.NewSuggestionService(provider, cfg.Suggestion.Timeout, logger.Component("suggestions"))

	e := api.NewRouter(api.Deps{
		Logger:      logger.Component("http"),
		JWTSecret:   cfg.Session.JWTSecret,
		Location:    loc,
		Calendar:    calendar,
		Sessions:    sessions,
		Suggestions: suggestions,
		Roles: func(id string) (string, bool) {
			u, ok := household.Roster.Get(id)
			return string(u.Role), ok
		},
		Readiness: st.readiness,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Storage.Backend).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("failed to start server")
			stop()
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Dur("timeout", shutdownTimeout).Msg("server shutdown timeout")
	}
	log.Info().Msg("server stopped")
}
