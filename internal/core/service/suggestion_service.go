package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/familyhub/calendar-hub/internal/core/domain"
	"github.com/familyhub/calendar-hub/internal/core/ports"
	"github.com/familyhub/calendar-hub/internal/pkg/metrics"
)

const defaultSuggestionTimeout = 20 * time.Second

var errNoJSONObject = errors.New("no JSON object in response")

// SuggestionService asks a provider for an activity idea. It holds no calendar
// state and the call is never retried.
type SuggestionService struct {
	provider ports.SuggestionProvider
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewSuggestionService returns a SuggestionService bounded by timeout per call.
func NewSuggestionService(provider ports.SuggestionProvider, timeout time.Duration, logger zerolog.Logger) *SuggestionService {
	if timeout <= 0 {
		timeout = defaultSuggestionTimeout
	}
	return &SuggestionService{provider: provider, timeout: timeout, logger: logger}
}

// Suggest returns a title and description. Every failure, whether transport,
// timeout or malformed output, is reported as ErrSuggestionUnavailable.
func (s *SuggestionService) Suggest(ctx context.Context) (domain.Idea, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	idea, err := s.suggest(ctx)
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.SuggestionsTotal.WithLabelValues(result).Inc()
	metrics.SuggestionDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())

	if err != nil {
		s.logger.Warn().Err(err).Msg("suggestion failed")
		return domain.Idea{}, fmt.Errorf("%w: %v", domain.ErrSuggestionUnavailable, err)
	}
	return idea, nil
}

func (s *SuggestionService) suggest(ctx context.Context) (domain.Idea, error) {
	raw, err := s.provider.GenerateIdea(ctx)
	if err != nil {
		return domain.Idea{}, err
	}
	return ParseIdea(raw)
}

// ParseIdea extracts the first JSON object from raw and decodes it. Text
// around the object, such as Markdown code fences, is ignored.
func ParseIdea(raw string) (domain.Idea, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return domain.Idea{}, errNoJSONObject
	}

	var idea domain.Idea
	if err := json.Unmarshal([]byte(raw[start:end+1]), &idea); err != nil {
		return domain.Idea{}, fmt.Errorf("decode idea: %w", err)
	}
	idea.Title = strings.TrimSpace(idea.Title)
	idea.Description = strings.TrimSpace(idea.Description)
	if idea.Title == "" {
		return domain.Idea{}, fmt.Errorf("decode idea: %w", domain.ErrEmptyTitle)
	}
	return idea, nil
}
