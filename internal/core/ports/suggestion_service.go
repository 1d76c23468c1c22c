package ports

import (
	"context"

	"github.com/familyhub/calendar-hub/internal/core/domain"
)

// SuggestionService produces event ideas. It never touches calendar state.
type SuggestionService interface {
	Suggest(ctx context.Context) (domain.Idea, error)
}
