package ports

import "context"

// SuggestionProvider asks an external generator for a family activity idea.
// The returned text is expected to contain a JSON object with "title" and
// "description" keys, possibly wrapped in prose or code fences.
type SuggestionProvider interface {
	GenerateIdea(ctx context.Context) (string, error)
}
