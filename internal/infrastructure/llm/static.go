package llm

import (
	"context"
	"encoding/json"
	"time"
)

// StaticProvider returns a canned idea. It stands in when no API key is
// configured so the rest of the flow can be exercised.
type StaticProvider struct {
	delay time.Duration
}

func NewStaticProvider(delay time.Duration) *StaticProvider {
	return &StaticProvider{delay: delay}
}

func (p *StaticProvider) GenerateIdea(ctx context.Context) (string, error) {
	if p.delay > 0 {
		t := time.NewTimer(p.delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	b, err := json.Marshal(map[string]string{
		"title":       "Family Game Night",
		"description": "Dust off the board games for a night of friendly competition.",
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}
