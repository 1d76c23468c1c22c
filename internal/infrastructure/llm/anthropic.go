package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/liushuangls/go-anthropic/v2"
)

const (
	defaultAnthropicModel = "claude-3-5-haiku-latest"
	anthropicMaxTokens    = 300
)

// AnthropicConfig holds configuration for the Anthropic Messages API.
type AnthropicConfig struct {
	APIKey  string
	BaseURL string // optional
	Model   string
}

// AnthropicProvider asks the Anthropic Messages API for an idea.
type AnthropicProvider struct {
	client *anthropic.Client
	model  string
}

func NewAnthropicProvider(cfg AnthropicConfig) *AnthropicProvider {
	var opts []anthropic.ClientOption
	if cfg.BaseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")))
	}
	model := cfg.Model
	if model == "" {
		model = defaultAnthropicModel
	}
	return &AnthropicProvider{client: anthropic.NewClient(cfg.APIKey, opts...), model: model}
}

// GenerateIdea returns the first text block of the model's reply.
func (p *AnthropicProvider) GenerateIdea(ctx context.Context) (string, error) {
	prompt := ideaPrompt
	resp, err := p.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(p.model),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.Message{
			{Role: anthropic.RoleUser, Content: []anthropic.MessageContent{
				{Type: "text", Text: &prompt},
			}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}

	for _, block := range resp.Content {
		if block.Type == "text" && block.Text != nil {
			return strings.TrimSpace(*block.Text), nil
		}
	}
	return "", errors.New("anthropic: no text in response")
}
