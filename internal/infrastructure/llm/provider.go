package llm

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/familyhub/calendar-hub/internal/core/ports"
)

// Provider names accepted by New.
const (
	ProviderAuto      = "auto"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderStatic    = "static"
)

// staticDelay mimics the latency of a real provider.
const staticDelay = time.Second

// Config selects and configures a suggestion provider.
type Config struct {
	Provider  string
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
}

// New builds the configured provider. "auto" picks OpenAI, then Anthropic,
// whichever has an API key, and falls back to the static provider.
func New(cfg Config, log zerolog.Logger) (ports.SuggestionProvider, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if name == "" || name == ProviderAuto {
		switch {
		case cfg.OpenAI.APIKey != "":
			name = ProviderOpenAI
		case cfg.Anthropic.APIKey != "":
			name = ProviderAnthropic
		default:
			log.Warn().Msg("no suggestion API key configured, using canned ideas")
			name = ProviderStatic
		}
	}

	switch name {
	case ProviderOpenAI:
		if cfg.OpenAI.APIKey == "" && cfg.OpenAI.BaseURL == "" {
			return nil, fmt.Errorf("llm: openai provider requires OPENAI_API_KEY or OPENAI_BASE_URL")
		}
		log.Info().Str("provider", name).Msg("suggestion provider configured")
		return NewOpenAIProvider(cfg.OpenAI), nil
	case ProviderAnthropic:
		if cfg.Anthropic.APIKey == "" {
			return nil, fmt.Errorf("llm: anthropic provider requires ANTHROPIC_API_KEY")
		}
		log.Info().Str("provider", name).Msg("suggestion provider configured")
		return NewAnthropicProvider(cfg.Anthropic), nil
	case ProviderStatic:
		return NewStaticProvider(staticDelay), nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}
