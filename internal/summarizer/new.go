package summarizer

import (
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/video-summary/internal/config"
	"github.com/nguyentantai21042004/video-summary/internal/logger"
)

var (
	ErrMissingAPIKey   = errors.New("missing API key")
	ErrEmptyTranscript = errors.New("transcript is empty")
	ErrEmptyResponse   = errors.New("empty response from provider")
	ErrTargetRequired  = errors.New("summary target is required")
)

type implSummarizer struct {
	provider    Provider
	model       string
	temperature float64
	chunkSize   int
	logger      logger.Logger
}

// New creates a Summarizer that sends prompts to the given provider.
func New(provider Provider, cfg config.SummaryConfig, log logger.Logger) Summarizer {
	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = 8000
	}
	temperature := config.DefaultTemperature
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}
	return &implSummarizer{
		provider:    provider,
		model:       cfg.Model,
		temperature: temperature,
		chunkSize:   chunkSize,
		logger:      log,
	}
}

// NewProvider builds the backend selected by summary.provider.
func NewProvider(cfg *config.Config, log logger.Logger) (Provider, error) {
	switch cfg.Summary.Provider {
	case config.ProviderOpenAI:
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("%w: set OPENAI_API_KEY (bash: export OPENAI_API_KEY=your_key_here)", ErrMissingAPIKey)
		}
		return newOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL), nil

	case config.ProviderGemini:
		if len(cfg.Gemini.APIKeys) == 0 {
			return nil, fmt.Errorf("%w: set GEMINI_API_KEY or GEMINI_API_KEYS (comma separated)", ErrMissingAPIKey)
		}
		return newGeminiProvider(cfg.Gemini.APIKeys, cfg.Gemini.BaseURL, log), nil

	case config.ProviderAnthropic:
		if cfg.Anthropic.APIKey == "" {
			return nil, fmt.Errorf("%w: set ANTHROPIC_API_KEY", ErrMissingAPIKey)
		}
		return newAnthropicProvider(cfg.Anthropic.APIKey, cfg.Anthropic.MaxTokens), nil

	default:
		return nil, fmt.Errorf("unsupported summary provider %q", cfg.Summary.Provider)
	}
}
