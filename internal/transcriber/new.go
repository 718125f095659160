package transcriber

import (
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/video-summary/internal/config"
	"github.com/nguyentantai21042004/video-summary/internal/logger"
	"github.com/nguyentantai21042004/video-summary/pkg/executor"
)

var (
	ErrMissingAPIKey = errors.New("missing API key")
	ErrModelNotFound = errors.New("whisper model not found")
)

// New creates the Transcriber selected by whisper.backend.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Whisper.Backend {
	case config.BackendWhisperCpp:
		return &whisperCpp{
			cfg:      cfg.Whisper,
			executor: exec,
			logger:   log,
		}, nil
	case config.BackendOpenAI:
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("%w: the openai whisper backend needs OPENAI_API_KEY", ErrMissingAPIKey)
		}
		return newOpenAIWhisper(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.Whisper, log), nil
	default:
		return nil, fmt.Errorf("unsupported whisper backend %q", cfg.Whisper.Backend)
	}
}
