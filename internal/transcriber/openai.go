package transcriber

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/video-summary/internal/config"
	"github.com/nguyentantai21042004/video-summary/internal/logger"
	openai "github.com/sashabaranov/go-openai"
)

type openAIWhisper struct {
	client *openai.Client
	cfg    config.WhisperConfig
	logger logger.Logger
}

func newOpenAIWhisper(apiKey, baseURL string, cfg config.WhisperConfig, log logger.Logger) *openAIWhisper {
	clientCfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientCfg.BaseURL = baseURL
	}
	return &openAIWhisper{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
		logger: log,
	}
}

func (o *openAIWhisper) Binaries() []string { return nil }

func (o *openAIWhisper) Check() error { return nil }

// Transcribe uploads the audio file to the hosted Whisper API.
func (o *openAIWhisper) Transcribe(ctx context.Context, audioPath string) (string, error) {
	req := openai.AudioRequest{
		Model:    o.cfg.Model,
		FilePath: audioPath,
		Prompt:   o.cfg.Prompt,
	}
	if o.cfg.Language != "auto" {
		req.Language = o.cfg.Language
	}

	o.logger.Info(ctx, "Uploading audio for transcription (%s): %s", o.cfg.Model, audioPath)

	resp, err := o.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai transcription: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	o.logger.Info(ctx, "Transcription completed: %d characters", len([]rune(text)))
	return text, nil
}
