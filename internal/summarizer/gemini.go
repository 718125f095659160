package summarizer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/video-summary/internal/logger"
	"google.golang.org/genai"
)

type geminiProvider struct {
	apiKeys    []string
	baseURL    string
	logger     logger.Logger
	mu         sync.Mutex
	currentKey int
}

// newGeminiProvider creates a provider that rotates through the supplied Gemini API keys.
func newGeminiProvider(apiKeys []string, baseURL string, log logger.Logger) *geminiProvider {
	return &geminiProvider{
		apiKeys: apiKeys,
		baseURL: baseURL,
		logger:  log,
	}
}

func (p *geminiProvider) Name() string { return "gemini" }

// Complete sends the prompt to Gemini and returns the generated text.
// Rotates API keys on 429 / quota errors.
func (p *geminiProvider) Complete(ctx context.Context, req Request) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	attempts := len(p.apiKeys)
	var lastErr error

	for range attempts {
		key, idx := p.key()

		clientCfg := &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		}
		if p.baseURL != "" {
			clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: p.baseURL}
		}

		client, err := genai.NewClient(ctx, clientCfg)
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			p.rotateKey(idx)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), cfg)
		if err != nil {
			if isRateLimited(err) {
				p.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				p.rotateKey(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", ErrEmptyResponse
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (p *geminiProvider) key() (string, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.apiKeys[p.currentKey], p.currentKey
}

// rotateKey advances past idx unless another caller already rotated.
func (p *geminiProvider) rotateKey(idx int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.currentKey == idx {
		p.currentKey = (p.currentKey + 1) % len(p.apiKeys)
	}
}

func isRateLimited(err error) bool {
	errMsg := err.Error()
	return strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED")
}
