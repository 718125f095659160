package summarizer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/nguyentantai21042004/video-summary/internal/config"
	"github.com/nguyentantai21042004/video-summary/internal/limit"
	"github.com/nguyentantai21042004/video-summary/internal/logger"
)

type fakeProvider struct {
	mu       sync.Mutex
	requests []Request
	reply    func(req Request) (string, error)
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, req Request) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.reply(req)
}

func newTestSummarizer(p Provider, chunkSize int) Summarizer {
	temperature := 0.3
	return New(p, config.SummaryConfig{Model: "test-model", Temperature: &temperature, ChunkSize: chunkSize}, logger.Discard())
}

func mustTarget(t *testing.T, directive string) limit.Target {
	t.Helper()
	target, err := limit.ParseDirective(directive)
	if err != nil {
		t.Fatal(err)
	}
	return target
}

func TestSummarizeSingleChunkParagraphs(t *testing.T) {
	p := &fakeProvider{reply: func(Request) (string, error) { return "  first\n\nsecond  ", nil }}
	s := newTestSummarizer(p, 8000)

	got, err := s.Summarize(context.Background(), "a short transcript", mustTarget(t, "2p"))
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "first\n\nsecond" {
		t.Errorf("Summarize() = %q", got)
	}

	if len(p.requests) != 1 {
		t.Fatalf("provider called %d times, want 1", len(p.requests))
	}
	req := p.requests[0]
	if !strings.Contains(req.System, "exactly 2 paragraphs") {
		t.Errorf("system = %q", req.System)
	}
	if !strings.HasSuffix(req.Prompt, "a short transcript") {
		t.Errorf("prompt = %q", req.Prompt)
	}
	if req.Model != "test-model" || req.Temperature != 0.3 {
		t.Errorf("request = %+v", req)
	}
}

func TestSummarizeEnforcesCharacterLimit(t *testing.T) {
	long := strings.Repeat("word ", 100)
	p := &fakeProvider{reply: func(Request) (string, error) { return long, nil }}
	s := newTestSummarizer(p, 8000)

	got, err := s.Summarize(context.Background(), "transcript", mustTarget(t, "50"))
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if n := utf8.RuneCountInString(got); n > 50 {
		t.Errorf("summary has %d characters, want <= 50: %q", n, got)
	}
	if !strings.Contains(p.requests[0].System, "no longer than 50 characters") {
		t.Errorf("system = %q", p.requests[0].System)
	}
}

func TestSummarizeChunksAndRefines(t *testing.T) {
	p := &fakeProvider{reply: func(req Request) (string, error) {
		if strings.HasPrefix(req.Prompt, "Combine and refine") {
			return "final", nil
		}
		return "partial", nil
	}}
	s := newTestSummarizer(p, 10)

	got, err := s.Summarize(context.Background(), strings.Repeat("x", 25), mustTarget(t, "3p"))
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "final" {
		t.Errorf("Summarize() = %q, want final", got)
	}

	// three chunks plus one refine call
	if len(p.requests) != 4 {
		t.Fatalf("provider called %d times, want 4", len(p.requests))
	}
	refine := p.requests[3].Prompt
	if !strings.Contains(refine, "exactly 3 paragraphs") || strings.Count(refine, "partial") != 3 {
		t.Errorf("refine prompt = %q", refine)
	}
}

func TestSummarizeErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name       string
		transcript string
		target     limit.Target
		reply      func(Request) (string, error)
		wantErr    error
	}{
		{"empty transcript", "   ", limit.Default(), nil, ErrEmptyTranscript},
		{"provider failure", "text", limit.Default(), func(Request) (string, error) { return "", boom }, boom},
		{"empty response", "text", limit.Default(), func(Request) (string, error) { return " \n", nil }, ErrEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakeProvider{reply: tt.reply}
			_, err := newTestSummarizer(p, 8000).Summarize(context.Background(), tt.transcript, tt.target)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Summarize() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSummarizeRequiresTarget(t *testing.T) {
	p := &fakeProvider{reply: func(Request) (string, error) { return "x", nil }}
	if _, err := newTestSummarizer(p, 8000).Summarize(context.Background(), "text", limit.Target{}); !errors.Is(err, ErrTargetRequired) {
		t.Errorf("Summarize() error = %v, want ErrTargetRequired", err)
	}
	if len(p.requests) != 0 {
		t.Error("provider should not be called without a target")
	}
}

func TestNewProviderMissingKeys(t *testing.T) {
	for _, provider := range []string{config.ProviderOpenAI, config.ProviderGemini, config.ProviderAnthropic} {
		t.Run(provider, func(t *testing.T) {
			cfg := config.Default()
			if err := cfg.SetProvider(provider); err != nil {
				t.Fatal(err)
			}
			if _, err := NewProvider(cfg, logger.Discard()); !errors.Is(err, ErrMissingAPIKey) {
				t.Errorf("NewProvider() error = %v, want ErrMissingAPIKey", err)
			}
		})
	}
}

func TestNewProvider(t *testing.T) {
	cfg := config.Default()
	cfg.OpenAI.APIKey = "sk-test"
	cfg.Gemini.APIKeys = []string{"g1"}
	cfg.Anthropic.APIKey = "sk-ant"

	for _, provider := range []string{config.ProviderOpenAI, config.ProviderGemini, config.ProviderAnthropic} {
		if err := cfg.SetProvider(provider); err != nil {
			t.Fatal(err)
		}
		p, err := NewProvider(cfg, logger.Discard())
		if err != nil {
			t.Fatalf("NewProvider(%s) error = %v", provider, err)
		}
		if p.Name() != provider {
			t.Errorf("Name() = %q, want %q", p.Name(), provider)
		}
	}
}
