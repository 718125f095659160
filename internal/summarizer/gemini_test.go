package summarizer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/nguyentantai21042004/video-summary/internal/logger"
)

// geminiServer answers generateContent calls with the status chosen per API key.
type geminiServer struct {
	mu     sync.Mutex
	seen   []string
	status map[string]int
}

func (s *geminiServer) keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.seen...)
}

func (s *geminiServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !strings.HasSuffix(r.URL.Path, "models/gemini-test:generateContent") {
		http.NotFound(w, r)
		return
	}

	key := r.Header.Get("x-goog-api-key")
	if key == "" {
		key = r.URL.Query().Get("key")
	}
	s.mu.Lock()
	s.seen = append(s.seen, key)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch s.status[key] {
	case http.StatusTooManyRequests:
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
	case http.StatusBadRequest:
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"bad request","status":"INVALID_ARGUMENT"}}`))
	default:
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"the "},{"text":"summary"}]},"finishReason":"STOP"}]}`))
	}
}

func TestGeminiProviderRotatesOnRateLimit(t *testing.T) {
	gs := &geminiServer{status: map[string]int{"key-1": http.StatusTooManyRequests}}
	srv := httptest.NewServer(gs)
	defer srv.Close()

	p := newGeminiProvider([]string{"key-1", "key-2"}, srv.URL, logger.Discard())
	out, err := p.Complete(context.Background(), Request{Model: "gemini-test", System: "be brief", Prompt: "transcript"})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if out != "the summary" {
		t.Errorf("Complete() = %q", out)
	}

	keys := gs.keys()
	if len(keys) < 2 || keys[0] != "key-1" || keys[len(keys)-1] != "key-2" {
		t.Errorf("keys used = %q, want key-1 then key-2", keys)
	}

	// The rotated key stays current for the next call.
	if _, err := p.Complete(context.Background(), Request{Model: "gemini-test", Prompt: "again"}); err != nil {
		t.Fatalf("second Complete() error = %v", err)
	}
	if keys := gs.keys(); keys[len(keys)-1] != "key-2" {
		t.Errorf("second call used %q, want key-2", keys[len(keys)-1])
	}
}

func TestGeminiProviderAllKeysExhausted(t *testing.T) {
	gs := &geminiServer{status: map[string]int{
		"key-1": http.StatusTooManyRequests,
		"key-2": http.StatusTooManyRequests,
	}}
	srv := httptest.NewServer(gs)
	defer srv.Close()

	p := newGeminiProvider([]string{"key-1", "key-2"}, srv.URL, logger.Discard())
	_, err := p.Complete(context.Background(), Request{Model: "gemini-test", Prompt: "transcript"})
	if err == nil || !strings.Contains(err.Error(), "all API keys exhausted") {
		t.Fatalf("Complete() error = %v, want all API keys exhausted", err)
	}

	used := map[string]bool{}
	for _, k := range gs.keys() {
		used[k] = true
	}
	if !used["key-1"] || !used["key-2"] {
		t.Errorf("keys used = %q, want both", gs.keys())
	}
}

func TestGeminiProviderDoesNotRotateOnOtherErrors(t *testing.T) {
	gs := &geminiServer{status: map[string]int{"key-1": http.StatusBadRequest}}
	srv := httptest.NewServer(gs)
	defer srv.Close()

	p := newGeminiProvider([]string{"key-1", "key-2"}, srv.URL, logger.Discard())
	if _, err := p.Complete(context.Background(), Request{Model: "gemini-test", Prompt: "transcript"}); err == nil {
		t.Fatal("Complete() should fail on 400")
	}
	for _, k := range gs.keys() {
		if k != "key-1" {
			t.Errorf("key %q used after a non rate-limit error", k)
		}
	}
}
