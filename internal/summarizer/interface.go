package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/video-summary/internal/limit"
)

// Summarizer condenses a transcript into a summary that honours a length target.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string, target limit.Target) (string, error)
}

// Request is a single system + user prompt sent to a text-generation backend.
type Request struct {
	Model       string
	System      string
	Prompt      string
	Temperature float64
}

// Provider is a text-generation backend.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}
