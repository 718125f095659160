package summarizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/video-summary/internal/limit"
)

// Summarize sends the transcript to the provider, chunking long transcripts
// and refining the partial summaries into one. Character targets are
// enforced on the final text.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string, target limit.Target) (string, error) {
	if target.IsZero() {
		return "", ErrTargetRequired
	}

	text := strings.TrimSpace(transcript)
	if text == "" {
		return "", ErrEmptyTranscript
	}

	system := systemInstruction(target)
	chunks := splitChunks(text, s.chunkSize)

	s.logger.Info(ctx, "Summarizing %d characters with %s (%s), target: %s",
		len([]rune(text)), s.provider.Name(), s.model, target)

	if len(chunks) == 1 {
		summary, err := s.complete(ctx, system, chunkPrompt(target, chunks[0]))
		if err != nil {
			return "", err
		}
		return enforce(summary, target), nil
	}

	partials := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		s.logger.Info(ctx, "[%d/%d] Summarizing chunk", i+1, len(chunks))
		partial, err := s.complete(ctx, system, chunkPrompt(target, chunk))
		if err != nil {
			return "", fmt.Errorf("chunk %d: %w", i+1, err)
		}
		partials = append(partials, partial)
	}

	s.logger.Info(ctx, "Refining %d partial summaries", len(partials))
	final, err := s.complete(ctx, system, refinePrompt(target, strings.Join(partials, "\n\n")))
	if err != nil {
		return "", fmt.Errorf("refine: %w", err)
	}
	return enforce(final, target), nil
}

func (s *implSummarizer) complete(ctx context.Context, system, prompt string) (string, error) {
	start := time.Now()
	out, err := s.provider.Complete(ctx, Request{
		Model:       s.model,
		System:      system,
		Prompt:      prompt,
		Temperature: s.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", s.provider.Name(), err)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("%s: %w", s.provider.Name(), ErrEmptyResponse)
	}

	s.logger.Debug(ctx, "%s responded in %s", s.provider.Name(), time.Since(start))
	return out, nil
}

// enforce applies the post-hoc bound for character targets; the generator is
// not guaranteed to respect it.
func enforce(summary string, target limit.Target) string {
	if target.IsCharacters() {
		return TrimToLimit(summary, target.Value())
	}
	return summary
}
