package summarizer

import (
	"fmt"

	"github.com/nguyentantai21042004/video-summary/internal/limit"
)

func systemInstruction(target limit.Target) string {
	if target.IsParagraphs() {
		return fmt.Sprintf("You are an expert summarizer. Return exactly %d paragraphs, separated by a single blank line, "+
			"no headings, no title, no bullet points.", target.Value())
	}
	return fmt.Sprintf("You are an expert summarizer. Produce a concise summary no longer than %d characters. "+
		"Avoid pre/postamble, no headings or bullet points. If truncation would harm clarity, prioritize clarity "+
		"while staying under the limit.", target.Value())
}

func chunkPrompt(target limit.Target, chunk string) string {
	if target.IsParagraphs() {
		return fmt.Sprintf("Summarize this transcript chunk into at most %d paragraphs (will refine later):\n\n%s", target.Value(), chunk)
	}
	return fmt.Sprintf("Summarize this transcript chunk within %d characters (will refine later):\n\n%s", target.Value(), chunk)
}

func refinePrompt(target limit.Target, combined string) string {
	if target.IsParagraphs() {
		return fmt.Sprintf("Combine and refine into exactly %d paragraphs:\n\n%s", target.Value(), combined)
	}
	return fmt.Sprintf("Combine and refine into a summary within %d characters (shorter is fine if clear):\n\n%s", target.Value(), combined)
}
