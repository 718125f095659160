package transcriber

import "context"

// Transcriber converts an audio file into plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
	// Binaries lists executables that must be on PATH before a run starts.
	Binaries() []string
	// Check verifies local prerequisites, such as the model file, before any audio is extracted.
	Check() error
}
