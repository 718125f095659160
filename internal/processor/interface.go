package processor

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/video-summary/internal/limit"
)

// Job describes one video to summarize.
type Job struct {
	VideoPath string
	// OutputPath overrides the default <stem>.summary.txt location.
	OutputPath string
	// OutputDir is used for the default location when OutputPath is empty.
	OutputDir string
	Target    limit.Target
	// Archive moves the video into paths.archived after a successful run.
	Archive bool
}

// Result is what a successful run produced.
type Result struct {
	Summary        string
	OutputPath     string
	TranscriptPath string
	Duration       time.Duration
}

// Processor defines the interface for video processing operations
type Processor interface {
	Process(ctx context.Context, job Job) (*Result, error)
	// CheckEnvironment verifies the external binaries a run needs.
	CheckEnvironment(ctx context.Context) error
}
