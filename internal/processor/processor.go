package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/video-summary/internal/output"
)

// Process orchestrates the entire video summary pipeline
func (p *implProcessor) Process(ctx context.Context, job Job) (*Result, error) {
	if job.Target.IsZero() {
		return nil, ErrTargetRequired
	}

	startTime := time.Now()

	if _, err := os.Stat(job.VideoPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrVideoNotFound, job.VideoPath)
		}
		return nil, fmt.Errorf("stat video: %w", err)
	}

	if err := p.CheckEnvironment(ctx); err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting video summary: %s (%s)", job.VideoPath, job.Target)
	p.logger.Info(ctx, "========================================")

	// Step 1: Extract audio
	audioPath, err := p.extractAudio(ctx, job.VideoPath)
	if err != nil {
		return nil, fmt.Errorf("extract audio: %w", err)
	}

	// Step 2: Transcribe audio; the WAV is removed even when this fails
	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	p.cleanupTempFile(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	outputPath := job.OutputPath
	if outputPath == "" {
		outputPath = output.DefaultPath(job.VideoPath, job.OutputDir)
	}

	result := &Result{OutputPath: outputPath}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	// Kept before summarizing so a failed API call does not lose the transcript
	if p.cfg.Output.KeepTranscript {
		result.TranscriptPath = output.TranscriptPath(outputPath)
		if err := os.WriteFile(result.TranscriptPath, []byte(transcript), 0644); err != nil {
			p.logger.Warn(ctx, "Failed to write transcript %s: %v", result.TranscriptPath, err)
			result.TranscriptPath = ""
		}
	}

	// Step 3: Summarize
	summary, err := p.summarizer.Summarize(ctx, transcript, job.Target)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	result.Summary = summary

	// Step 4: Write summary
	title := strings.TrimSuffix(filepath.Base(job.VideoPath), filepath.Ext(job.VideoPath))
	if err := output.Write(outputPath, title, summary); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}

	// Step 5: Move original video to archived folder
	if job.Archive {
		if err := p.moveToArchived(ctx, job.VideoPath); err != nil {
			p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
		}
	}

	result.Duration = time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Summary completed successfully!")
	p.logger.Info(ctx, "Output: %s", outputPath)
	p.logger.Info(ctx, "Processing time: %s", result.Duration)
	p.logger.Info(ctx, "========================================")

	return result, nil
}

// CheckEnvironment fails fast when ffmpeg, the transcriber's binaries or its model are missing.
func (p *implProcessor) CheckEnvironment(ctx context.Context) error {
	if _, err := p.executor.LookPath(p.cfg.FFmpeg.BinaryPath); err != nil {
		return fmt.Errorf("%w. Please install ffmpeg and ensure '%s' is available in your PATH.\n"+
			"Windows: winget install Gyan.FFmpeg or choco install ffmpeg\n"+
			"macOS: brew install ffmpeg\n"+
			"Linux: use your distro's package manager", ErrFFmpegNotFound, p.cfg.FFmpeg.BinaryPath)
	}

	for _, bin := range p.transcriber.Binaries() {
		if _, err := p.executor.LookPath(bin); err != nil {
			return fmt.Errorf("%w: %s (see whisper.binary_path)", ErrBinaryNotFound, bin)
		}
	}

	if err := p.transcriber.Check(); err != nil {
		return err
	}

	p.logger.Debug(ctx, "Environment OK")
	return nil
}
