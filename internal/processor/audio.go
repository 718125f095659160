package processor

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// extractAudio extracts audio from video file and converts to 16kHz mono WAV
// This format is optimal for Whisper processing
func (p *implProcessor) extractAudio(ctx context.Context, videoPath string) (string, error) {
	if p.cfg.Paths.Temp != "" {
		if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
			return "", fmt.Errorf("create temp dir: %w", err)
		}
	}

	tmp, err := os.CreateTemp(p.cfg.Paths.Temp, "video-summary-*.wav")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	audioPath := tmp.Name()
	tmp.Close()

	p.logger.Info(ctx, "Extracting audio: %s", videoPath)

	// -vn: No video (audio only)
	// -c:a pcm_s16le: PCM 16-bit little-endian format
	args := []string{
		"-y",
		"-i", videoPath,
		"-vn",
		"-ar", strconv.Itoa(p.cfg.FFmpeg.SampleRate),
		"-ac", "1", // Mono
		"-c:a", "pcm_s16le",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		p.cleanupTempFile(ctx, audioPath)
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	p.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return audioPath, nil
}
