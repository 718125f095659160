package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/video-summary/internal/config"
	"github.com/nguyentantai21042004/video-summary/internal/logger"
	"github.com/nguyentantai21042004/video-summary/pkg/executor"
)

type whisperCpp struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

func (w *whisperCpp) Binaries() []string {
	return []string{w.cfg.BinaryPath}
}

func (w *whisperCpp) Check() error {
	if _, err := os.Stat(w.cfg.ModelPath); err != nil {
		return fmt.Errorf("%w: %s (see whisper.model_path or --whisper-model): %w", ErrModelNotFound, w.cfg.ModelPath, err)
	}
	return nil
}

// Transcribe runs whisper.cpp on a 16kHz mono WAV and returns the plain-text transcript
func (w *whisperCpp) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if err := w.Check(); err != nil {
		return "", err
	}

	// Whisper appends .txt to the prefix
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	w.logger.Info(ctx, "Starting transcription with %d threads: %s", w.cfg.Threads, audioPath)

	// -otxt: plain text output
	// -l: language, "auto" lets whisper detect it
	// -np: no progress/diagnostic prints
	args := []string{
		"-m", w.cfg.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-np",
		"-l", w.cfg.Language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"--output-file", outputPrefix,
	}
	if w.cfg.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Prompt)
	}

	if _, err := w.executor.Execute(ctx, w.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	txtPath := outputPrefix + ".txt"
	defer func() {
		if err := os.Remove(txtPath); err != nil && !os.IsNotExist(err) {
			w.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", txtPath, err)
		}
	}()

	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	text := strings.TrimSpace(string(data))
	w.logger.Info(ctx, "Transcription completed: %d characters", len([]rune(text)))
	return text, nil
}
