package processor

import (
	"errors"

	"github.com/nguyentantai21042004/video-summary/internal/config"
	"github.com/nguyentantai21042004/video-summary/internal/logger"
	"github.com/nguyentantai21042004/video-summary/internal/summarizer"
	"github.com/nguyentantai21042004/video-summary/internal/transcriber"
	"github.com/nguyentantai21042004/video-summary/pkg/executor"
)

var (
	ErrVideoNotFound  = errors.New("video not found")
	ErrFFmpegNotFound = errors.New("ffmpeg not found on PATH")
	ErrBinaryNotFound = errors.New("required binary not found on PATH")
	ErrTargetRequired = errors.New("summary target is required")
)

type implProcessor struct {
	cfg         *config.Config
	executor    executor.Executor
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, tr transcriber.Transcriber, sum summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		executor:    exec,
		transcriber: tr,
		summarizer:  sum,
		logger:      log,
	}
}
