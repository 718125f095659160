package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/nguyentantai21042004/video-summary/internal/config"
	"github.com/nguyentantai21042004/video-summary/internal/limit"
	"github.com/nguyentantai21042004/video-summary/internal/processor"
	"github.com/nguyentantai21042004/video-summary/internal/watcher"
	"github.com/spf13/cobra"
)

type watchOptions struct {
	limit  string
	input  string
	output string
}

func newWatchCmd(root *rootOptions, factory PipelineFactory) *cobra.Command {
	opts := &watchOptions{}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a folder and summarize every new video",
		Long: `watch monitors paths.input for new video files. Each video is summarized into
paths.output and then moved to paths.archived.

The summary length comes from --limit, or from summary.default_limit in the
config file, or defaults to 3 paragraphs. It is resolved once at startup.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, root, opts, factory)
		},
	}

	flags := watchCmd.Flags()
	flags.StringVar(&opts.limit, "limit", "", "Summary limit for every video (default: summary.default_limit)")
	flags.StringVar(&opts.input, "input", "", "Folder to watch (default: paths.input)")
	flags.StringVar(&opts.output, "output", "", "Folder for summaries (default: paths.output)")

	return watchCmd
}

func runWatch(cmd *cobra.Command, root *rootOptions, opts *watchOptions, factory PipelineFactory) error {
	ctx := cmd.Context()

	var (
		target limit.Target
		err    error
	)
	if cmd.Flags().Changed("limit") {
		if target, err = limit.ParseDirective(opts.limit); err != nil {
			return err
		}
	}

	cfg, log, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}
	if opts.input != "" {
		cfg.Paths.Input = opts.input
	}
	if opts.output != "" {
		cfg.Paths.Output = opts.output
	}

	// Resolve the summary length once, before anything is watched
	if target.IsZero() {
		if target, err = cfg.DefaultTarget(); err != nil {
			return fmt.Errorf("summary.default_limit: %w", err)
		}
	}

	log.Info(ctx, "========================================")
	log.Info(ctx, "Video Summary Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	proc, err := factory(cfg, log)
	if err != nil {
		return err
	}
	if err := proc.CheckEnvironment(ctx); err != nil {
		return err
	}

	handler := func(ctx context.Context, videoPath string) error {
		_, err := proc.Process(ctx, processor.Job{
			VideoPath: videoPath,
			OutputDir: cfg.Paths.Output,
			Target:    target,
			Archive:   true,
		})
		return err
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Video Summary Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Summary: %s via %s (%s)", target, cfg.Summary.Provider, cfg.Summary.Model)
	log.Info(ctx, "Transcription: %s", cfg.Whisper.Backend)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Blocks until the context is cancelled and in-flight videos are done
	err = w.Start(ctx)
	log.Info(ctx, "Video Summary Pipeline stopped")
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watcher: %w", err)
	}
	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}
	if cfg.Paths.Temp != "" {
		dirs = append(dirs, cfg.Paths.Temp)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
