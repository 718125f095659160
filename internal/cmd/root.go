package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/nguyentantai21042004/video-summary/internal/config"
	"github.com/nguyentantai21042004/video-summary/internal/limit"
	"github.com/nguyentantai21042004/video-summary/internal/logger"
	"github.com/nguyentantai21042004/video-summary/internal/processor"
	"github.com/nguyentantai21042004/video-summary/internal/summarizer"
	"github.com/nguyentantai21042004/video-summary/internal/transcriber"
	"github.com/nguyentantai21042004/video-summary/pkg/executor"
	"github.com/spf13/cobra"
)

// PipelineFactory builds the processor for a run.
type PipelineFactory func(cfg *config.Config, log logger.Logger) (processor.Processor, error)

type rootOptions struct {
	limit        string
	out          string
	whisperModel string
	language     string
	provider     string
	model        string
	configPath   string
	logLevel     string
	logFile      string
	quiet        bool
}

// NewRootCmd creates the video-summary command. A nil factory uses DefaultPipeline.
func NewRootCmd(factory PipelineFactory) *cobra.Command {
	if factory == nil {
		factory = DefaultPipeline
	}
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "video-summary <video> [paragraphs]",
		Short: "Transcribe a video with Whisper and summarize it with an LLM",
		Long: `video-summary extracts the audio track of a video with ffmpeg, transcribes it
with Whisper and asks a language model for a summary of bounded length.

The summary length is either a paragraph count (positional argument, or
--limit 3p) or a character limit (--limit 800). --limit always wins over the
positional count. Without either, the summary has 3 paragraphs.`,
		Example: `  video-summary talk.mp4
  video-summary talk.mp4 5
  video-summary talk.mp4 --limit 1200 -o talk.docx
  video-summary talk.mp4 --limit 2p --provider gemini`,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, args, opts, factory)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.limit, "limit", "", "Summary limit: <N> characters (e.g. 800) or <N>p paragraphs (e.g. 3p)")
	flags.StringVarP(&opts.out, "out", "o", "", "Output file (default: <video>.summary.txt next to the video; .docx and .md supported)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Do not echo the summary to the terminal")

	// Shared with the watch command
	pflags := rootCmd.PersistentFlags()
	pflags.StringVar(&opts.whisperModel, "whisper-model", "", "Whisper model size (tiny, base, small, medium, large) or model path")
	pflags.StringVar(&opts.language, "language", "", "Force language code or 'auto' to detect")
	pflags.StringVar(&opts.provider, "provider", "", "Summary provider: openai, gemini or anthropic")
	pflags.StringVar(&opts.model, "model", "", "Model used for summarization (default depends on provider)")
	pflags.StringVar(&opts.configPath, "config", "", "Config file (default: config.yaml if present)")
	pflags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pflags.StringVar(&opts.logFile, "log-file", "", "Also write logs to this rotated file")

	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(newWatchCmd(opts, factory))

	return rootCmd
}

func runSummary(cmd *cobra.Command, args []string, opts *rootOptions, factory PipelineFactory) error {
	ctx := cmd.Context()

	// Resolve the length target before touching config, tools or APIs.
	in, err := limitInput(cmd, args, opts)
	if err != nil {
		return err
	}
	target, err := limit.Resolve(in)
	if err != nil {
		return err
	}

	cfg, log, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	if in.Overrides() {
		log.Warn(ctx, "--limit %q overrides the positional paragraph count %d", *in.Directive, *in.Paragraphs)
	}

	proc, err := factory(cfg, log)
	if err != nil {
		return err
	}

	res, err := proc.Process(ctx, processor.Job{
		VideoPath:  args[0],
		OutputPath: opts.out,
		Target:     target,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Summary written to %s\n", res.OutputPath)

	if !opts.quiet && processor.ShouldEcho(res.Summary) {
		printSummary(out, res.Summary)
	}

	return nil
}

func limitInput(cmd *cobra.Command, args []string, opts *rootOptions) (limit.Input, error) {
	var in limit.Input
	if len(args) > 1 {
		n, err := limit.ParseParagraphs(args[1])
		if err != nil {
			return in, err
		}
		in.Paragraphs = &n
	}
	if cmd.Flags().Changed("limit") {
		in.Directive = &opts.limit
	}
	return in, nil
}

// loadConfig reads the config file, applies the shared flags and builds the logger.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, logger.Logger, error) {
	cfg, err := config.LoadOptional(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := applyFlags(cfg, opts); err != nil {
		return nil, nil, err
	}

	log := logger.NewWithOptions(logger.Options{
		Level:  cfg.Logging.Level,
		File:   cfg.Logging.File,
		Output: cmd.ErrOrStderr(),
	})
	return cfg, log, nil
}

func applyFlags(cfg *config.Config, opts *rootOptions) error {
	if opts.provider != "" {
		if err := cfg.SetProvider(opts.provider); err != nil {
			return err
		}
	}
	if opts.model != "" {
		cfg.Summary.Model = opts.model
	}
	if opts.whisperModel != "" {
		cfg.SetWhisperModel(opts.whisperModel)
	}
	if opts.language != "" {
		cfg.Whisper.Language = opts.language
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Logging.File = opts.logFile
	}
	return nil
}

func printSummary(w io.Writer, summary string) {
	rule := strings.Repeat("─", 60)
	fmt.Fprintf(w, "%s\n%s\n%s\n", rule, summary, rule)
}

// DefaultPipeline wires the real executor, transcriber and summarizer.
func DefaultPipeline(cfg *config.Config, log logger.Logger) (processor.Processor, error) {
	exec := executor.New()

	tr, err := transcriber.New(cfg, exec, log)
	if err != nil {
		return nil, err
	}

	provider, err := summarizer.NewProvider(cfg, log)
	if err != nil {
		return nil, err
	}
	sum := summarizer.New(provider, cfg.Summary, log)

	return processor.New(cfg, exec, tr, sum, log), nil
}
