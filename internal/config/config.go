package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/video-summary/internal/limit"
)

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Summary     SummaryConfig     `yaml:"summary"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Anthropic   AnthropicConfig   `yaml:"anthropic"`
	Output      OutputConfig      `yaml:"output"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type WhisperConfig struct {
	// Backend is "whisper-cpp" (local binary) or "openai" (hosted API).
	Backend    string `yaml:"backend"`
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	// Model is the hosted model name used by the openai backend.
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
	Prompt   string `yaml:"prompt"`
	Threads  int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	SampleRate int    `yaml:"sample_rate"`
}

type SummaryConfig struct {
	// Provider is one of "openai", "gemini" or "anthropic".
	Provider    string   `yaml:"provider"`
	Model       string   `yaml:"model"`
	Temperature *float64 `yaml:"temperature"`
	ChunkSize   int      `yaml:"chunk_size"`
	// DefaultLimit is a --limit style directive used by the pipeline command.
	DefaultLimit string `yaml:"default_limit"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	BaseURL string   `yaml:"base_url"`
}

type AnthropicConfig struct {
	APIKey    string `yaml:"api_key"`
	MaxTokens int    `yaml:"max_tokens"`
}

type OutputConfig struct {
	KeepTranscript bool `yaml:"keep_transcript"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

const (
	BackendWhisperCpp = "whisper-cpp"
	BackendOpenAI     = "openai"

	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// DefaultTemperature is used when summary.temperature is not set. An explicit 0 is kept.
const DefaultTemperature = 0.3

var defaultModels = map[string]string{
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderGemini:    "gemini-2.5-flash",
	ProviderAnthropic: "claude-sonnet-4-20250514",
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.Whisper.Backend == "" {
		c.Whisper.Backend = BackendWhisperCpp
	}
	switch c.Whisper.Backend {
	case BackendWhisperCpp, BackendOpenAI:
	default:
		return fmt.Errorf("whisper.backend %q is not supported", c.Whisper.Backend)
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelPath == "" {
		c.Whisper.ModelPath = "models/ggml-base.bin"
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "whisper-1"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Whisper.Threads < 0 {
		return fmt.Errorf("whisper.threads must be positive")
	}

	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}

	if c.Summary.Provider == "" {
		c.Summary.Provider = ProviderOpenAI
	}
	model, ok := defaultModels[c.Summary.Provider]
	if !ok {
		return fmt.Errorf("summary.provider %q is not supported", c.Summary.Provider)
	}
	if c.Summary.Model == "" {
		c.Summary.Model = model
	}
	if c.Summary.Temperature == nil {
		t := DefaultTemperature
		c.Summary.Temperature = &t
	}
	if t := *c.Summary.Temperature; t < 0 || t > 2 {
		return fmt.Errorf("summary.temperature must be between 0 and 2, got %v", t)
	}
	if c.Summary.ChunkSize == 0 {
		c.Summary.ChunkSize = 8000
	}
	if c.Summary.ChunkSize < 0 {
		return fmt.Errorf("summary.chunk_size must be positive")
	}
	if c.Summary.DefaultLimit != "" {
		if _, err := limit.ParseDirective(c.Summary.DefaultLimit); err != nil {
			return fmt.Errorf("summary.default_limit: %w", err)
		}
	}

	if c.Anthropic.MaxTokens == 0 {
		c.Anthropic.MaxTokens = 4096
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

// DefaultTarget resolves summary.default_limit, falling back to three paragraphs.
func (c *Config) DefaultTarget() (limit.Target, error) {
	in := limit.Input{}
	if c.Summary.DefaultLimit != "" {
		in.Directive = &c.Summary.DefaultLimit
	}
	return limit.Resolve(in)
}

// SetProvider switches the summary provider, resetting the model to the provider's default.
func (c *Config) SetProvider(provider string) error {
	model, ok := defaultModels[provider]
	if !ok {
		return fmt.Errorf("summary provider %q is not supported", provider)
	}
	c.Summary.Provider = provider
	c.Summary.Model = model
	return nil
}

// SetWhisperModel applies a --whisper-model value. A size name such as
// "base" or "small" maps to ggml-<size>.bin next to the configured model;
// anything that looks like a path is used as is.
func (c *Config) SetWhisperModel(name string) {
	if c.Whisper.Backend == BackendOpenAI {
		c.Whisper.Model = name
		return
	}
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') || filepath.Ext(name) == ".bin" {
		c.Whisper.ModelPath = name
		return
	}
	c.Whisper.ModelPath = filepath.Join(filepath.Dir(c.Whisper.ModelPath), "ggml-"+name+".bin")
}
