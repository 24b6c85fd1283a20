package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/siren-grabber/internal/logger"
	"github.com/oshokin/siren-grabber/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// BaseURL is the root of the catalog API, e.g. "https://monster-siren.hypergryph.com/api".
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	// OutputPath is the directory where album folders are created.
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
	// FFmpegPath is the transcoder executable, either a name looked up in PATH or a full path.
	FFmpegPath string `mapstructure:"ffmpeg_path" yaml:"ffmpeg_path"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// UserAgent overrides the User-Agent header sent to the catalog. Empty means a generated one.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
	// RequestTimeout bounds a catalog request including its body, and the wait for the response
	// headers of a file download (e.g. "60s", "10m"). Download bodies are bounded only by cancellation.
	RequestTimeout string `mapstructure:"request_timeout" yaml:"request_timeout"`
	// DownloadSpeedLimit sets the maximum download speed (e.g. "1MB", "500KB"). Empty or "0" disables it.
	DownloadSpeedLimit string `mapstructure:"download_speed_limit" yaml:"download_speed_limit"`
	// MaxFolderNameLength is the maximum length for album folder and song file names. 0 disables it.
	MaxFolderNameLength int64 `mapstructure:"max_folder_name_length" yaml:"max_folder_name_length"`
	// StrictResponseCode rejects API responses whose "code" field is not 0.
	StrictResponseCode bool `mapstructure:"strict_response_code" yaml:"strict_response_code"`
	// VerifyOutput parses every finished FLAC and checks its tags and cover.
	VerifyOutput bool `mapstructure:"verify_output" yaml:"verify_output"`
	// ContinueOnError keeps processing the remaining albums after one of them fails.
	ContinueOnError bool `mapstructure:"continue_on_error" yaml:"continue_on_error"`
	// ShowProgress draws a progress bar for downloads at info level.
	ShowProgress bool `mapstructure:"show_progress" yaml:"show_progress"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `mapstructure:"-" yaml:"-"`
	// ParsedRequestTimeout is the parsed request timeout.
	ParsedRequestTimeout time.Duration `mapstructure:"-" yaml:"-"`
	// ParsedDownloadSpeedLimit is the parsed download speed limit in bytes per second.
	ParsedDownloadSpeedLimit int64 `mapstructure:"-" yaml:"-"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".siren-grabber.yaml"

	// DefaultBaseURL is the base URL of the Monster Siren catalog API.
	DefaultBaseURL = "https://monster-siren.hypergryph.com/api"

	// DefaultOutputPath is the directory used when neither the config nor --path set one.
	DefaultOutputPath = "./rips/"

	// DefaultFFmpegPath is the transcoder looked up in PATH.
	DefaultFFmpegPath = "ffmpeg"

	// DefaultLogLevel is the default logging verbosity.
	DefaultLogLevel = "info"

	// DefaultRequestTimeout is the default timeout of a single catalog request.
	DefaultRequestTimeout = "60s"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyBaseURL indicates that the catalog base URL is missing.
	ErrEmptyBaseURL = errors.New("base_url cannot be empty")
	// ErrInvalidBaseURL indicates that the catalog base URL is not an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("base_url must be an absolute http(s) URL")
	// ErrEmptyOutputPath indicates that the output directory is missing.
	ErrEmptyOutputPath = errors.New("output_path cannot be empty")
	// ErrEmptyFFmpegPath indicates that the transcoder path is missing.
	ErrEmptyFFmpegPath = errors.New("ffmpeg_path cannot be empty")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is not positive.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidMaxFolderNameLength indicates that the name length limit is negative.
	ErrInvalidMaxFolderNameLength = errors.New("max_folder_name_length cannot be negative")
)

// LoadConfig loads configuration settings from a YAML file on top of the defaults.
// An explicitly given file must exist; the default file is optional.
func LoadConfig(configFilename string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	isExplicit := configFilename != ""
	if !isExplicit {
		configFilename = DefaultConfigFilename
	}

	v.SetConfigFile(configFilename)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if isExplicit || !isNotExist(err) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}

		logger.Debugf(context.Background(), "Config file '%s' not found, using defaults", configFilename)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration populated with default values only.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults are plain scalars, decoding them cannot fail.
	_ = v.Unmarshal(&cfg)

	return &cfg
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	var err error

	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		return ErrEmptyBaseURL
	}

	parsedBaseURL, err := url.Parse(cfg.BaseURL)
	if err != nil || (parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https") || parsedBaseURL.Host == "" {
		return fmt.Errorf("%w: '%s'", ErrInvalidBaseURL, cfg.BaseURL)
	}

	if strings.TrimSpace(cfg.OutputPath) == "" {
		return ErrEmptyOutputPath
	}

	if strings.TrimSpace(cfg.FFmpegPath) == "" {
		return ErrEmptyFFmpegPath
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	downloadSpeedLimit := strings.TrimSpace(cfg.DownloadSpeedLimit)
	cfg.ParsedDownloadSpeedLimit = 0

	if downloadSpeedLimit != "" && downloadSpeedLimit != "0" {
		parsedDownloadSpeedLimit, parseErr := humanize.ParseBytes(downloadSpeedLimit)
		if parseErr != nil {
			return fmt.Errorf("failed to parse download speed limit: %w", parseErr)
		}

		// io.CopyN accepts only int64 so we transform it safely in order to use it later.
		cfg.ParsedDownloadSpeedLimit = utils.SafeUint64ToInt64(parsedDownloadSpeedLimit)
	}

	if cfg.MaxFolderNameLength < 0 {
		return ErrInvalidMaxFolderNameLength
	}

	return nil
}

// MarshalYAML renders the configuration as a YAML document.
func MarshalYAML(cfg *Config) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	node.HeadComment = "siren-grabber configuration"

	data, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return data, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("output_path", DefaultOutputPath)
	v.SetDefault("ffmpeg_path", DefaultFFmpegPath)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("user_agent", "")
	v.SetDefault("request_timeout", DefaultRequestTimeout)
	v.SetDefault("download_speed_limit", "")
	v.SetDefault("max_folder_name_length", 0)
	v.SetDefault("strict_response_code", true)
	v.SetDefault("verify_output", true)
	v.SetDefault("continue_on_error", false)
	v.SetDefault("show_progress", true)
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError

	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
