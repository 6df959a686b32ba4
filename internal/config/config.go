package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"unitconv/internal/conversion"
)

// ErrPrecisionNotSet is returned when no precision is configured
var ErrPrecisionNotSet = errors.New("app.precision is not set")

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Log    LogConfig
	App    AppConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Precision int // Decimal places every conversion result is rounded to
}

// Options controls where Load looks for configuration
type Options struct {
	// ConfigFile is an explicit config file path. When empty the default search paths are used.
	ConfigFile string
	// SearchPaths overrides the default config search paths
	SearchPaths []string
}

// Load reads configuration from file and environment variables
func Load(opts Options) (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		searchPaths := opts.SearchPaths
		if len(searchPaths) == 0 {
			searchPaths = []string{".", "./config", "$HOME/.unitconv"}
		}
		for _, p := range searchPaths {
			v.AddConfigPath(p)
		}
	}

	// Set defaults; app.precision has none and must be configured
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Read from environment variables, e.g. UNITCONV_APP_PRECISION
	v.SetEnvPrefix("UNITCONV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("app.precision"); err != nil {
		return nil, fmt.Errorf("failed to bind precision env: %w", err)
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist as long as the environment provides precision
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if !v.IsSet("app.precision") {
		return nil, ErrPrecisionNotSet
	}
	if _, err := parsePrecision(v.Get("app.precision")); err != nil {
		return nil, fmt.Errorf("app.precision: %w", err)
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// parsePrecision accepts only whole numbers. viper's weak decoding would otherwise
// turn 2.7 into 2, true into 1 and "" into 0.
func parsePrecision(raw any) (int, error) {
	switch val := raw.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return cast.ToIntE(val)
	case float32, float64:
		f := cast.ToFloat64(val)
		if math.Trunc(f) != f || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%w: %v is not a whole number", conversion.ErrInvalidPrecision, val)
		}
		return int(f), nil
	case string:
		p, err := strconv.Atoi(val)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a whole number", conversion.ErrInvalidPrecision, val)
		}
		return p, nil
	default:
		return 0, fmt.Errorf("%w: unsupported value %v (%T)", conversion.ErrInvalidPrecision, raw, raw)
	}
}

// Validate checks values that have no safe default
func (c *Config) Validate() error {
	if err := conversion.ValidatePrecision(c.App.Precision); err != nil {
		return fmt.Errorf("app.precision: %w", err)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

var logLevels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// NewLogger creates a slog.Logger writing to w at the configured level and format.
// Unknown levels fall back to info and unknown formats to text.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, ok := logLevels[strings.ToLower(c.Log.Level)]
	if !ok {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
