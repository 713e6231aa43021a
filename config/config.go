// Package config loads the YAML settings shared by the regnet command:
// grammar model, parser parallelism, labelling strictness, logging,
// graphviz theme and the metrics textfile.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/regnet/metrics"
	"github.com/katalvlaran/regnet/network"
	"github.com/katalvlaran/regnet/phase"
)

// ErrInvalidConfig wraps every read, decode and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// validate is a singleton validator instance
var validate = validator.New()

// Config holds all regnet settings.
type Config struct {
	// Grammar variant: original (alias default) or ecology, any case
	Model string `yaml:"model" validate:"required,oneof=original default ecology"`

	// Logic parsing workers; 0 uses GOMAXPROCS
	Parallelism int `yaml:"parallelism" validate:"gte=0"`

	// Fail domain graph construction on inconsistent labellings
	StrictLabelling bool `yaml:"strict_labelling"`

	Log      LogConfig      `yaml:"log"`
	Graphviz GraphvizConfig `yaml:"graphviz"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level" validate:"required,oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// GraphvizConfig configures DOT rendering of networks.
type GraphvizConfig struct {
	// background, node fill, then one colour per term
	Theme []string `yaml:"theme,flow" validate:"omitempty,min=3,dive,required"`
}

// MetricsConfig configures metric export.
type MetricsConfig struct {
	// node_exporter textfile written when the command exits; empty disables
	Textfile string `yaml:"textfile"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Model:       network.ModelOriginal.String(),
		Parallelism: 0,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults and validates the result. Unlike an
// optional user file, an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	c.Model = strings.ToLower(strings.TrimSpace(c.Model))
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, formatValidationError(err))
	}
	return nil
}

// Logger builds the zap logger described by Log.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

// NetworkOptions translates the parsing settings.
func (c *Config) NetworkOptions(logger *zap.Logger, reg *metrics.Registry) ([]network.Option, error) {
	m, err := network.ParseModel(c.Model)
	if err != nil {
		return nil, err
	}

	return []network.Option{
		network.WithModel(m),
		network.WithParallelism(c.Parallelism),
		network.WithLogger(logger),
		network.WithMetrics(reg),
	}, nil
}

// PhaseOptions translates the domain graph settings.
func (c *Config) PhaseOptions(logger *zap.Logger, reg *metrics.Registry) []phase.Option {
	opts := []phase.Option{
		phase.WithLogger(logger),
		phase.WithMetrics(reg),
	}
	if c.StrictLabelling {
		opts = append(opts, phase.WithStrictLabelling())
	}
	return opts
}

// Theme returns the configured graphviz theme, or network.DefaultTheme.
func (c *Config) Theme() []string {
	if len(c.Graphviz.Theme) == 0 {
		return network.DefaultTheme
	}
	return c.Graphviz.Theme
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	for _, e := range validationErrs {
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", e.Namespace())
		case "oneof":
			return fmt.Errorf("%s: must be one of %s", e.Namespace(), e.Param())
		case "gte":
			return fmt.Errorf("%s: must be at least %s", e.Namespace(), e.Param())
		case "min":
			return fmt.Errorf("%s: must hold at least %s entries", e.Namespace(), e.Param())
		default:
			return fmt.Errorf("%s: validation failed (%s)", e.Namespace(), e.Tag())
		}
	}

	return err
}
