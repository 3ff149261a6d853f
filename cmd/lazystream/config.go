package main

import (
	"time"

	"github.com/kbukum/lazystream/config"
	apperrors "github.com/kbukum/lazystream/errors"
	"github.com/kbukum/lazystream/observability"
	"github.com/kbukum/lazystream/validation"
	"github.com/kbukum/lazystream/version"
)

const (
	serviceName = "lazystream"
	envPrefix   = "LAZYSTREAM"
)

// Config is the lazystream configuration file layout.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Stream               StreamConfig        `yaml:"stream" mapstructure:"stream"`
	Observability        ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
}

// StreamConfig bounds how much of a sequence a command may realize.
type StreamConfig struct {
	DefaultCount int           `yaml:"default_count" mapstructure:"default_count" validate:"gte=0,ltefield=MaxCount"`
	MaxCount     int           `yaml:"max_count" mapstructure:"max_count" validate:"gt=0"`
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`
}

// ObservabilityConfig holds the tracing and metrics settings for a run.
type ObservabilityConfig struct {
	Tracing observability.TracerConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics observability.MeterConfig  `yaml:"metrics" mapstructure:"metrics"`
}

// ApplyDefaults fills in unset values. A zero sample rate is treated as unset.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	if c.Version == "" {
		c.Version = version.GetShortVersion()
	}
	// Results go to stdout; keep stderr quiet unless asked.
	if c.Logging.Level == "" && !c.Debug {
		c.Logging.Level = "warn"
	}
	c.ServiceConfig.ApplyDefaults()

	if c.Stream.MaxCount == 0 {
		c.Stream.MaxCount = 10000
	}
	if c.Stream.DefaultCount == 0 {
		c.Stream.DefaultCount = min(10, c.Stream.MaxCount)
	}
	if c.Stream.Timeout == 0 {
		c.Stream.Timeout = 5 * time.Second
	}

	tr := &c.Observability.Tracing
	tr.ServiceName, tr.ServiceVersion, tr.Environment = c.Name, c.Version, c.Environment
	if tr.SampleRate == 0 {
		tr.SampleRate = 1.0
	}
	mt := &c.Observability.Metrics
	mt.ServiceName, mt.ServiceVersion, mt.Environment = c.Name, c.Version, c.Environment
	if mt.Interval == 0 {
		mt.Interval = 15 * time.Second
	}
}

// Validate checks the base service fields and the struct tags.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := validation.Validate(c); err != nil {
		return apperrors.InvalidConfig(err.Error()).WithCause(err)
	}
	return nil
}

// loadConfig reads the config file and environment named by the global
// options and returns a defaulted, validated Config.
func loadConfig() (*Config, error) {
	var cfg Config
	err := config.LoadConfig(serviceName, &cfg,
		config.WithConfigFile(optionsData.Config),
		config.WithEnvFile(optionsData.EnvFile),
		config.WithEnvPrefix(envPrefix),
	)
	if err != nil {
		return nil, err
	}
	if optionsData.Verbose {
		cfg.Logging.Level = "debug"
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
