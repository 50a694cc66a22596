package config

import (
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Server overrides
	Addr      *string
	StaticDir *string

	// Store overrides
	StoreBackend *string

	// Interpreter overrides
	AIBaseURL *string
	AIModel   *string
	AITimeout *time.Duration

	// Application overrides
	Verbose *bool
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.Addr != nil {
		config.Server.Addr = *overrides.Addr
	}
	if overrides.StaticDir != nil {
		config.Server.StaticDir = *overrides.StaticDir
	}
	if overrides.StoreBackend != nil {
		config.Store.Backend = *overrides.StoreBackend
	}
	if overrides.AIBaseURL != nil {
		config.Interpreter.BaseURL = *overrides.AIBaseURL
	}
	if overrides.AIModel != nil {
		config.Interpreter.Model = *overrides.AIModel
	}
	if overrides.AITimeout != nil {
		config.Interpreter.Timeout = *overrides.AITimeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
