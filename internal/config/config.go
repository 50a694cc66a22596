package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration options for the todo-chat application
type Config struct {
	Server      ServerConfig
	Store       StoreConfig
	Interpreter InterpreterConfig
	Validation  ValidationConfig
	Application ApplicationConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr      string `env:"TODOCHAT_ADDR"`
	StaticDir string `env:"TODOCHAT_STATIC_DIR"`
}

// Supported task store backends. Both are volatile; the sqlite backend runs
// on an in-memory database.
const (
	StoreBackendMemory = "memory"
	StoreBackendSQLite = "sqlite"
)

// StoreConfig holds task store configuration
type StoreConfig struct {
	Backend string `env:"TODOCHAT_STORE_BACKEND"` // "memory" or "sqlite"
}

// InterpreterConfig holds configuration for the external interpretation service
type InterpreterConfig struct {
	BaseURL     string        `env:"TODOCHAT_AI_BASE_URL"`
	APIKey      string        `env:"TODOCHAT_AI_API_KEY"`
	Model       string        `env:"TODOCHAT_AI_MODEL"`
	Timeout     time.Duration `env:"TODOCHAT_AI_TIMEOUT"`
	MaxTokens   int           `env:"TODOCHAT_AI_MAX_TOKENS"`
	Temperature float64       `env:"TODOCHAT_AI_TEMPERATURE"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	DescriptionMinLength int `env:"TODOCHAT_VALIDATION_DESCRIPTION_MIN"`
	DescriptionMaxLength int `env:"TODOCHAT_VALIDATION_DESCRIPTION_MAX"`
	MessageMaxLength     int `env:"TODOCHAT_VALIDATION_MESSAGE_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose         bool          `env:"TODOCHAT_VERBOSE"`
	ShutdownTimeout time.Duration `env:"TODOCHAT_SHUTDOWN_TIMEOUT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:      ":8080",
			StaticDir: "./static",
		},
		Store: StoreConfig{
			Backend: "memory",
		},
		Interpreter: InterpreterConfig{
			BaseURL:     "https://api.openai.com/v1",
			APIKey:      "",
			Model:       "gpt-3.5-turbo",
			Timeout:     30 * time.Second,
			MaxTokens:   600,
			Temperature: 0.3,
		},
		Validation: ValidationConfig{
			DescriptionMinLength: 1,
			DescriptionMaxLength: 500,
			MessageMaxLength:     4000,
		},
		Application: ApplicationConfig{
			Verbose:         false,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Server configuration
	if addr := os.Getenv("TODOCHAT_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if dir := os.Getenv("TODOCHAT_STATIC_DIR"); dir != "" {
		c.Server.StaticDir = dir
	}

	// Store configuration
	if backend := os.Getenv("TODOCHAT_STORE_BACKEND"); backend != "" {
		c.Store.Backend = backend
	}

	// Interpreter configuration
	if url := os.Getenv("TODOCHAT_AI_BASE_URL"); url != "" {
		c.Interpreter.BaseURL = url
	}
	if key := os.Getenv("TODOCHAT_AI_API_KEY"); key != "" {
		c.Interpreter.APIKey = key
	} else if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		// Conventional variable name used by OpenAI SDKs
		c.Interpreter.APIKey = key
	}
	if model := os.Getenv("TODOCHAT_AI_MODEL"); model != "" {
		c.Interpreter.Model = model
	}
	if timeout := os.Getenv("TODOCHAT_AI_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Interpreter.Timeout = d
		}
	}
	if maxTokens := os.Getenv("TODOCHAT_AI_MAX_TOKENS"); maxTokens != "" {
		if n, err := strconv.Atoi(maxTokens); err == nil {
			c.Interpreter.MaxTokens = n
		}
	}
	if temp := os.Getenv("TODOCHAT_AI_TEMPERATURE"); temp != "" {
		if f, err := strconv.ParseFloat(temp, 64); err == nil {
			c.Interpreter.Temperature = f
		}
	}

	// Validation configuration
	if minLen := os.Getenv("TODOCHAT_VALIDATION_DESCRIPTION_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.DescriptionMinLength = n
		}
	}
	if maxLen := os.Getenv("TODOCHAT_VALIDATION_DESCRIPTION_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.DescriptionMaxLength = n
		}
	}
	if maxLen := os.Getenv("TODOCHAT_VALIDATION_MESSAGE_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.MessageMaxLength = n
		}
	}

	// Application configuration
	if verbose := os.Getenv("TODOCHAT_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}
	if timeout := os.Getenv("TODOCHAT_SHUTDOWN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.ShutdownTimeout = d
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate server configuration
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}

	// Validate store configuration
	if c.Store.Backend != StoreBackendMemory && c.Store.Backend != StoreBackendSQLite {
		return &ConfigError{Field: "store.backend", Message: "backend must be 'memory' or 'sqlite'"}
	}

	// Validate interpreter configuration
	if c.Interpreter.BaseURL == "" {
		return &ConfigError{Field: "interpreter.base_url", Message: "base URL cannot be empty"}
	}
	if c.Interpreter.Model == "" {
		return &ConfigError{Field: "interpreter.model", Message: "model cannot be empty"}
	}
	if c.Interpreter.Timeout <= 0 {
		return &ConfigError{Field: "interpreter.timeout", Message: "timeout must be positive"}
	}
	if c.Interpreter.MaxTokens <= 0 {
		return &ConfigError{Field: "interpreter.max_tokens", Message: "max tokens must be positive"}
	}
	if c.Interpreter.Temperature < 0 || c.Interpreter.Temperature > 2 {
		return &ConfigError{Field: "interpreter.temperature", Message: "temperature must be between 0 and 2"}
	}

	// Validate validation configuration
	if c.Validation.DescriptionMinLength < 1 {
		return &ConfigError{Field: "validation.description_min_length", Message: "description minimum length must be at least 1"}
	}
	if c.Validation.DescriptionMaxLength < c.Validation.DescriptionMinLength {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length must be greater than minimum length"}
	}
	if c.Validation.MessageMaxLength < 1 {
		return &ConfigError{Field: "validation.message_max_length", Message: "message maximum length must be at least 1"}
	}

	// Validate application configuration
	if c.Application.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "application.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
