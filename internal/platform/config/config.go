// Package config provides configuration loading and validation for the
// documentation server. Configuration is loaded from YAML files with
// environment variable overrides using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Content   ContentConfig   `koanf:"content"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ContentConfig holds the content layer settings: where structured site data
// lives, which languages and versions the site serves, and whether content
// is read from local YAML data or a remote content API.
type ContentConfig struct {
	// Source selects the content backend: "local" (YAML data directory)
	// or "remote" (content API via the HTTP client).
	Source string `koanf:"source"`
	// DataDir is the root of the local YAML data tree, one subdirectory
	// per language.
	DataDir string `koanf:"data_dir"`
	// DefaultLanguage is the language used when a request path carries no
	// language prefix, and the fallback language for title rendering.
	DefaultLanguage string `koanf:"default_language"`
	// Languages lists every language code the site serves.
	Languages []string `koanf:"languages"`
	// DefaultVersion is the version used when a request path carries no
	// version segment.
	DefaultVersion string `koanf:"default_version"`
	// Versions maps full version names to the short names bound as
	// booleans in render contexts (e.g. "enterprise-server@3.12": "ghes").
	Versions map[string]string `koanf:"versions"`
	// LoadWorkers bounds the number of per-language data files loaded
	// concurrently at startup.
	LoadWorkers int `koanf:"load_workers"`
}

// ClientConfig holds settings for the remote content API client.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound client rate limiting settings.
// A zero RequestsPerSecond disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
