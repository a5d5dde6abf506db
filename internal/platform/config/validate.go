package config

import (
	"errors"
	"fmt"
)

// Valid content source values.
const (
	SourceLocal  = "local"
	SourceRemote = "remote"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Content.validate(),
		c.Client.validate(c.Content.Source),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (ct *ContentConfig) validate() error {
	var errs []error

	switch ct.Source {
	case SourceLocal, SourceRemote:
		// Valid sources.
	default:
		errs = append(errs, fmt.Errorf("content.source must be one of: local, remote; got %q", ct.Source))
	}

	if ct.Source == SourceLocal && ct.DataDir == "" {
		errs = append(errs, errors.New("content.data_dir must not be empty for the local source"))
	}
	if ct.DefaultLanguage == "" {
		errs = append(errs, errors.New("content.default_language must not be empty"))
	}
	if len(ct.Languages) == 0 {
		errs = append(errs, errors.New("content.languages must list at least one language"))
	} else {
		found := false
		for _, lang := range ct.Languages {
			if lang == ct.DefaultLanguage {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, fmt.Errorf("content.languages must include the default language %q", ct.DefaultLanguage))
		}
	}
	if ct.DefaultVersion == "" {
		errs = append(errs, errors.New("content.default_version must not be empty"))
	}
	if ct.LoadWorkers < 1 {
		errs = append(errs, fmt.Errorf("content.load_workers must be >= 1, got %d", ct.LoadWorkers))
	}

	return errors.Join(errs...)
}

// validate checks client settings. The client is only constructed for the
// remote content source, so most checks are skipped for the local source.
func (cl *ClientConfig) validate(source string) error {
	if source != SourceRemote {
		return nil
	}

	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty for the otlp exporter"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty"))
	}

	return errors.Join(errs...)
}
