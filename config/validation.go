package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks every field and reports all problems at once
func ValidateConfig(cfg *Config) error {
	var errs []error

	if strings.TrimSpace(cfg.Server.Port) == "" {
		errs = append(errs, ValidationError{Field: "server.port", Message: "must not be empty"})
	}
	if cfg.Server.ReadTimeout < 0 {
		errs = append(errs, ValidationError{Field: "server.read_timeout", Message: "must not be negative"})
	}
	if cfg.Server.WriteTimeout < 0 {
		errs = append(errs, ValidationError{Field: "server.write_timeout", Message: "must not be negative"})
	}

	if err := validateBaseURL(cfg.Generator.BaseURL); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(cfg.Generator.Model) == "" {
		errs = append(errs, ValidationError{Field: "generator.model", Message: "must not be empty"})
	}
	if cfg.Generator.Timeout <= 0 {
		errs = append(errs, ValidationError{Field: "generator.timeout", Message: "must be positive"})
	}
	if cfg.Server.WriteTimeout > 0 && cfg.Generator.Timeout >= cfg.Server.WriteTimeout {
		errs = append(errs, ValidationError{
			Field:   "generator.timeout",
			Message: fmt.Sprintf("must be shorter than server.write_timeout (%s)", cfg.Server.WriteTimeout),
		})
	}

	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, ValidationError{Field: "log.level", Message: err.Error()})
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{Field: "log.format", Message: fmt.Sprintf("unsupported format %q (want text or json)", cfg.Log.Format)})
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		errs = append(errs, ValidationError{Field: "cors.allowed_origins", Message: "must list at least one origin"})
	}

	return errors.Join(errs...)
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return ValidationError{Field: "generator.base_url", Message: err.Error()}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ValidationError{Field: "generator.base_url", Message: "scheme must be http or https"}
	}
	if u.Host == "" {
		return ValidationError{Field: "generator.base_url", Message: "host must not be empty"}
	}
	return nil
}
