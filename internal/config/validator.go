package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg against its struct tags and returns every violation,
// combined with multierr, so a misconfigured deployment reports all problems
// in one go.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	var combined error
	for _, e := range validationErrors {
		combined = multierr.Append(combined, fmt.Errorf("invalid %s: %s", envName(e.Field()), describe(e)))
	}
	return combined
}

// Warnings lists non-fatal configuration issues worth logging at startup.
func Warnings(cfg *Config) []string {
	var warnings []string

	if cfg.SteamAPIKey == "" {
		warnings = append(warnings, "STEAM_API_KEY is not set - /id/{vanity} lookups will fail")
	}
	if cfg.IsProduction() && strings.HasPrefix(cfg.Domain, "http://localhost") {
		warnings = append(warnings, "DOMAIN is not set in production - embed image links will point at localhost")
	}
	for _, o := range cfg.CORSAllowedOrigins {
		if o == "*" && cfg.IsProduction() {
			warnings = append(warnings, "CORS_ALLOWED_ORIGINS allows any origin")
			break
		}
	}

	return warnings
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "must be set"
	case "url":
		return fmt.Sprintf("%q is not a valid URL", e.Value())
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", e.Value(), e.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", e.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	default:
		return fmt.Sprintf("failed %q check", e.Tag())
	}
}

// envName maps a Config field back to the variable that sets it.
func envName(field string) string {
	if name, ok := fieldEnv[field]; ok {
		return name
	}
	return field
}

var fieldEnv = map[string]string{
	"Port":               EnvPort,
	"Host":               EnvHost,
	"Environment":        EnvEnvironment,
	"ServiceName":        EnvServiceName,
	"LogLevel":           EnvLogLevel,
	"LogFormat":          EnvLogFormat,
	"CacheDir":           EnvCacheDir,
	"CacheDuration":      EnvCacheDuration,
	"CacheMemoryEntries": EnvCacheMemoryEntries,
	"CacheSweepInterval": EnvCacheSweepInterval,
	"SweepWorkers":       EnvSweepWorkers,
	"RateLimitWindow":    EnvRateLimitWindow,
	"RateLimitMax":       EnvRateLimitMax,
	"CanvasSize":         EnvCanvasSize,
	"MaxCodeLength":      EnvMaxCodeLength,
	"SteamAPIURL":        EnvSteamAPIURL,
	"LeetifyAPIURL":      EnvLeetifyAPIURL,
	"ProfileTimeout":     EnvProfileTimeout,
	"CORSAllowedOrigins": EnvCORSAllowedOrigins,
	"ShutdownTimeout":    EnvShutdownTimeout,
}
