package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	Host        string `validate:"required"`
	Domain      string // public base URL used in image links; derived from Host:Port when empty
	Environment string `validate:"required"`
	Version     string
	ServiceName string `validate:"required"`

	LogLevel  string `validate:"oneof=debug info warn warning error"`
	LogFormat string `validate:"oneof=json text"`
	LogDir    string

	CacheDir           string        `validate:"required"`
	CacheDuration      time.Duration `validate:"gt=0"`
	CacheMemoryEntries int           `validate:"min=1"`
	CacheSweepInterval time.Duration `validate:"gt=0"`
	SweepWorkers       int           `validate:"min=1"`

	RateLimitWindow time.Duration `validate:"gt=0"`
	RateLimitMax    int           `validate:"min=1"`

	CanvasSize    int `validate:"min=1,max=2048"`
	MaxCodeLength int `validate:"min=34"`

	SteamAPIKey    string
	SteamAPIURL    string `validate:"required,url"`
	LeetifyAPIURL  string `validate:"required,url"`
	LeetifyAPIKey  string
	ProfileTimeout time.Duration `validate:"gt=0"`

	TrustedProxies      []string
	AllowedHostSuffixes []string
	CORSAllowedOrigins  []string `validate:"min=1"`

	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Host:        getEnv(EnvHost, DefaultHost),
		Domain:      strings.TrimRight(getEnv(EnvDomain, ""), "/"),
		Environment: strings.ToLower(getEnv(EnvEnvironment, DefaultEnvironment)),
		Version:     getEnv(EnvVersion, DefaultVersion),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),

		LogLevel:  strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat: strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:    getEnv(EnvLogDir, DefaultLogDir),

		CacheDir:           getEnv(EnvCacheDir, DefaultCacheDir),
		CacheDuration:      getEnvAsDuration(EnvCacheDuration, DefaultCacheDuration),
		CacheMemoryEntries: getEnvAsInt(EnvCacheMemoryEntries, DefaultCacheMemoryEntries),
		CacheSweepInterval: getEnvAsDuration(EnvCacheSweepInterval, DefaultCacheSweepInterval),
		SweepWorkers:       getEnvAsInt(EnvSweepWorkers, DefaultSweepWorkers),

		RateLimitWindow: getEnvAsDuration(EnvRateLimitWindow, DefaultRateLimitWindow),
		RateLimitMax:    getEnvAsInt(EnvRateLimitMax, DefaultRateLimitMax),

		CanvasSize:    getEnvAsInt(EnvCanvasSize, DefaultCanvasSize),
		MaxCodeLength: getEnvAsInt(EnvMaxCodeLength, DefaultMaxCodeLength),

		SteamAPIKey:    getEnv(EnvSteamAPIKey, ""),
		SteamAPIURL:    strings.TrimRight(getEnv(EnvSteamAPIURL, DefaultSteamAPIURL), "/"),
		LeetifyAPIURL:  strings.TrimRight(getEnv(EnvLeetifyAPIURL, DefaultLeetifyAPIURL), "/"),
		LeetifyAPIKey:  getEnv(EnvLeetifyAPIKey, ""),
		ProfileTimeout: getEnvAsDuration(EnvProfileTimeout, DefaultProfileTimeout),

		TrustedProxies:      getEnvAsList(EnvTrustedProxies, nil),
		AllowedHostSuffixes: getEnvAsList(EnvAllowedHostSuffixes, DefaultAllowedHostSuffixes),
		CORSAllowedOrigins:  getEnvAsList(EnvCORSAllowedOrigins, DefaultCORSAllowedOrigins),

		ShutdownTimeout: getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.Domain == "" {
		cfg.Domain = fmt.Sprintf("http://%s:%d", cfg.Host, cfg.Port)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ListenAddr is the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction || c.Environment == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back on absence or parse failure
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration parses a time.Duration variable such as "15m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// getEnvAsList splits a comma separated variable, dropping empty items
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
