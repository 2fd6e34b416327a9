package config

import "time"

// Environment variable names
const (
	EnvPort                = "PORT"
	EnvHost                = "HOST"
	EnvDomain              = "DOMAIN"
	EnvEnvironment         = "ENVIRONMENT"
	EnvVersion             = "VERSION"
	EnvServiceName         = "SERVICE_NAME"
	EnvLogLevel            = "LOG_LEVEL"
	EnvLogFormat           = "LOG_FORMAT"
	EnvLogDir              = "LOG_DIR"
	EnvCacheDir            = "CACHE_DIR"
	EnvCacheDuration       = "CACHE_DURATION"
	EnvCacheMemoryEntries  = "CACHE_MEMORY_ENTRIES"
	EnvCacheSweepInterval  = "CACHE_SWEEP_INTERVAL"
	EnvSweepWorkers        = "CACHE_SWEEP_WORKERS"
	EnvRateLimitWindow     = "RATE_LIMIT_WINDOW"
	EnvRateLimitMax        = "RATE_LIMIT_MAX"
	EnvCanvasSize          = "CANVAS_SIZE"
	EnvMaxCodeLength       = "MAX_CODE_LENGTH"
	EnvSteamAPIKey         = "STEAM_API_KEY"
	EnvSteamAPIURL         = "STEAM_API_URL"
	EnvLeetifyAPIURL       = "LEETIFY_API_URL"
	EnvLeetifyAPIKey       = "LEETIFY_API_KEY"
	EnvProfileTimeout      = "PROFILE_TIMEOUT"
	EnvTrustedProxies      = "TRUSTED_PROXIES"
	EnvAllowedHostSuffixes = "ALLOWED_HOST_SUFFIXES"
	EnvCORSAllowedOrigins  = "CORS_ALLOWED_ORIGINS"
	EnvShutdownTimeout     = "SHUTDOWN_TIMEOUT"
)

// Defaults
const (
	DefaultPort               = "8080"
	DefaultHost               = "localhost"
	DefaultEnvironment        = "dev"
	EnvironmentProduction     = "prod"
	DefaultVersion            = "dev"
	DefaultServiceName        = "cs2-crosshair"
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultLogDir             = "logs"
	DefaultCacheDir           = "cache"
	DefaultCacheDuration      = 3 * time.Hour
	DefaultCacheMemoryEntries = 512
	DefaultCacheSweepInterval = 30 * time.Minute
	DefaultSweepWorkers       = 1
	DefaultRateLimitWindow    = 15 * time.Minute
	DefaultRateLimitMax       = 100
	DefaultCanvasSize         = 64
	DefaultMaxCodeLength      = 45
	DefaultSteamAPIURL        = "https://api.steampowered.com"
	DefaultLeetifyAPIURL      = "https://api-public.cs-prod.leetify.com"
	DefaultProfileTimeout     = 5 * time.Second
	DefaultShutdownTimeout    = 30 * time.Second
)

var (
	DefaultAllowedHostSuffixes = []string{".up.railway.app"}
	DefaultCORSAllowedOrigins  = []string{"*"}
)
