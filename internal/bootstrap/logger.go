package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/cs2-crosshair/internal/config"
	"github.com/osse101/cs2-crosshair/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// With an empty LOG_DIR only stdout is used and the returned file is nil.
// Otherwise the caller must close the returned log file.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	return setupLogger(cfg, os.Stdout, time.Now())
}

func setupLogger(cfg *config.Config, stdout io.Writer, now time.Time) (*os.File, error) {
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, !cfg.IsProduction())

	if cfg.LogDir == "" {
		logger.InitLoggerWithWriter(logCfg, stdout)
		logStartup(cfg, logCfg)
		return nil, nil
	}

	if err := os.MkdirAll(cfg.LogDir, LogDirPerm); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	// Leave room for the file about to be created
	cleanupLogs(cfg.LogDir, LogFilesKept)

	logFileName := filepath.Join(cfg.LogDir, LogFilePrefix+now.Format(LogFileTimestamp)+LogFileSuffix)
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePerm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(stdout, logFile))
	logStartup(cfg, logCfg)

	return logFile, nil
}

func logStartup(cfg *config.Config, logCfg logger.Config) {
	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "format", logCfg.Format)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"addr", cfg.ListenAddr(),
		"domain", cfg.Domain,
		"cache_dir", cfg.CacheDir,
		"cache_duration", cfg.CacheDuration,
		"canvas_size", cfg.CanvasSize,
		"rate_limit", fmt.Sprintf("%d/%s", cfg.RateLimitMax, cfg.RateLimitWindow),
		"steam_key_set", cfg.SteamAPIKey != "")

	for _, w := range config.Warnings(cfg) {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}
}

// cleanupLogs removes the oldest session logs so that at most keep remain.
// Session file names sort chronologically.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && strings.HasPrefix(name, LogFilePrefix) && strings.HasSuffix(name, LogFileSuffix) {
			logFiles = append(logFiles, name)
		}
	}
	sort.Strings(logFiles)

	for i := 0; i < len(logFiles)-keep; i++ {
		if err := os.Remove(filepath.Join(logDir, logFiles[i])); err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", LogMsgFailedDeleteOldLog, logFiles[i], err)
		}
	}
}
