package bootstrap

// Log file management
const (
	LogFilePrefix    = "session_"
	LogFileSuffix    = ".log"
	LogFileTimestamp = "2006-01-02_15-04-05"
	LogFilesKept     = 9
	LogDirPerm       = 0o755
	LogFilePerm      = 0o644
)

// Logger setup messages
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting crosshair service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingBackground   = "Stopping background jobs..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
