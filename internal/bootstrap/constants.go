package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized    = "Logging initialized"
	LogMsgStartingContentBridge = "Starting ContentBridge"
	LogMsgConfigurationLoaded   = "Configuration loaded"
	LogMsgFailedCreateLogsDir   = "failed to create logs directory"
	LogMsgFailedOpenLogFile     = "failed to open log file"
	LogMsgFailedDeleteOldLog    = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Registry Configuration
// =============================================================================

// Log messages for configuration registry startup
const (
	LogMsgRegistryMemory     = "Running with in-memory configurations"
	LogMsgRegistryPostgres   = "Running with database-backed configurations"
	LogMsgConfigurationAdded = "Configuration registered"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgJobRunnerStopped     = "Job runner stopped"
	LogMsgEventHubStopped      = "Event hub stopped"
	LogMsgDatabasePoolClosed   = "Database pool closed"
	LogMsgServerStopped        = "Server stopped"
)
