package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0644
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

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingCatchpool   = "Starting catchpool"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Content Wiring
// =============================================================================

// Worker pool sizing for background reloads. One worker keeps reloads serial.
const (
	ReloadWorkers   = 1
	ReloadQueueSize = 1
	ReloadJobName   = "content-reload"
)

const (
	LogMsgSyncingItems         = "Syncing items from JSON config..."
	LogMsgItemsSynced          = "Items synced successfully"
	LogMsgItemsUnchanged       = "Items config unchanged, sync skipped"
	LogMsgNoItemCatalog        = "No item catalog found, every item id resolves to itself"
	LogMsgContentSourcesReady  = "Content sources ready"
	LogMsgLocationAliasesReady = "Location aliases ready"

	ErrMsgFailedLoadItems      = "failed to load items config"
	ErrMsgInvalidItems         = "invalid items config"
	ErrMsgFailedSyncItems      = "failed to sync items to database"
	ErrMsgFailedLoadCatalog    = "failed to load item catalog"
	ErrMsgFailedLoadPacks      = "failed to load content packs"
	ErrMsgFailedLoadAliases    = "failed to load location aliases"
	ErrMsgPostgresPoolRequired = "postgres data source requires a database pool"
)

// =============================================================================
// Shutdown
// =============================================================================

// DefaultShutdownTimeout bounds GracefulShutdown when the caller has no deadline
const DefaultShutdownTimeout = 30 * time.Second

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingScheduler    = "Stopping reload scheduler..."
	LogMsgStoppingWorkers      = "Stopping worker pool..."
	LogMsgClosingDatabase      = "Closing database pool..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
