package item

// ==================== Configuration File Names ====================

// Item configuration file names
const (
	// ConfigFileName is the name of the items configuration file
	ConfigFileName = "items.json"
)

// ==================== Cache ====================

// Cache defaults
const (
	DefaultCacheSize = 1024
	// CacheSchemaVersion invalidates cached lookups when ItemData changes shape
	CacheSchemaVersion = "1.0"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgStatConfigFileFailed = "failed to stat config file: %w"
	ErrMsgReadForHashFailed    = "failed to read config file: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Database operation error messages
const (
	ErrMsgCheckFileChangeFailed  = "failed to check if file changed: %w"
	ErrMsgGetExistingItemsFailed = "failed to get existing items: %w"
	ErrMsgUpsertItemFailed       = "failed to upsert item '%s': %w"
)

// ==================== Log Messages ====================

// Sync operation log messages
const (
	LogMsgConfigUnchanged      = "Items config file unchanged, skipping sync"
	LogMsgSyncCompleted        = "Items sync completed"
	LogMsgUpsertedItem         = "Upserted item"
	LogMsgUpdateMetadataFailed = "Failed to update sync metadata"
	LogMsgCatalogLoaded        = "Item catalog loaded"
	LogMsgAliasCollision       = "Item alias already taken, keeping first"
)

// ==================== Format Strings for Error Construction ====================

// These format strings are used with fmt.Errorf for detailed error messages
const (
	ErrFmtItemAtIndexEmpty = "%w: item at index %d has empty id"
	ErrFmtItemBadID        = "%w: item '%s' has an empty bare id"
)
