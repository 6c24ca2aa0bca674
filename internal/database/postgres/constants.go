package postgres

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTx  = "failed to begin transaction"
	ErrMsgFailedToCommitTx = "failed to commit transaction"
)

// Error Messages - Item Operations
const (
	ErrMsgFailedToGetAllItems      = "failed to get all items"
	ErrMsgFailedToGetItem          = "failed to get item"
	ErrMsgFailedToUpsertItem       = "failed to upsert item"
	ErrMsgFailedToGetSyncMetadata  = "failed to get sync metadata"
	ErrMsgFailedToUpsertSyncMeta   = "failed to upsert sync metadata"
	ErrMsgSyncMetadataNotFound     = "sync metadata not found"
	ErrMsgFailedToRollbackTx       = "Failed to rollback transaction"
	ErrMsgFailedToGetDescriptors   = "failed to get fish descriptors"
	ErrMsgFailedToGetSpawns        = "failed to get location spawns"
	ErrMsgFailedToClearRawData     = "failed to clear raw data"
	ErrMsgFailedToInsertDescriptor = "failed to insert fish descriptor"
	ErrMsgFailedToInsertSpawn      = "failed to insert location spawn"
)

// Log Messages
const (
	LogMsgRawDataReplaced = "Replaced raw fish data"
)
