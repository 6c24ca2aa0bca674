package handler

// Error messages for HTTP responses
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPoolParam      = "Unknown pool '%s'. Valid options: fish, trash, treasure"
	ErrMsgInvalidPlaceSpec      = "Invalid place"
	ErrMsgReloadFailed          = "Failed to reload content"
	ErrMsgReloadAliasesFailed   = "Failed to reload location aliases"
	ErrMsgAliasesNotConfigured  = "Location aliases are not configured"
)

// Success messages for API responses
const (
	MsgContentReloaded = "Content reloaded successfully"
	MsgAliasesReloaded = "Location aliases reloaded successfully"
)

// Log messages
const (
	LogMsgDecodeFailed        = "Failed to decode request"
	LogMsgRequestDecoded      = "Request decoded"
	LogMsgServiceError        = "Service error"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgReloadRequested     = "Content reload requested"
	LogMsgAliasReloadStarted  = "Reloading location aliases"
	LogMsgAliasReloadFinished = "Location aliases reloaded"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDatabaseDown   = "database connection failed"
	HealthMsgNoSnapshot     = "content not loaded"
)
