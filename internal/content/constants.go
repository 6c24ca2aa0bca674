package content

// Skip reasons for entries dropped while loading and merging
const (
	ReasonNoTraits     = "no_traits"
	ReasonBadPackEntry = "bad_pack_entry"
)

// Content pack file schema
const (
	SchemaContentPack = "content-pack"
	PackFileExt       = ".json"
)

// Error messages
const (
	ErrMsgReadPack     = "failed to read content pack %s"
	ErrMsgDecodePack   = "failed to decode content pack %s"
	ErrMsgPackSchema   = "content pack %s has schema %q, expected %q"
	ErrMsgEmptyWindow  = "time window %d-%d is empty"
	ErrMsgReadPackDir  = "failed to read content pack directory %s"
	ErrMsgBuildContext = "failed to build fishing context"
)

// Log messages
const (
	LogMsgReloadStarted    = "Content reload started"
	LogMsgReloadCompleted  = "Content reload completed"
	LogMsgReloadFailed     = "Content reload failed, keeping previous snapshot"
	LogMsgContributorDone  = "Content contributor loaded"
	LogMsgEntriesDiscarded = "Fish entries without traits discarded"
	LogMsgPackLoaded       = "Content pack loaded"
	LogMsgPackEntrySkipped = "Content pack entry skipped"
)
