package domain

import "time"

// SyncMetadata is the fingerprint of the last items file pushed to the
// database. A reload skips the upsert while the fingerprint still matches.
type SyncMetadata struct {
	ConfigName   string    `json:"config_name" db:"config_name"`
	LastSyncTime time.Time `json:"last_sync_time" db:"last_sync_time"`
	FileHash     string    `json:"file_hash" db:"file_hash"`
	FileModTime  time.Time `json:"file_mod_time" db:"file_mod_time"`
}

// Matches reports whether a file with this hash and mod time was already
// synced. A nil receiver never matches.
func (m *SyncMetadata) Matches(hash string, modTime time.Time) bool {
	if m == nil {
		return false
	}
	return m.FileHash == hash && m.FileModTime.Equal(modTime)
}
