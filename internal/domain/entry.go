package domain

import "strings"

// Pool names a candidate pool.
type Pool string

const (
	PoolFish     Pool = "fish"
	PoolTrash    Pool = "trash"
	PoolTreasure Pool = "treasure"
)

// ParsePool maps a pool name, case-insensitively.
func ParsePool(s string) (Pool, bool) {
	switch Pool(strings.ToLower(s)) {
	case PoolFish:
		return PoolFish, true
	case PoolTrash:
		return PoolTrash, true
	case PoolTreasure:
		return PoolTreasure, true
	default:
		return "", false
	}
}

// CatchActions are side effects the host performs when the item is caught.
type CatchActions struct {
	SetFlags []string `json:"setFlags,omitempty"`
}

// Entry pairs an item with one availability record. Several entries may share
// a key; each is an independent candidate.
type Entry struct {
	Key          Key              `json:"id"`
	Availability AvailabilityInfo `json:"availability"`
	OnCatch      *CatchActions    `json:"onCatch,omitempty"`
}

// NewEntry returns an entry whose availability has been normalized.
func NewEntry(key Key, info AvailabilityInfo) Entry {
	return Entry{Key: key, Availability: info.Normalized()}
}

// WithOnCatch returns a copy that sets the given flags on catch.
func (e Entry) WithOnCatch(flags ...string) Entry {
	out := e
	out.OnCatch = &CatchActions{SetFlags: append([]string(nil), flags...)}
	return out
}
