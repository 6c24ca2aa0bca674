package content

import (
	"time"

	"github.com/osse101/catchpool/internal/domain"
)

// Snapshot is the merged output of one successful reload. It is never
// modified after publication.
type Snapshot struct {
	Version  int64
	LoadedAt time.Time
	Sources  []string
	Fish     []domain.Entry
	Trash    []domain.Entry
	Treasure []domain.Entry
	Traits   map[domain.Key]domain.FishTraits
	Skipped  map[string]int
}

// Pool returns the entries of one pool.
func (s *Snapshot) Pool(pool domain.Pool) []domain.Entry {
	switch pool {
	case domain.PoolFish:
		return s.Fish
	case domain.PoolTrash:
		return s.Trash
	case domain.PoolTreasure:
		return s.Treasure
	default:
		return nil
	}
}

// TraitsOf returns the minigame traits of a fish.
func (s *Snapshot) TraitsOf(key domain.Key) (domain.FishTraits, bool) {
	t, ok := s.Traits[key]
	return t, ok
}

// Counts returns the number of entries per pool.
func (s *Snapshot) Counts() map[string]int {
	return map[string]int{
		string(domain.PoolFish):     len(s.Fish),
		string(domain.PoolTrash):    len(s.Trash),
		string(domain.PoolTreasure): len(s.Treasure),
	}
}

// Summary is the wire view of a snapshot.
type Summary struct {
	Version  int64          `json:"version"`
	LoadedAt time.Time      `json:"loadedAt"`
	Sources  []string       `json:"sources"`
	Entries  map[string]int `json:"entries"`
	Traits   int            `json:"traits"`
	Skipped  map[string]int `json:"skipped,omitempty"`
}

// Summary describes the snapshot without its entries.
func (s *Snapshot) Summary() Summary {
	return Summary{
		Version:  s.Version,
		LoadedAt: s.LoadedAt,
		Sources:  s.Sources,
		Entries:  s.Counts(),
		Traits:   len(s.Traits),
		Skipped:  s.Skipped,
	}
}

// merger accumulates contributor output in registration order.
type merger struct {
	snap *Snapshot
}

func newMerger() *merger {
	return &merger{snap: &Snapshot{
		Traits:  make(map[domain.Key]domain.FishTraits),
		Skipped: make(map[string]int),
	}}
}

func (m *merger) add(c domain.Content) {
	m.snap.Sources = append(m.snap.Sources, c.Source)
	m.snap.Fish = append(m.snap.Fish, c.Fish...)
	m.snap.Trash = append(m.snap.Trash, c.Trash...)
	m.snap.Treasure = append(m.snap.Treasure, c.Treasure...)
	for key, traits := range c.Traits {
		m.snap.Traits[key] = traits
	}
	for reason, n := range c.Skipped {
		m.snap.Skipped[reason] += n
	}
}

// finish drops fish that cannot be scored because no contributor described
// their traits.
func (m *merger) finish() (*Snapshot, int) {
	kept := m.snap.Fish[:0:0]
	dropped := 0
	for _, e := range m.snap.Fish {
		if _, ok := m.snap.Traits[e.Key]; !ok {
			dropped++
			continue
		}
		kept = append(kept, e)
	}
	m.snap.Fish = kept
	if dropped > 0 {
		m.snap.Skipped[ReasonNoTraits] += dropped
	}
	return m.snap, dropped
}
