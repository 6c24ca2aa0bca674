package domain

// Content is what a single contributor adds to a reload. Contributors are
// merged in registration order.
type Content struct {
	Source   string             `json:"source"`
	Fish     []Entry            `json:"fish,omitempty"`
	Trash    []Entry            `json:"trash,omitempty"`
	Treasure []Entry            `json:"treasure,omitempty"`
	Traits   map[Key]FishTraits `json:"traits,omitempty"`
	Skipped  map[string]int     `json:"skipped,omitempty"`
}

// Entries returns the entries the content adds to a pool.
func (c *Content) Entries(pool Pool) []Entry {
	switch pool {
	case PoolFish:
		return c.Fish
	case PoolTrash:
		return c.Trash
	case PoolTreasure:
		return c.Treasure
	default:
		return nil
	}
}

// Size is the number of entries across every pool.
func (c *Content) Size() int {
	return len(c.Fish) + len(c.Trash) + len(c.Treasure)
}
