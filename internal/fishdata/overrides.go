package fishdata

import (
	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/location"
)

// override pins an item to a synthesized location list, bypassing the
// location spawn table for items the raw data places incompletely.
type override struct {
	id        string
	name      string
	locations []string
}

var manualOverrides = []override{
	{id: "158", name: "Stonefish", locations: location.MineFloors(20, 20)},
	{id: "161", name: "Ice Pip", locations: location.MineFloors(60, 60)},
	{id: "162", name: "Lava Eel", locations: location.MineFloors(100, 100)},
	{id: "156", name: "Ghostfish", locations: location.MineFloors(20, 60)},
	{id: "798", name: "Midnight Squid", locations: []string{locationSubmarine}},
	{id: "799", name: "Spook Fish", locations: []string{locationSubmarine}},
	{id: "800", name: "Blobfish", locations: []string{locationSubmarine}},
	{id: "164", name: "Sandfish", locations: []string{locationDesert, locationDesertFest}},
	{id: "165", name: "Scorpion Carp", locations: []string{locationDesert, locationDesertFest}},
}

var overriddenIDs = func() map[domain.Key]struct{} {
	out := make(map[domain.Key]struct{}, len(manualOverrides))
	for _, o := range manualOverrides {
		out[domain.ParseKey(o.id)] = struct{}{}
	}
	return out
}()

// IsOverridden reports whether the key is placed by the override table.
func IsOverridden(key domain.Key) bool {
	_, ok := overriddenIDs[key]
	return ok
}
