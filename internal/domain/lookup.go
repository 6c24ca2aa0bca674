package domain

import "slices"

// TagLegendary marks items the lookup considers legendary fish.
const TagLegendary = "fish_legendary"

// ItemData is what an ItemLookup knows about an item.
type ItemData struct {
	ItemID      string   `json:"itemId"`
	QualifiedID string   `json:"qualifiedId"`
	Name        string   `json:"name,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// HasTag reports whether the item carries a context tag.
func (d ItemData) HasTag(tag string) bool {
	return slices.Contains(d.Tags, tag)
}

// ItemLookup resolves raw item ids to canonical item data.
type ItemLookup interface {
	Resolve(rawID string) (ItemData, bool)
}

// ItemLookupFunc adapts a function to ItemLookup.
type ItemLookupFunc func(rawID string) (ItemData, bool)

// Resolve calls f.
func (f ItemLookupFunc) Resolve(rawID string) (ItemData, bool) {
	return f(rawID)
}

// PermissiveLookup resolves every id to itself. Used when no item catalog is
// configured.
var PermissiveLookup ItemLookup = ItemLookupFunc(func(rawID string) (ItemData, bool) {
	key := ParseKey(rawID)
	if !key.IsValid() || key.ID() == "" {
		return ItemData{}, false
	}
	return ItemData{ItemID: key.ID(), QualifiedID: key.String()}, true
})
