package domain

// Item is one entry of the item catalog.
type Item struct {
	ID      string   `json:"id" db:"item_id"`
	Name    string   `json:"name,omitempty" db:"name"`
	Aliases []string `json:"aliases,omitempty" db:"aliases"`
	Tags    []string `json:"tags,omitempty" db:"tags"`
}

// Data converts the catalog row to lookup output.
func (i Item) Data() ItemData {
	key := ParseKey(i.ID)
	return ItemData{
		ItemID:      key.ID(),
		QualifiedID: key.String(),
		Name:        i.Name,
		Tags:        append([]string(nil), i.Tags...),
	}
}
