package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/logger"
)

// Catalog resolves raw item ids, and item aliases, against a fixed item list.
type Catalog struct {
	byID    map[string]domain.ItemData
	byAlias map[string]domain.ItemData
}

// NewCatalog indexes items by bare id and by lowercased alias.
func NewCatalog(items []domain.Item) *Catalog {
	c := &Catalog{
		byID:    make(map[string]domain.ItemData, len(items)),
		byAlias: make(map[string]domain.ItemData),
	}
	for _, it := range items {
		data := it.Data()
		if data.ItemID == "" {
			continue
		}
		c.byID[data.ItemID] = data
		for _, alias := range it.Aliases {
			key := strings.ToLower(strings.TrimSpace(alias))
			if key == "" {
				continue
			}
			if _, taken := c.byAlias[key]; taken {
				slog.Debug(LogMsgAliasCollision, "alias", alias, "item_id", data.ItemID)
				continue
			}
			c.byAlias[key] = data
		}
	}
	return c
}

// Resolve looks a raw id up by bare id first and alias second.
func (c *Catalog) Resolve(rawID string) (domain.ItemData, bool) {
	id := domain.CanonicalID(rawID)
	if data, ok := c.byID[id]; ok {
		return data, true
	}
	data, ok := c.byAlias[strings.ToLower(id)]
	return data, ok
}

// Len is the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.byID)
}

// LoadCatalogFile loads and validates an items file into a catalog.
func LoadCatalogFile(ctx context.Context, path string) (*Catalog, error) {
	loader := NewLoader()
	config, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(config); err != nil {
		return nil, err
	}

	c := NewCatalog(config.Items)
	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, "path", path, "items", c.Len())
	return c, nil
}

// LoadCatalogRepository builds a catalog from the persisted items.
func LoadCatalogRepository(ctx context.Context, repo Repository) (*Catalog, error) {
	items, err := repo.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetExistingItemsFailed, err)
	}

	c := NewCatalog(items)
	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, "source", "postgres", "items", c.Len())
	return c, nil
}
