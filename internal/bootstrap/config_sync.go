package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/catchpool/internal/item"
)

// SyncItems loads, validates, and syncs the items configuration to the
// database, then builds the catalog from what is persisted.
// Hash-based change detection skips the write when the file is unchanged.
func SyncItems(ctx context.Context, repo item.Repository, path string) (*item.Catalog, error) {
	slog.Info(LogMsgSyncingItems, "path", path)
	loader := item.NewLoader()

	itemConfig, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadItems, err)
	}

	if err := loader.Validate(itemConfig); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidItems, err)
	}

	result, err := loader.SyncToDatabase(ctx, itemConfig, repo, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncItems, err)
	}

	if result.ItemsUpserted > 0 {
		slog.Info(LogMsgItemsSynced,
			"upserted", result.ItemsUpserted,
			"skipped", result.ItemsSkipped)
	} else {
		slog.Info(LogMsgItemsUnchanged)
	}

	catalog, err := item.LoadCatalogRepository(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	return catalog, nil
}
