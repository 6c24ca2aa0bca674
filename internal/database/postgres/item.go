package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/catchpool/internal/database/generated"
	"github.com/osse101/catchpool/internal/domain"
)

// ItemRepository stores the item catalog and its sync metadata.
type ItemRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// GetAllItems retrieves all items from the database
func (r *ItemRepository) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.q.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAllItems, err)
	}

	items := make([]domain.Item, len(rows))
	for i, row := range rows {
		items[i] = domain.Item{
			ID:      row.ItemID,
			Name:    row.Name,
			Aliases: row.Aliases,
			Tags:    row.Tags,
		}
	}
	return items, nil
}

// GetItemByID retrieves an item by its raw id
func (r *ItemRepository) GetItemByID(ctx context.Context, id string) (*domain.Item, error) {
	row, err := r.q.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	return &domain.Item{
		ID:      row.ItemID,
		Name:    row.Name,
		Aliases: row.Aliases,
		Tags:    row.Tags,
	}, nil
}

// UpsertItem inserts the item or replaces its name, aliases and tags
func (r *ItemRepository) UpsertItem(ctx context.Context, item domain.Item) error {
	err := r.q.UpsertItem(ctx, generated.UpsertItemParams{
		ItemID:  item.ID,
		Name:    item.Name,
		Aliases: nonNil(item.Aliases),
		Tags:    nonNil(item.Tags),
	})
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToUpsertItem, item.ID, err)
	}
	return nil
}

// GetSyncMetadata retrieves sync metadata for a config file
func (r *ItemRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	row, err := r.q.GetSyncMetadata(ctx, configName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New(ErrMsgSyncMetadataNotFound)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSyncMetadata, err)
	}

	return &domain.SyncMetadata{
		ConfigName:   row.ConfigName,
		LastSyncTime: row.LastSyncTime.Time,
		FileHash:     row.FileHash,
		FileModTime:  row.FileModTime.Time,
	}, nil
}

// UpsertSyncMetadata inserts or updates sync metadata for a config file
func (r *ItemRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	params := generated.UpsertSyncMetadataParams{
		ConfigName:   metadata.ConfigName,
		LastSyncTime: pgtype.Timestamptz{Time: metadata.LastSyncTime, Valid: true},
		FileHash:     metadata.FileHash,
		FileModTime:  pgtype.Timestamptz{Time: metadata.FileModTime, Valid: true},
	}

	if err := r.q.UpsertSyncMetadata(ctx, params); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertSyncMeta, err)
	}
	return nil
}
