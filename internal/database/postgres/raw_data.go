package postgres

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/catchpool/internal/database/generated"
	"github.com/osse101/catchpool/internal/fishdata"
	"github.com/osse101/catchpool/internal/logger"
)

// RawDataRepository serves the raw fish tables from PostgreSQL. It satisfies
// fishdata.RawDataSource.
type RawDataRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewRawDataRepository creates a new RawDataRepository
func NewRawDataRepository(pool *pgxpool.Pool) *RawDataRepository {
	return &RawDataRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// FishDescriptors returns the item id to descriptor table.
func (r *RawDataRepository) FishDescriptors(ctx context.Context) (map[string]string, error) {
	rows, err := r.q.GetFishDescriptors(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDescriptors, err)
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.ItemID] = row.Descriptor
	}
	return out, nil
}

// LocationSpawns returns each location's spawn list in stored order.
func (r *RawDataRepository) LocationSpawns(ctx context.Context) (map[string][]fishdata.Spawn, error) {
	rows, err := r.q.GetLocationSpawns(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSpawns, err)
	}

	out := make(map[string][]fishdata.Spawn)
	for _, row := range rows {
		out[row.Location] = append(out[row.Location], fishdata.Spawn{
			ItemID:    row.ItemID,
			Condition: row.Condition.String,
		})
	}
	return out, nil
}

// Replace swaps both raw tables for the given content in one transaction.
func (r *RawDataRepository) Replace(ctx context.Context, descriptors map[string]string, spawns map[string][]fishdata.Spawn) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	q := r.q.WithTx(tx)
	if err := q.DeleteLocationSpawns(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClearRawData, err)
	}
	if err := q.DeleteFishDescriptors(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClearRawData, err)
	}

	for id, desc := range descriptors {
		err := q.InsertFishDescriptor(ctx, generated.InsertFishDescriptorParams{ItemID: id, Descriptor: desc})
		if err != nil {
			return fmt.Errorf("%s %s: %w", ErrMsgFailedToInsertDescriptor, id, err)
		}
	}

	locations := make([]string, 0, len(spawns))
	for loc := range spawns {
		locations = append(locations, loc)
	}
	sort.Strings(locations)

	for _, loc := range locations {
		for i, s := range spawns[loc] {
			if i > math.MaxInt32 {
				break
			}
			err := q.InsertLocationSpawn(ctx, generated.InsertLocationSpawnParams{
				Location:  loc,
				Position:  int32(i),
				ItemID:    s.ItemID,
				Condition: textOrNull(s.Condition),
			})
			if err != nil {
				return fmt.Errorf("%s %s/%d: %w", ErrMsgFailedToInsertSpawn, loc, i, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, err)
	}

	logger.FromContext(ctx).Info(LogMsgRawDataReplaced,
		"descriptors", len(descriptors),
		"locations", len(spawns))
	return nil
}

// Import copies any raw data source into the database.
func (r *RawDataRepository) Import(ctx context.Context, src fishdata.RawDataSource) error {
	descriptors, err := src.FishDescriptors(ctx)
	if err != nil {
		return err
	}
	spawns, err := src.LocationSpawns(ctx)
	if err != nil {
		return err
	}
	return r.Replace(ctx, descriptors, spawns)
}
