package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/catchpool/internal/config"
	"github.com/osse101/catchpool/internal/content"
	"github.com/osse101/catchpool/internal/database/postgres"
	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/fishdata"
	"github.com/osse101/catchpool/internal/item"
	"github.com/osse101/catchpool/internal/location"
	"github.com/osse101/catchpool/internal/validation"
)

// ContentStack is everything the HTTP layer and the reload worker share.
type ContentStack struct {
	Service  content.Service
	Lookup   *item.CachedLookup
	Aliases  *location.FileAliasProvider
	Expander *location.Expander
	Sources  []string
}

// BuildContent wires the item lookup, the raw data source, content packs and
// location aliases into a content service. It does not perform the first
// reload. dbPool is required only for the postgres data source.
func BuildContent(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool) (*ContentStack, error) {
	if cfg.UsesPostgres() && dbPool == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedSource, ErrMsgPostgresPoolRequired)
	}

	lookup, err := buildLookup(ctx, cfg, dbPool)
	if err != nil {
		return nil, err
	}
	cached := item.NewCachedLookup(lookup, cfg.ItemCacheSize, cfg.ItemCacheTTL)

	var raw fishdata.RawDataSource
	switch cfg.DataSource {
	case config.DataSourcePostgres:
		raw = postgres.NewRawDataRepository(dbPool)
	case config.DataSourceFile:
		raw = fishdata.NewFileSource(cfg.FishDataPath, cfg.LocationDataPath)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedSource, cfg.DataSource)
	}

	packs, err := content.LoadPackDir(cfg.ContentPacksDir, validation.NewSchemaValidator())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadPacks, err)
	}

	contributors := append([]content.Contributor{fishdata.NewDefaultSource(raw, cached)}, packs...)
	sources := make([]string, 0, len(contributors))
	for _, c := range contributors {
		sources = append(sources, c.Name())
	}
	slog.Info(LogMsgContentSourcesReady, "data_source", cfg.DataSource, "sources", sources)

	aliases, err := location.NewFileAliasProvider(cfg.LocationAliasesPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadAliases, err)
	}
	slog.Info(LogMsgLocationAliasesReady, "path", cfg.LocationAliasesPath, "rules", aliases.Len())

	return &ContentStack{
		Service:  content.NewService(cached, contributors),
		Lookup:   cached,
		Aliases:  aliases,
		Expander: location.NewExpander(aliases),
		Sources:  sources,
	}, nil
}

// buildLookup picks the item catalog. With postgres the items file is synced
// into the database first; with files a missing items file means every id
// resolves to itself.
func buildLookup(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool) (domain.ItemLookup, error) {
	hasItemsFile := cfg.ItemsPath != ""
	if hasItemsFile {
		if _, err := os.Stat(cfg.ItemsPath); errors.Is(err, os.ErrNotExist) {
			hasItemsFile = false
		}
	}

	if cfg.UsesPostgres() {
		repo := postgres.NewItemRepository(dbPool)
		if hasItemsFile {
			catalog, err := SyncItems(ctx, repo, cfg.ItemsPath)
			if err != nil {
				return nil, err
			}
			return catalog, nil
		}
		catalog, err := item.LoadCatalogRepository(ctx, repo)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
		}
		return catalog, nil
	}

	if !hasItemsFile {
		slog.Warn(LogMsgNoItemCatalog, "path", cfg.ItemsPath)
		return domain.PermissiveLookup, nil
	}
	catalog, err := item.LoadCatalogFile(ctx, cfg.ItemsPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	return catalog, nil
}
