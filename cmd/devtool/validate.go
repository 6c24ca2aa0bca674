package main

import (
	"context"
	"flag"

	"github.com/osse101/catchpool/internal/bootstrap"
	"github.com/osse101/catchpool/internal/config"
	"github.com/osse101/catchpool/internal/domain"
)

type ValidateCommand struct{}

func (c *ValidateCommand) Name() string {
	return "validate"
}

func (c *ValidateCommand) Description() string {
	return "Build a snapshot from the content files and report what was loaded"
}

func (c *ValidateCommand) Run(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	packsDir := fs.String("packs", cfg.ContentPacksDir, "content pack directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Always validate the files on disk, never the database copy.
	cfg.DataSource = config.DataSourceFile
	cfg.ContentPacksDir = *packsDir

	PrintHeader("Validating content...")

	ctx := context.Background()
	stack, err := bootstrap.BuildContent(ctx, cfg, nil)
	if err != nil {
		return err
	}

	snap, err := stack.Service.Reload(ctx)
	if err != nil {
		return err
	}

	PrintInfo("Sources: %v", snap.Sources)
	for _, pool := range []domain.Pool{domain.PoolFish, domain.PoolTrash, domain.PoolTreasure} {
		PrintInfo("%-9s %d entries", pool, snap.Counts()[string(pool)])
	}
	PrintInfo("Traits: %d, location alias rules: %d", len(snap.Traits), stack.Aliases.Len())
	for reason, n := range snap.Skipped {
		PrintWarning("Skipped %d rows: %s", n, reason)
	}
	PrintSuccess("Content is valid")
	return nil
}
