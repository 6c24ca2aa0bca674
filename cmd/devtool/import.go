package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/osse101/catchpool/internal/bootstrap"
	"github.com/osse101/catchpool/internal/database"
	"github.com/osse101/catchpool/internal/database/postgres"
	"github.com/osse101/catchpool/internal/fishdata"
)

type ImportCommand struct{}

func (c *ImportCommand) Name() string {
	return "import"
}

func (c *ImportCommand) Description() string {
	return "Copy raw fish data and the item catalog from files into the database"
}

func (c *ImportCommand) Run(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fishPath := fs.String("fish", cfg.FishDataPath, "fish descriptor JSON file")
	locationsPath := fs.String("locations", cfg.LocationDataPath, "location spawn JSON file")
	itemsPath := fs.String("items", cfg.ItemsPath, "items JSON file (skipped when missing)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	PrintHeader("Importing content into the database...")

	ctx := context.Background()
	pool, err := connect(ctx, cfg, dbConnectAttempts)
	if err != nil {
		return err
	}
	defer pool.Close()

	if _, err := database.Migrate(ctx, pool); err != nil {
		return err
	}

	if _, err := os.Stat(*itemsPath); err == nil {
		catalog, err := bootstrap.SyncItems(ctx, postgres.NewItemRepository(pool), *itemsPath)
		if err != nil {
			return err
		}
		PrintSuccess("Item catalog holds %d items", catalog.Len())
	} else if errors.Is(err, os.ErrNotExist) {
		PrintWarning("No items file at %s, catalog left unchanged", *itemsPath)
	} else {
		return err
	}

	src := fishdata.NewFileSource(*fishPath, *locationsPath)
	if err := postgres.NewRawDataRepository(pool).Import(ctx, src); err != nil {
		return err
	}
	PrintSuccess("Raw fish data imported from %s and %s", *fishPath, *locationsPath)
	return nil
}
