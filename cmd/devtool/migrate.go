package main

import (
	"context"
	"fmt"

	"github.com/osse101/catchpool/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply embedded database migrations"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) > 0 && args[0] != "up" {
		return fmt.Errorf("unsupported subcommand %q: only up is available, migrations are embedded in the binary", args[0])
	}

	PrintHeader("Applying migrations...")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := connect(ctx, cfg, dbConnectAttempts)
	if err != nil {
		return err
	}
	defer pool.Close()

	version, err := database.Migrate(ctx, pool)
	if err != nil {
		return err
	}
	PrintSuccess("Database at schema version %d", version)
	return nil
}
