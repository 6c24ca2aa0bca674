package main

import (
	"context"
)

type CheckDBCommand struct{}

func (c *CheckDBCommand) Name() string {
	return "check-db"
}

func (c *CheckDBCommand) Description() string {
	return "Wait for the database to accept connections and report the schema version"
}

func (c *CheckDBCommand) Run(args []string) error {
	PrintHeader("Checking database...")

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
	PrintSuccess("Database is ready (%s:%s/%s)", cfg.DBHost, cfg.DBPort, cfg.DBName)

	var version int64
	err = pool.QueryRow(ctx, "SELECT COALESCE(MAX(version_id), 0) FROM goose_db_version WHERE is_applied").Scan(&version)
	if err != nil {
		PrintWarning("No migrations applied yet")
		return nil
	}
	PrintInfo("Schema version: %d", version)
	return nil
}
