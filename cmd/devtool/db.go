package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/catchpool/internal/config"
	"github.com/osse101/catchpool/internal/database"
)

// loadConfig reads the same environment as the server. API_KEY is not needed
// by devtool, so a placeholder keeps config.Load from refusing to start.
func loadConfig() (*config.Config, error) {
	if getEnv("API_KEY", "") == "" {
		if err := setEnv("API_KEY", "devtool"); err != nil {
			return nil, err
		}
	}
	return config.Load()
}

// connect opens a pool, retrying until the database accepts connections.
func connect(ctx context.Context, cfg *config.Config, attempts int) (*pgxpool.Pool, error) {
	var lastErr error
	for i := 0; i < attempts; i++ {
		pool, err := database.NewPool(ctx, cfg.DBPoolOptions())
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
			err = pool.Ping(pingCtx)
			cancel()
			if err == nil {
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err

		if i < attempts-1 {
			fmt.Printf("Database not ready (%d/%d): %v\n", i+1, attempts, err)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(dbConnectInterval):
			}
		}
	}
	return nil, fmt.Errorf("database failed to become ready after %d attempts: %w", attempts, lastErr)
}
