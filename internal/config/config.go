package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/catchpool/internal/database"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"gte=1,lte=65535"`
	LogLevel    string `validate:"required"`
	LogFormat   string `validate:"oneof=text json"`
	Environment string `validate:"required"`
	Version     string
	ServiceName string
	LogDir      string
	APIKey      string `validate:"required"` // guards /api/v1

	TrustedProxies []string `validate:"dive,ip"`

	DataSource          string `validate:"oneof=file postgres"`
	FishDataPath        string `validate:"required_if=DataSource file"`
	LocationDataPath    string `validate:"required_if=DataSource file"`
	ItemsPath           string
	ContentPacksDir     string
	LocationAliasesPath string

	ReloadInterval time.Duration `validate:"gte=0"`
	ItemCacheSize  int           `validate:"gte=1"`
	ItemCacheTTL   time.Duration `validate:"gte=0"`

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int `validate:"gte=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		APIKey:      getEnv("API_KEY", ""),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		DataSource:          getEnv("DATA_SOURCE", DataSourceFile),
		FishDataPath:        getEnv("FISH_DATA_PATH", ConfigPathFishData),
		LocationDataPath:    getEnv("LOCATION_DATA_PATH", ConfigPathLocationData),
		ItemsPath:           getEnv("ITEMS_PATH", ConfigPathItems),
		ContentPacksDir:     getEnv("CONTENT_PACKS_DIR", ConfigPathContentPacks),
		LocationAliasesPath: getEnv("LOCATION_ALIASES_PATH", ConfigPathLocationAlias),

		ReloadInterval: getEnvAsDuration("RELOAD_INTERVAL", DefaultReloadInterval),
		ItemCacheSize:  getEnvAsInt("ITEM_CACHE_SIZE", DefaultItemCacheSize),
		ItemCacheTTL:   getEnvAsDuration("ITEM_CACHE_TTL", DefaultItemCacheTTL),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints declared in struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// UsesPostgres reports whether raw fish data comes from the database.
func (c *Config) UsesPostgres() bool {
	return c.DataSource == DataSourcePostgres
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back on absence or bad input
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsList splits a comma-separated variable, dropping empty items
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsDuration parses a Go duration string such as "5m" or "30s"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// DBPoolOptions returns the pool settings for database.NewPool.
func (c *Config) DBPoolOptions() database.PoolOptions {
	return database.PoolOptions{
		ConnString:      c.GetDBConnString(),
		MaxConns:        c.DBMaxConns,
		MaxConnIdleTime: c.DBMaxConnIdleTime,
		MaxConnLifetime: c.DBMaxConnLifetime,
	}
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
