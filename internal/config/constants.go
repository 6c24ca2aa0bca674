package config

import "time"

// Default file locations, relative to the working directory.
const (
	ConfigPathFishData       = "configs/data/fish.json"
	ConfigPathLocationData   = "configs/data/locations.json"
	ConfigPathItems          = "configs/items/items.json"
	ConfigPathContentPacks   = "configs/packs"
	ConfigPathLocationAlias  = "configs/location_aliases.yaml"
	DefaultLogDir            = "logs"
	DefaultServiceName       = "catchpool"
	DefaultDBName            = "catchpool"
	DefaultPort              = 8080
	DefaultDBMaxConns        = 20
	DefaultItemCacheSize     = 1024
	DefaultItemCacheTTL      = 10 * time.Minute
	DefaultReloadInterval    = 5 * time.Minute
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)

// Data source selectors
const (
	DataSourceFile     = "file"
	DataSourcePostgres = "postgres"
)
