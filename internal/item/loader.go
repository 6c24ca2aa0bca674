package item

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/logger"
	"github.com/osse101/catchpool/internal/validation"
)

// Sentinel errors for item loader
var (
	ErrDuplicateID = errors.New("duplicate item id")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON configuration for items
type Config struct {
	Version     string        `json:"version"`
	Description string        `json:"description,omitempty"`
	Items       []domain.Item `json:"items"`
}

// Repository persists the item catalog.
type Repository interface {
	GetAllItems(ctx context.Context) ([]domain.Item, error)
	UpsertItem(ctx context.Context, item domain.Item) error
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, meta *domain.SyncMetadata) error
}

// Loader handles loading and validating item configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo Repository, configPath string) (*SyncResult, error)
}

// SyncResult contains the result of syncing items to the database
type SyncResult struct {
	ItemsUpserted int
	ItemsSkipped  int
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses an items JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, validation.SchemaItems); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the item configuration for errors
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	seen := make(map[domain.Key]bool, len(config.Items))
	for i, it := range config.Items {
		if it.ID == "" {
			return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, i)
		}
		key := domain.ParseKey(it.ID)
		if key.ID() == "" {
			return fmt.Errorf(ErrFmtItemBadID, ErrInvalidConfig, it.ID)
		}
		if seen[key] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateID, it.ID)
		}
		seen[key] = true
	}

	return nil
}

// SyncToDatabase syncs the item configuration to the database idempotently
func (l *itemLoader) SyncToDatabase(ctx context.Context, config *Config, repo Repository, configPath string) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	// Check if file has changed since last sync
	hasChanged, err := hasFileChanged(ctx, repo, configPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckFileChangeFailed, err)
	}

	if !hasChanged {
		log.Info(LogMsgConfigUnchanged, "path", configPath)
		return &SyncResult{}, nil
	}

	existing, err := repo.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetExistingItemsFailed, err)
	}
	byID := make(map[string]domain.Item, len(existing))
	for _, it := range existing {
		byID[domain.CanonicalID(it.ID)] = it
	}

	result := &SyncResult{}
	for _, it := range config.Items {
		if current, ok := byID[domain.CanonicalID(it.ID)]; ok && sameItem(current, it) {
			result.ItemsSkipped++
			continue
		}
		if err := repo.UpsertItem(ctx, it); err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertItemFailed, it.ID, err)
		}
		result.ItemsUpserted++
		log.Debug(LogMsgUpsertedItem, "item_id", it.ID)
	}

	// Update sync metadata
	if err := updateSyncMetadata(ctx, repo, configPath); err != nil {
		log.Warn(LogMsgUpdateMetadataFailed, "error", err)
	}

	log.Info(LogMsgSyncCompleted,
		"upserted", result.ItemsUpserted,
		"skipped", result.ItemsSkipped)

	return result, nil
}

func sameItem(a, b domain.Item) bool {
	return a.Name == b.Name && slices.Equal(a.Aliases, b.Aliases) && slices.Equal(a.Tags, b.Tags)
}

func fileFingerprint(configPath string) (string, time.Time, error) {
	fileInfo, err := os.Stat(configPath)
	if err != nil {
		return "", time.Time{}, fmt.Errorf(ErrMsgStatConfigFileFailed, err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return "", time.Time{}, fmt.Errorf(ErrMsgReadForHashFailed, err)
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), fileInfo.ModTime(), nil
}

// hasFileChanged checks if the config file has changed since last sync
func hasFileChanged(ctx context.Context, repo Repository, configPath string) (bool, error) {
	fileHash, modTime, err := fileFingerprint(configPath)
	if err != nil {
		return false, err
	}

	// A lookup error means the file was never synced.
	syncMeta, err := repo.GetSyncMetadata(ctx, ConfigFileName)
	if err != nil {
		return true, nil
	}
	return !syncMeta.Matches(fileHash, modTime), nil
}

// updateSyncMetadata updates the sync metadata after a successful sync
func updateSyncMetadata(ctx context.Context, repo Repository, configPath string) error {
	fileHash, modTime, err := fileFingerprint(configPath)
	if err != nil {
		return err
	}

	return repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   ConfigFileName,
		LastSyncTime: time.Now(),
		FileHash:     fileHash,
		FileModTime:  modTime,
	})
}
