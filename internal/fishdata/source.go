package fishdata

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/validation"
)

// Spawn is one catchable declared in a location's spawn table.
type Spawn struct {
	ItemID    string `json:"itemId"`
	Condition string `json:"condition,omitempty"`
}

// RawDataSource supplies the two raw tables the default content is built from.
type RawDataSource interface {
	FishDescriptors(ctx context.Context) (map[string]string, error)
	LocationSpawns(ctx context.Context) (map[string][]Spawn, error)
}

// FileSource reads raw tables from JSON files and checks them against the
// embedded schemas before decoding.
type FileSource struct {
	descriptorsPath string
	spawnsPath      string
	validator       validation.SchemaValidator
}

// NewFileSource creates a file-backed raw data source.
func NewFileSource(descriptorsPath, spawnsPath string) *FileSource {
	return &FileSource{
		descriptorsPath: descriptorsPath,
		spawnsPath:      spawnsPath,
		validator:       validation.NewSchemaValidator(),
	}
}

// FishDescriptors reads the item id to descriptor table.
func (s *FileSource) FishDescriptors(ctx context.Context) (map[string]string, error) {
	var out map[string]string
	if err := s.readJSON(ctx, s.descriptorsPath, validation.SchemaFishDescriptors, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LocationSpawns reads the location to spawn list table.
func (s *FileSource) LocationSpawns(ctx context.Context) (map[string][]Spawn, error) {
	var out map[string][]Spawn
	if err := s.readJSON(ctx, s.spawnsPath, validation.SchemaLocationSpawns, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *FileSource) readJSON(ctx context.Context, path, schema string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(ErrMsgReadRawFile+": %w", path, err)
	}

	if err := s.validator.ValidateBytes(data, schema); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrInvalidRawData, path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf(ErrMsgDecodeRawFile+": %w", path, err)
	}
	return nil
}
