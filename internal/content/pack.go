package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/logger"
	"github.com/osse101/catchpool/internal/validation"
)

// packFile is the on-disk shape of a content pack.
type packFile struct {
	Version       string                       `json:"version"`
	Schema        string                       `json:"schema"`
	Name          string                       `json:"name"`
	AddFish       []packEntry                  `json:"addFish"`
	AddTrash      []packEntry                  `json:"addTrash"`
	AddTreasure   []packEntry                  `json:"addTreasure"`
	SetFishTraits map[string]domain.FishTraits `json:"setFishTraits"`
}

// packEntry keeps availability raw so unset fields take the record defaults
// instead of Go zero values.
type packEntry struct {
	ID           string               `json:"id"`
	Availability json.RawMessage      `json:"availability"`
	OnCatch      *domain.CatchActions `json:"onCatch,omitempty"`
}

func (e packEntry) toEntry() (domain.Entry, error) {
	key := domain.ParseKey(e.ID)
	if !key.IsValid() || key.ID() == "" {
		return domain.Entry{}, fmt.Errorf("%w: empty id", domain.ErrInvalidContentPack)
	}

	info := domain.NewAvailability(0)
	if len(e.Availability) > 0 {
		if err := json.Unmarshal(e.Availability, &info); err != nil {
			return domain.Entry{}, err
		}
	}

	if !info.HasWindow() {
		return domain.Entry{}, fmt.Errorf("%w: "+ErrMsgEmptyWindow, domain.ErrInvalidContentPack, info.StartTime, info.EndTime)
	}

	entry := domain.NewEntry(key, info)
	if e.OnCatch != nil && len(e.OnCatch.SetFlags) > 0 {
		entry = entry.WithOnCatch(e.OnCatch.SetFlags...)
	}
	return entry, nil
}

// PackContributor loads one JSON content pack on every reload.
type PackContributor struct {
	path      string
	validator validation.SchemaValidator
}

// NewPackContributor creates a contributor for the pack at path.
func NewPackContributor(path string, validator validation.SchemaValidator) *PackContributor {
	if validator == nil {
		validator = validation.NewSchemaValidator()
	}
	return &PackContributor{path: path, validator: validator}
}

// Name is the pack's file name without extension.
func (p *PackContributor) Name() string {
	return strings.TrimSuffix(filepath.Base(p.path), PackFileExt)
}

// Load reads, validates and decodes the pack.
func (p *PackContributor) Load(ctx context.Context) (domain.Content, error) {
	if err := ctx.Err(); err != nil {
		return domain.Content{}, err
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return domain.Content{}, fmt.Errorf(ErrMsgReadPack+": %w", p.path, err)
	}

	if err := p.validator.ValidateBytes(data, validation.SchemaContentPack); err != nil {
		return domain.Content{}, fmt.Errorf("%w: %s: %w", domain.ErrInvalidContentPack, p.path, err)
	}

	var file packFile
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.Content{}, fmt.Errorf(ErrMsgDecodePack+": %w", p.path, err)
	}
	if file.Schema != SchemaContentPack {
		return domain.Content{}, fmt.Errorf("%w: "+ErrMsgPackSchema, domain.ErrInvalidContentPack, p.path, file.Schema, SchemaContentPack)
	}

	out := domain.Content{Source: file.Name, Traits: make(map[domain.Key]domain.FishTraits, len(file.SetFishTraits))}
	log := logger.FromContext(ctx)

	for _, section := range []struct {
		pool    domain.Pool
		entries []packEntry
		dst     *[]domain.Entry
	}{
		{domain.PoolFish, file.AddFish, &out.Fish},
		{domain.PoolTrash, file.AddTrash, &out.Trash},
		{domain.PoolTreasure, file.AddTreasure, &out.Treasure},
	} {
		for i, pe := range section.entries {
			entry, err := pe.toEntry()
			if err != nil {
				log.Warn(LogMsgPackEntrySkipped, "pack", p.path, "pool", section.pool, "index", i, "id", pe.ID, "error", err)
				if out.Skipped == nil {
					out.Skipped = make(map[string]int)
				}
				out.Skipped[ReasonBadPackEntry]++
				continue
			}
			*section.dst = append(*section.dst, entry)
		}
	}

	for rawID, traits := range file.SetFishTraits {
		out.Traits[domain.ParseKey(rawID)] = traits
	}

	log.Debug(LogMsgPackLoaded, "pack", file.Name, "version", file.Version, "entries", out.Size(), "traits", len(out.Traits))
	return out, nil
}

// LoadPackDir returns one contributor per JSON file in dir, in file name
// order. A missing directory yields no packs.
func LoadPackDir(dir string, validator validation.SchemaValidator) ([]Contributor, error) {
	if dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgReadPackDir+": %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != PackFileExt {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	out := make([]Contributor, 0, len(names))
	for _, name := range names {
		out = append(out, NewPackContributor(filepath.Join(dir, name), validator))
	}
	return out, nil
}
