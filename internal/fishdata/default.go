package fishdata

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/location"
	"github.com/osse101/catchpool/internal/logger"
)

// ParseReport summarizes one build of the default content.
type ParseReport struct {
	Descriptors int            `json:"descriptors"`
	Spawns      int            `json:"spawns"`
	Skipped     map[string]int `json:"skipped"`
}

func (r *ParseReport) skip(reason string) {
	if r.Skipped == nil {
		r.Skipped = make(map[string]int)
	}
	r.Skipped[reason]++
}

// TotalSkipped is the number of rows dropped for any reason.
func (r ParseReport) TotalSkipped() int {
	total := 0
	for _, n := range r.Skipped {
		total += n
	}
	return total
}

// DefaultSource turns the raw descriptor and spawn tables into fish and trash
// entries. It is the first contributor of every reload.
type DefaultSource struct {
	raw        RawDataSource
	lookup     domain.ItemLookup
	classifier *Classifier
}

// NewDefaultSource creates the built-in contributor. A nil lookup resolves
// every id to itself.
func NewDefaultSource(raw RawDataSource, lookup domain.ItemLookup) *DefaultSource {
	if lookup == nil {
		lookup = domain.PermissiveLookup
	}
	return &DefaultSource{
		raw:        raw,
		lookup:     lookup,
		classifier: NewClassifier(lookup),
	}
}

// Name identifies the contributor.
func (s *DefaultSource) Name() string {
	return SourceName
}

// Load reads both raw tables and builds the default content.
func (s *DefaultSource) Load(ctx context.Context) (domain.Content, error) {
	log := logger.FromContext(ctx)

	descriptors, err := s.raw.FishDescriptors(ctx)
	if err != nil {
		return domain.Content{}, fmt.Errorf("%s: %w", ErrMsgLoadDescriptors, err)
	}
	spawns, err := s.raw.LocationSpawns(ctx)
	if err != nil {
		return domain.Content{}, fmt.Errorf("%s: %w", ErrMsgLoadSpawns, err)
	}

	content, report := s.build(descriptors, spawns, log)
	content.Skipped = report.Skipped

	log.Info(LogMsgDefaultLoaded,
		"descriptors", report.Descriptors,
		"spawns", report.Spawns,
		"fish", len(content.Fish),
		"trash", len(content.Trash),
		"skipped", report.TotalSkipped())

	return content, nil
}

// Build converts raw tables without touching the data source.
func (s *DefaultSource) Build(descriptors map[string]string, spawns map[string][]Spawn) (domain.Content, ParseReport) {
	return s.build(descriptors, spawns, slog.Default())
}

func (s *DefaultSource) build(descriptors map[string]string, spawns map[string][]Spawn, log *slog.Logger) (domain.Content, ParseReport) {
	var report ParseReport
	content := domain.Content{
		Source: SourceName,
		Traits: make(map[domain.Key]domain.FishTraits),
	}

	records := make(map[domain.Key][]domain.AvailabilityInfo)
	trashBase := make(map[domain.Key]domain.AvailabilityInfo)
	var order []domain.Key

	for _, rawID := range slices.Sorted(maps.Keys(descriptors)) {
		report.Descriptors++
		key := s.keyOf(rawID)

		if s.classifier.IsTrash(key) {
			if base, ok := parseTrashDescriptor(descriptors[rawID]); ok {
				trashBase[key] = base
			}
			continue
		}

		desc, err := ParseDescriptor(descriptors[rawID])
		if err != nil {
			report.skip(skipReason(err))
			log.Debug(LogMsgRowSkipped, "item_id", rawID, "error", err)
			continue
		}

		desc.Traits.IsLegendary = s.classifier.IsLegendary(key)
		content.Traits[key] = desc.Traits
		if _, seen := records[key]; !seen {
			order = append(order, key)
		}
		records[key] = desc.Records
	}

	placed := make(map[domain.Key]struct{})

	for _, locationName := range slices.Sorted(maps.Keys(spawns)) {
		names := location.SpawnNames(locationName)

		for _, spawn := range spawns[locationName] {
			report.Spawns++
			if spawn.ItemID == "" {
				report.skip(ReasonEmptySpawnID)
				log.Debug(LogMsgSpawnSkipped, "location", locationName, "reason", ReasonEmptySpawnID)
				continue
			}

			key := s.keyOf(spawn.ItemID)

			if s.classifier.IsTrash(key) {
				base, ok := trashBase[key]
				if !ok {
					base = domain.NewAvailability(DefaultBaseChance)
				}
				info := spawnedTrash(base, locationName, names, spawn.Condition)
				if !info.HasWindow() {
					report.skip(ReasonEmptyWindow)
					log.Debug(LogMsgSpawnSkipped, "location", locationName, "item_id", spawn.ItemID, "reason", ReasonEmptyWindow)
					continue
				}
				content.Trash = append(content.Trash, domain.NewEntry(key, info))
				continue
			}
			if IsOverridden(key) {
				continue
			}

			placed[key] = struct{}{}
			for _, base := range baseRecords(records, key) {
				info := base.WithIncludeLocations(names...)
				if spawn.Condition != "" {
					info = ParseCondition(spawn.Condition, info)
				}
				if !info.HasWindow() {
					report.skip(ReasonEmptyWindow)
					log.Debug(LogMsgSpawnSkipped, "location", locationName, "item_id", spawn.ItemID, "reason", ReasonEmptyWindow)
					continue
				}
				content.Fish = append(content.Fish, domain.NewEntry(key, s.classifier.Overlay(key, info)))
			}
		}
	}

	for _, o := range manualOverrides {
		key := s.keyOf(o.id)
		placed[key] = struct{}{}
		log.Debug(LogMsgOverrideApplied, "item_id", o.id, "name", o.name, "locations", len(o.locations))
		for _, base := range baseRecords(records, key) {
			info := base.WithIncludeLocations(o.locations...)
			content.Fish = append(content.Fish, domain.NewEntry(key, s.classifier.Overlay(key, info)))
		}
	}

	// Described fish that no table places can only be caught through a
	// content pack that re-adds them.
	for _, key := range order {
		if _, ok := placed[key]; ok {
			continue
		}
		for _, base := range records[key] {
			info := base.WithIncludeLocations(domain.NoLocation)
			content.Fish = append(content.Fish, domain.NewEntry(key, s.classifier.Overlay(key, info)))
		}
	}

	content.Trash = append(content.Trash, fixedTrash()...)
	return content, report
}

// keyOf canonicalizes a raw id through the item lookup.
func (s *DefaultSource) keyOf(rawID string) domain.Key {
	if data, ok := s.lookup.Resolve(rawID); ok && data.QualifiedID != "" {
		return domain.ParseKey(data.QualifiedID)
	}
	return domain.ParseKey(rawID)
}

func baseRecords(records map[domain.Key][]domain.AvailabilityInfo, key domain.Key) []domain.AvailabilityInfo {
	if base, ok := records[key]; ok && len(base) > 0 {
		return base
	}
	return []domain.AvailabilityInfo{domain.NewAvailability(DefaultBaseChance)}
}
