// Package conditions decides whether an availability record applies to a
// fishing context.
package conditions

import (
	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/location"
	"github.com/osse101/catchpool/internal/predicate"
)

// Matcher evaluates availability records. It is safe for concurrent use as
// long as the registry is.
type Matcher struct {
	registry *predicate.Registry
}

// NewMatcher creates a matcher backed by registry. A nil registry gets the
// built-in predicates.
func NewMatcher(registry *predicate.Registry) *Matcher {
	if registry == nil {
		registry = predicate.NewDefaultRegistry()
	}
	return &Matcher{registry: registry}
}

// Registry returns the predicate registry consulted for "when" clauses.
func (m *Matcher) Registry() *predicate.Registry {
	return m.registry
}

// Matches reports whether info applies to fctx. Checks run cheapest first and
// stop at the first failure.
func (m *Matcher) Matches(info domain.AvailabilityInfo, fctx *domain.FishingContext) bool {
	if fctx == nil {
		return false
	}

	// Windows that cross midnight are not supported; start > end never matches.
	if fctx.Time < info.StartTime || fctx.Time >= info.EndTime {
		return false
	}
	// An unset context field is treated as "any".
	if !info.Seasons.Normalize().Intersects(fctx.Season.Normalize()) {
		return false
	}
	if !info.Weathers.Normalize().Intersects(fctx.Weather.Normalize()) {
		return false
	}
	if !info.WaterTypes.Normalize().Intersects(fctx.WaterType.Normalize()) {
		return false
	}
	if fctx.FishingLevel < info.MinFishingLevel {
		return false
	}
	if !location.Matches(info.IncludeLocations, info.ExcludeLocations, fctx.Locations) {
		return false
	}
	if !info.Position.Matches(fctx.BobberTile) {
		return false
	}
	if !info.FarmerPosition.Matches(fctx.PlayerTile) {
		return false
	}
	for _, clause := range info.When {
		if !m.clauseHolds(clause, fctx) {
			return false
		}
	}
	return true
}

func (m *Matcher) clauseHolds(clause domain.Clause, fctx *domain.FishingContext) bool {
	result, known := m.registry.Evaluate(clause.Condition, fctx)
	if !known {
		return true
	}
	if clause.Expected == nil {
		return result
	}
	return *clause.Expected == encode(result)
}

func encode(b bool) string {
	if b {
		return predicate.ResultTrue
	}
	return predicate.ResultFalse
}
