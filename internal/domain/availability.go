package domain

import (
	"math"
	"slices"
)

// Default availability window, in minute-coded clock time.
const (
	DefaultStartTime = 600
	DefaultEndTime   = 2600
)

// NoLocation is the include-location sentinel for records that must never match
// by location.
const NoLocation = "__NONE__"

// Tile is an integer tile coordinate.
type Tile struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// IsZero reports whether the tile is the origin.
func (t Tile) IsZero() bool {
	return t.X == 0 && t.Y == 0
}

// CoordinateConstraint bounds a single axis. Every bound is optional.
type CoordinateConstraint struct {
	GreaterThan   *float64 `json:"greaterThan,omitempty"`
	GreaterThanEq *float64 `json:"greaterThanEq,omitempty"`
	LessThan      *float64 `json:"lessThan,omitempty"`
	LessThanEq    *float64 `json:"lessThanEq,omitempty"`
}

// Matches reports whether v satisfies every bound that is set.
func (c *CoordinateConstraint) Matches(v float64) bool {
	if c == nil {
		return true
	}
	if c.GreaterThan != nil && !(v > *c.GreaterThan) {
		return false
	}
	if c.GreaterThanEq != nil && !(v >= *c.GreaterThanEq) {
		return false
	}
	if c.LessThan != nil && !(v < *c.LessThan) {
		return false
	}
	if c.LessThanEq != nil && !(v <= *c.LessThanEq) {
		return false
	}
	return true
}

// HalfOpen returns the constraint min <= v < max.
func HalfOpen(min, max float64) *CoordinateConstraint {
	return &CoordinateConstraint{GreaterThanEq: &min, LessThan: &max}
}

// PositionConstraint is an axis-aligned rectangle test on a tile.
type PositionConstraint struct {
	X *CoordinateConstraint `json:"x,omitempty"`
	Y *CoordinateConstraint `json:"y,omitempty"`
}

// Matches reports whether the tile lies inside the rectangle. A nil constraint
// matches every tile.
func (p *PositionConstraint) Matches(t Tile) bool {
	if p == nil {
		return true
	}
	return p.X.Matches(float64(t.X)) && p.Y.Matches(float64(t.Y))
}

// Clause is one "when" condition. A nil Expected means the condition only has
// to hold; otherwise the evaluated value must equal Expected.
type Clause struct {
	Condition string  `json:"condition"`
	Expected  *string `json:"expected,omitempty"`
}

// Expect returns a pointer to value for use as Clause.Expected.
func Expect(value string) *string {
	return &value
}

// AvailabilityInfo declares when an item can be caught and with what relative
// weight. Values are never mutated once published; use the With* methods to
// derive modified copies.
type AvailabilityInfo struct {
	BaseChance       float64             `json:"baseChance"`
	StartTime        int                 `json:"startTime"`
	EndTime          int                 `json:"endTime"`
	Seasons          Seasons             `json:"seasons"`
	Weathers         Weathers            `json:"weathers"`
	WaterTypes       WaterTypes          `json:"waterTypes"`
	MinFishingLevel  int                 `json:"minFishingLevel"`
	IncludeLocations []string            `json:"includeLocations,omitempty"`
	ExcludeLocations []string            `json:"excludeLocations,omitempty"`
	Position         *PositionConstraint `json:"position,omitempty"`
	FarmerPosition   *PositionConstraint `json:"farmerPosition,omitempty"`
	When             []Clause            `json:"when,omitempty"`
	PriorityTier     float64             `json:"priorityTier"`
}

// NewAvailability returns a record with the given weight that is available at
// every time, season, weather, water type and location.
func NewAvailability(baseChance float64) AvailabilityInfo {
	return AvailabilityInfo{
		BaseChance: Weight(baseChance),
		StartTime:  DefaultStartTime,
		EndTime:    DefaultEndTime,
		Seasons:    AllSeasons,
		Weathers:   AllWeathers,
		WaterTypes: AllWaterTypes,
	}
}

// Normalized returns a copy with empty bitsets widened to "all" and negative
// or non-finite numbers clamped to zero.
func (a AvailabilityInfo) Normalized() AvailabilityInfo {
	out := a.clone()
	out.Seasons = out.Seasons.Normalize()
	out.Weathers = out.Weathers.Normalize()
	out.WaterTypes = out.WaterTypes.Normalize()
	out.BaseChance = Weight(out.BaseChance)
	if out.MinFishingLevel < 0 {
		out.MinFishingLevel = 0
	}
	return out
}

// HasWindow reports whether the time window is non-empty.
func (a AvailabilityInfo) HasWindow() bool {
	return a.StartTime < a.EndTime
}

// Weight clamps a raw weight to a finite value >= 0. NaN and infinities count
// as zero.
func Weight(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func (a AvailabilityInfo) clone() AvailabilityInfo {
	out := a
	out.IncludeLocations = slices.Clone(a.IncludeLocations)
	out.ExcludeLocations = slices.Clone(a.ExcludeLocations)
	out.When = slices.Clone(a.When)
	return out
}

// WithBaseChance returns a copy with a different weight.
func (a AvailabilityInfo) WithBaseChance(chance float64) AvailabilityInfo {
	out := a.clone()
	out.BaseChance = chance
	return out.Normalized()
}

// WithTimes returns a copy with a different time window.
func (a AvailabilityInfo) WithTimes(start, end int) AvailabilityInfo {
	out := a.clone()
	out.StartTime = start
	out.EndTime = end
	return out
}

// WithSeasons returns a copy with different seasons.
func (a AvailabilityInfo) WithSeasons(s Seasons) AvailabilityInfo {
	out := a.clone()
	out.Seasons = s.Normalize()
	return out
}

// WithWeathers returns a copy with different weathers.
func (a AvailabilityInfo) WithWeathers(w Weathers) AvailabilityInfo {
	out := a.clone()
	out.Weathers = w.Normalize()
	return out
}

// WithWaterTypes returns a copy with different water types.
func (a AvailabilityInfo) WithWaterTypes(t WaterTypes) AvailabilityInfo {
	out := a.clone()
	out.WaterTypes = t.Normalize()
	return out
}

// WithMinFishingLevel returns a copy with a different level requirement.
func (a AvailabilityInfo) WithMinFishingLevel(level int) AvailabilityInfo {
	out := a.clone()
	out.MinFishingLevel = max(level, 0)
	return out
}

// WithIncludeLocations returns a copy restricted to the given locations.
func (a AvailabilityInfo) WithIncludeLocations(locations ...string) AvailabilityInfo {
	out := a.clone()
	out.IncludeLocations = dedupe(locations)
	return out
}

// WithExcludeLocations returns a copy excluded from the given locations.
func (a AvailabilityInfo) WithExcludeLocations(locations ...string) AvailabilityInfo {
	out := a.clone()
	out.ExcludeLocations = dedupe(locations)
	return out
}

// WithPosition returns a copy with a bobber rectangle constraint.
func (a AvailabilityInfo) WithPosition(p *PositionConstraint) AvailabilityInfo {
	out := a.clone()
	out.Position = p
	return out
}

// WithFarmerPosition returns a copy with an actor rectangle constraint.
func (a AvailabilityInfo) WithFarmerPosition(p *PositionConstraint) AvailabilityInfo {
	out := a.clone()
	out.FarmerPosition = p
	return out
}

// WithWhen returns a copy whose clauses are replaced by the given ones.
func (a AvailabilityInfo) WithWhen(clauses ...Clause) AvailabilityInfo {
	out := a.clone()
	out.When = slices.Clone(clauses)
	return out
}

// WithClause returns a copy with one more clause. An existing clause with the
// same condition is replaced in place.
func (a AvailabilityInfo) WithClause(c Clause) AvailabilityInfo {
	out := a.clone()
	for i := range out.When {
		if out.When[i].Condition == c.Condition {
			out.When[i] = c
			return out
		}
	}
	out.When = append(out.When, c)
	return out
}

// WithPriorityTier returns a copy in a different tier.
func (a AvailabilityInfo) WithPriorityTier(tier float64) AvailabilityInfo {
	out := a.clone()
	out.PriorityTier = tier
	return out
}

// HasClause reports whether a clause with the given condition is present.
func (a AvailabilityInfo) HasClause(condition string) bool {
	return slices.ContainsFunc(a.When, func(c Clause) bool {
		return c.Condition == condition
	})
}

// NeverMatchesByLocation reports whether the record carries the location sentinel.
func (a AvailabilityInfo) NeverMatchesByLocation() bool {
	return slices.Contains(a.IncludeLocations, NoLocation)
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
