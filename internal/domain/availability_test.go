package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAvailability_Defaults(t *testing.T) {
	info := NewAvailability(-3)

	assert.Zero(t, info.BaseChance)
	assert.Equal(t, DefaultStartTime, info.StartTime)
	assert.Equal(t, DefaultEndTime, info.EndTime)
	assert.Equal(t, AllSeasons, info.Seasons)
	assert.Equal(t, AllWeathers, info.Weathers)
	assert.Equal(t, AllWaterTypes, info.WaterTypes)
	assert.Empty(t, info.IncludeLocations)
	assert.Empty(t, info.When)
}

func TestNormalized(t *testing.T) {
	info := AvailabilityInfo{BaseChance: -1, MinFishingLevel: -2}.Normalized()

	assert.Zero(t, info.BaseChance)
	assert.Zero(t, info.MinFishingLevel)
	assert.NotEqual(t, NoSeasons, info.Seasons)
	assert.NotEqual(t, NoWeathers, info.Weathers)
	assert.NotEqual(t, NoWaterTypes, info.WaterTypes)
}

func TestWeight_NonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -0.5} {
		assert.Zero(t, Weight(v), "%v", v)
		assert.Zero(t, NewAvailability(v).BaseChance, "%v", v)
		assert.Zero(t, AvailabilityInfo{BaseChance: v}.Normalized().BaseChance, "%v", v)
	}
	assert.Equal(t, 0.25, Weight(0.25))
}

func TestBuilders_DoNotMutateReceiver(t *testing.T) {
	base := NewAvailability(0.3).
		WithIncludeLocations("Beach").
		WithWhen(Clause{Condition: "A"})

	derived := base.
		WithIncludeLocations("Forest", "Forest", "Town").
		WithClause(Clause{Condition: "B", Expected: Expect("true")}).
		WithSeasons(NoSeasons).
		WithTimes(600, 1200)

	assert.Equal(t, []string{"Beach"}, base.IncludeLocations)
	assert.Equal(t, []Clause{{Condition: "A"}}, base.When)
	assert.Equal(t, DefaultEndTime, base.EndTime)

	assert.Equal(t, []string{"Forest", "Town"}, derived.IncludeLocations)
	assert.Len(t, derived.When, 2)
	assert.Equal(t, AllSeasons, derived.Seasons)
	assert.Equal(t, 1200, derived.EndTime)
}

func TestWithClause_ReplacesSameCondition(t *testing.T) {
	info := NewAvailability(1).
		WithClause(Clause{Condition: "X", Expected: Expect("true")}).
		WithClause(Clause{Condition: "X", Expected: Expect("false")})

	assert.Len(t, info.When, 1)
	assert.Equal(t, "false", *info.When[0].Expected)
	assert.True(t, info.HasClause("X"))
	assert.False(t, info.HasClause("Y"))
}

func TestPositionConstraint(t *testing.T) {
	rect := &PositionConstraint{X: HalfOpen(10, 20), Y: HalfOpen(5, 6)}

	assert.True(t, rect.Matches(Tile{X: 10, Y: 5}))
	assert.True(t, rect.Matches(Tile{X: 19, Y: 5}))
	assert.False(t, rect.Matches(Tile{X: 20, Y: 5}), "max bound is exclusive")
	assert.False(t, rect.Matches(Tile{X: 15, Y: 6}))

	var none *PositionConstraint
	assert.True(t, none.Matches(Tile{X: -100, Y: 100}))

	gt := 3.0
	onlyX := &PositionConstraint{X: &CoordinateConstraint{GreaterThan: &gt}}
	assert.False(t, onlyX.Matches(Tile{X: 3}))
	assert.True(t, onlyX.Matches(Tile{X: 4, Y: -9}))
}

func TestNeverMatchesByLocation(t *testing.T) {
	assert.True(t, NewAvailability(1).WithIncludeLocations(NoLocation).NeverMatchesByLocation())
	assert.False(t, NewAvailability(1).NeverMatchesByLocation())
}
