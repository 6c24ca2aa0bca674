package chance

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/catchpool/internal/domain"
)

// fixedSource returns the same value on every call.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func fishContext() *domain.FishingContext {
	return &domain.FishingContext{
		Time:      900,
		Season:    domain.Spring,
		Weather:   domain.Sunny,
		WaterType: domain.River,
		Locations: []string{"Town"},
	}
}

func entry(id int, chance float64) domain.Entry {
	return domain.NewEntry(domain.ObjectID(id), domain.NewAvailability(chance))
}

func TestWeightOf(t *testing.T) {
	calc := NewCalculator(nil, nil)

	w, ok := calc.WeightOf(fishContext(), entry(137, 0.4))
	require.True(t, ok)
	assert.InDelta(t, 0.4, w, 1e-9)

	closed := domain.NewEntry(domain.ObjectID(137), domain.NewAvailability(0.4).WithTimes(1200, 1300))
	_, ok = calc.WeightOf(fishContext(), closed)
	assert.False(t, ok)
}

func TestWeightOf_TargetedBaitStrict(t *testing.T) {
	calc := NewCalculator(nil, nil)
	fctx := fishContext()
	target := domain.ObjectID(137)
	fctx.TargetedFish = &target

	w, ok := calc.WeightOf(fctx, entry(137, 0.5))
	require.True(t, ok)
	assert.InDelta(t, 0.5*TargetedBaitMultiplier, w, 1e-9)

	w, ok = calc.WeightOf(fctx, entry(138, 0.5))
	require.True(t, ok)
	assert.InDelta(t, 0.5, w, 1e-9)
}

func TestWeightOf_TargetedBaitLoose(t *testing.T) {
	// The lookup maps a named alias and the numeric id to the same item.
	lookup := domain.ItemLookupFunc(func(raw string) (domain.ItemData, bool) {
		switch domain.CanonicalID(raw) {
		case "137", "Smallmouth_Bass":
			return domain.ItemData{ItemID: "137", QualifiedID: "(O)137"}, true
		case "138":
			return domain.ItemData{ItemID: "138", QualifiedID: "(O)138"}, true
		}
		return domain.ItemData{}, false
	})
	calc := NewCalculator(nil, lookup)

	fctx := fishContext()
	alias := domain.ObjectName("Smallmouth_Bass")
	fctx.TargetedFish = &alias

	w, ok := calc.WeightOf(fctx, entry(137, 1))
	require.True(t, ok)
	assert.InDelta(t, TargetedBaitMultiplier, w, 1e-9)

	w, ok = calc.WeightOf(fctx, entry(138, 1))
	require.True(t, ok)
	assert.InDelta(t, 1, w, 1e-9)

	unknown := domain.ObjectName("Nope")
	fctx.TargetedFish = &unknown
	w, _ = calc.WeightOf(fctx, entry(137, 1))
	assert.InDelta(t, 1, w, 1e-9)
}

func TestWeightOf_UnresolvableExcluded(t *testing.T) {
	lookup := domain.ItemLookupFunc(func(raw string) (domain.ItemData, bool) {
		return domain.ItemData{}, domain.CanonicalID(raw) == "137"
	})
	calc := NewCalculator(nil, lookup)

	_, ok := calc.WeightOf(fishContext(), entry(137, 1))
	assert.True(t, ok)
	_, ok = calc.WeightOf(fishContext(), entry(999, 1))
	assert.False(t, ok)

	got, ok := calc.Draw(fishContext(), []domain.Entry{entry(999, 50), entry(137, 1)})
	require.True(t, ok)
	assert.Equal(t, domain.ObjectID(137), got.Key)
}

func TestCandidates_HighestTierWins(t *testing.T) {
	calc := NewCalculator(nil, nil)

	secret := domain.NewEntry(domain.ObjectName("Secret"), domain.NewAvailability(0.0001).WithPriorityTier(20))
	pool := []domain.Entry{entry(1, 1000), secret, entry(2, 500)}

	got := calc.Candidates(fishContext(), pool)
	require.Len(t, got, 1)
	assert.Equal(t, secret.Key, got[0].Entry.Key)

	for _, r := range []float64{0, 0.5, 0.999999} {
		drawn, ok := NewCalculator(nil, nil, WithRandom(fixedSource(r))).Draw(fishContext(), pool)
		require.True(t, ok)
		assert.Equal(t, secret.Key, drawn.Key)
	}
}

func TestCandidates_UnavailableHigherTierIgnored(t *testing.T) {
	calc := NewCalculator(nil, nil)

	secret := domain.NewEntry(domain.ObjectName("Secret"),
		domain.NewAvailability(1).WithPriorityTier(20).WithIncludeLocations("Elsewhere"))
	pool := []domain.Entry{entry(1, 1), secret}

	got := calc.Candidates(fishContext(), pool)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ObjectID(1), got[0].Entry.Key)
}

func TestDraw_ZeroWeightTierYieldsNothing(t *testing.T) {
	calc := NewCalculator(nil, nil, WithRandom(fixedSource(0)))

	zero := domain.NewEntry(domain.ObjectID(1), domain.NewAvailability(0).WithPriorityTier(5))
	pool := []domain.Entry{zero, entry(2, 10)}

	_, ok := calc.Draw(fishContext(), pool)
	assert.False(t, ok, "a matching zero-weight higher tier still pre-empts lower tiers")
	assert.Empty(t, calc.Odds(fishContext(), pool))

	_, ok = calc.Draw(fishContext(), nil)
	assert.False(t, ok)
}

func TestDraw_Cumulative(t *testing.T) {
	pool := []domain.Entry{entry(1, 1), entry(2, 0), entry(3, 3)}

	tests := []struct {
		r    float64
		want int
	}{
		{0, 1},
		{0.2499, 1},
		{0.25, 3},
		{0.9999, 3},
		{1, 3},
	}
	for _, tt := range tests {
		got, ok := NewCalculator(nil, nil, WithRandom(fixedSource(tt.r))).Draw(fishContext(), pool)
		require.True(t, ok)
		assert.Equal(t, domain.ObjectID(tt.want), got.Key, "r=%v", tt.r)
	}
}

func TestOddsAndChanceOf(t *testing.T) {
	calc := NewCalculator(nil, nil)
	bonus := domain.NewEntry(domain.ObjectID(1), domain.NewAvailability(1))
	pool := []domain.Entry{entry(1, 1), entry(2, 2), bonus}

	odds := calc.Odds(fishContext(), pool)
	require.Len(t, odds, 3)
	assert.Equal(t, domain.ObjectID(2), odds[0].Entry.Key)
	assert.InDelta(t, 0.5, odds[0].Probability, 1e-9)

	sum := 0.0
	for _, o := range odds {
		sum += o.Probability
	}
	assert.InDelta(t, 1, sum, 1e-9)

	assert.InDelta(t, 0.5, calc.ChanceOf(fishContext(), pool, domain.ObjectID(1)), 1e-9, "entries sharing a key add up")
	assert.Zero(t, calc.ChanceOf(fishContext(), pool, domain.ObjectID(3)))
}

func TestDraw_DefaultSourceDistribution(t *testing.T) {
	calc := NewCalculator(nil, nil)
	pool := []domain.Entry{entry(1, 1), entry(2, 3)}

	counts := map[domain.Key]int{}
	const n = 20000
	for range n {
		got, ok := calc.Draw(fishContext(), pool)
		require.True(t, ok)
		counts[got.Key]++
	}
	assert.InDelta(t, 0.25, float64(counts[domain.ObjectID(1)])/n, 0.03)
}

func TestNonFiniteWeightsCountAsZero(t *testing.T) {
	nan := domain.NewEntry(domain.ObjectID(101), domain.AvailabilityInfo{
		BaseChance: math.NaN(),
		StartTime:  domain.DefaultStartTime,
		EndTime:    domain.DefaultEndTime,
	})
	inf := domain.NewEntry(domain.ObjectID(102), domain.AvailabilityInfo{
		BaseChance: math.Inf(1),
		StartTime:  domain.DefaultStartTime,
		EndTime:    domain.DefaultEndTime,
	})
	pool := []domain.Entry{entry(100, 1000), nan, inf}
	calc := NewCalculator(nil, nil)

	for range 200 {
		got, ok := calc.Draw(fishContext(), pool)
		require.True(t, ok)
		assert.Equal(t, domain.ObjectID(100), got.Key)
	}

	odds := calc.Odds(fishContext(), pool)
	require.Len(t, odds, 3)
	for _, o := range odds {
		assert.False(t, math.IsNaN(o.Probability))
	}
	assert.InDelta(t, 1, calc.ChanceOf(fishContext(), pool, domain.ObjectID(100)), 1e-9)

	_, err := json.Marshal(odds)
	assert.NoError(t, err)
}
