// Package chance weights matching candidates and draws among them.
package chance

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"github.com/osse101/catchpool/internal/conditions"
	"github.com/osse101/catchpool/internal/domain"
)

// TargetedBaitMultiplier boosts the fish a targeted bait was made from.
const TargetedBaitMultiplier = 1.66

// RandomSource yields floats in [0, 1).
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// Weighted is a candidate with its effective weight.
type Weighted struct {
	Entry  domain.Entry
	Weight float64
}

// Odds is a candidate with its normalized probability within the drawn tier.
type Odds struct {
	Entry       domain.Entry `json:"entry"`
	Weight      float64      `json:"weight"`
	Probability float64      `json:"probability"`
}

// Calculator computes weights and performs draws. It holds no mutable state
// and is safe for concurrent use when its collaborators are.
type Calculator struct {
	matcher *conditions.Matcher
	lookup  domain.ItemLookup
	rng     RandomSource
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithRandom replaces the random source, mainly for tests.
func WithRandom(rng RandomSource) Option {
	return func(c *Calculator) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// NewCalculator creates a calculator. A nil lookup resolves every id.
func NewCalculator(matcher *conditions.Matcher, lookup domain.ItemLookup, opts ...Option) *Calculator {
	if matcher == nil {
		matcher = conditions.NewMatcher(nil)
	}
	if lookup == nil {
		lookup = domain.PermissiveLookup
	}
	c := &Calculator{matcher: matcher, lookup: lookup, rng: globalSource{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WeightOf returns the entry's weight under fctx. ok is false when the entry
// is not available or its item cannot be resolved.
func (c *Calculator) WeightOf(fctx *domain.FishingContext, entry domain.Entry) (weight float64, ok bool) {
	if _, found := c.lookup.Resolve(entry.Key.String()); !found {
		return 0, false
	}
	if !c.matcher.Matches(entry.Availability, fctx) {
		return 0, false
	}

	weight = domain.Weight(entry.Availability.BaseChance)
	if c.isTargeted(fctx, entry.Key) {
		weight *= TargetedBaitMultiplier
	}
	return weight, true
}

// isTargeted compares the context's targeted fish with key, first strictly
// and then by the canonical ids the lookup resolves them to.
func (c *Calculator) isTargeted(fctx *domain.FishingContext, key domain.Key) bool {
	if fctx == nil || fctx.TargetedFish == nil || !fctx.TargetedFish.IsValid() {
		return false
	}
	target := *fctx.TargetedFish
	if target == key {
		return true
	}

	targetData, ok := c.lookup.Resolve(target.String())
	if !ok || targetData.ItemID == "" {
		return false
	}
	entryData, ok := c.lookup.Resolve(key.String())
	if !ok {
		return false
	}
	return targetData.ItemID == entryData.ItemID
}

// Candidates returns the available entries of the highest priority tier that
// has any, with their weights. Lower tiers are ignored entirely.
func (c *Calculator) Candidates(fctx *domain.FishingContext, pool []domain.Entry) []Weighted {
	var (
		out     []Weighted
		topTier float64
	)
	for _, entry := range pool {
		weight, ok := c.WeightOf(fctx, entry)
		if !ok {
			continue
		}
		tier := entry.Availability.PriorityTier
		switch {
		case len(out) == 0 || tier > topTier:
			topTier = tier
			out = append(out[:0], Weighted{Entry: entry, Weight: weight})
		case tier == topTier:
			out = append(out, Weighted{Entry: entry, Weight: weight})
		}
	}
	return out
}

// Draw picks one entry from the eligible tier with probability proportional
// to its weight. ok is false when nothing is available or the tier's total
// weight is zero.
func (c *Calculator) Draw(fctx *domain.FishingContext, pool []domain.Entry) (domain.Entry, bool) {
	candidates := c.Candidates(fctx, pool)

	total := 0.0
	for _, w := range candidates {
		total += w.Weight
	}
	if total <= 0 {
		return domain.Entry{}, false
	}

	r := c.rng.Float64() * total
	cumulative := 0.0
	var last *Weighted
	for i := range candidates {
		if candidates[i].Weight <= 0 {
			continue
		}
		last = &candidates[i]
		cumulative += candidates[i].Weight
		if r < cumulative {
			return candidates[i].Entry, true
		}
	}

	// Rounding can leave r just past the final boundary.
	return last.Entry, true
}

// Odds returns every eligible candidate with its probability of being drawn,
// most likely first. A zero-weight tier yields no odds.
func (c *Calculator) Odds(fctx *domain.FishingContext, pool []domain.Entry) []Odds {
	candidates := c.Candidates(fctx, pool)

	total := 0.0
	for _, w := range candidates {
		total += w.Weight
	}
	if total <= 0 {
		return nil
	}

	out := make([]Odds, 0, len(candidates))
	for _, w := range candidates {
		out = append(out, Odds{Entry: w.Entry, Weight: w.Weight, Probability: w.Weight / total})
	}
	slices.SortStableFunc(out, func(a, b Odds) int {
		return cmp.Compare(b.Probability, a.Probability)
	})
	return out
}

// ChanceOf returns the probability that a draw yields key, summed over every
// entry that shares it.
func (c *Calculator) ChanceOf(fctx *domain.FishingContext, pool []domain.Entry, key domain.Key) float64 {
	p := 0.0
	for _, o := range c.Odds(fctx, pool) {
		if o.Entry.Key == key {
			p += o.Probability
		}
	}
	return p
}
