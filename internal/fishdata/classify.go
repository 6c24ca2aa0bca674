package fishdata

import (
	"fmt"

	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/predicate"
)

var trashIDs = keySet(
	"152", "153", "157", "167", "168", "169", "170", "171", "172", "812",
	RiverJellyID, SeaJellyID, CaveJellyID,
	HeroSculptureID, SapphirePearlID,
)

var legendaryIDs = keySet("159", "160", "163", "682", "775")

var legendaryFamilyIDs = keySet("898", "899", "900", "901", "902")

func keySet(ids ...string) map[domain.Key]struct{} {
	out := make(map[domain.Key]struct{}, len(ids))
	for _, id := range ids {
		out[domain.ParseKey(id)] = struct{}{}
	}
	return out
}

// Classifier sorts keys into trash, legendary and legendary-family buckets.
type Classifier struct {
	lookup domain.ItemLookup
}

// NewClassifier creates a classifier. A nil lookup disables tag detection.
func NewClassifier(lookup domain.ItemLookup) *Classifier {
	return &Classifier{lookup: lookup}
}

// IsTrash reports whether the key belongs to the trash pool.
func (c *Classifier) IsTrash(key domain.Key) bool {
	_, ok := trashIDs[key]
	return ok
}

// IsLegendary reports whether the key is a legendary fish, either by id or by
// the lookup's legendary tag.
func (c *Classifier) IsLegendary(key domain.Key) bool {
	if _, ok := legendaryIDs[key]; ok {
		return true
	}
	if c.lookup == nil {
		return false
	}
	data, ok := c.lookup.Resolve(key.String())
	return ok && data.HasTag(domain.TagLegendary)
}

// IsLegendaryFamily reports whether the key is a legendary-family variant.
func (c *Classifier) IsLegendaryFamily(key domain.Key) bool {
	_, ok := legendaryFamilyIDs[key]
	return ok
}

// Overlay replaces the when clauses of legendary and legendary-family records.
// Other records are returned unchanged.
func (c *Classifier) Overlay(key domain.Key, info domain.AvailabilityInfo) domain.AvailabilityInfo {
	switch {
	case c.IsLegendaryFamily(key):
		return info.WithWhen(familyRuleClause(predicate.ResultTrue))
	case c.IsLegendary(key):
		return info.WithWhen(
			familyRuleClause(predicate.ResultFalse),
			domain.Clause{
				Condition: fmt.Sprintf("%s %s %s", predicate.TokenPlayerHasCaughtFish, ActorCurrent, key.String()),
				Expected:  domain.Expect(predicate.ResultFalse),
			},
		)
	default:
		return info
	}
}

func familyRuleClause(expected string) domain.Clause {
	return domain.Clause{
		Condition: fmt.Sprintf("%s %s %s", predicate.TokenSpecialOrderRule, ActorCurrent, RuleLegendaryFamily),
		Expected:  domain.Expect(expected),
	}
}
