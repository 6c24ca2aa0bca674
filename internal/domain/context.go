package domain

import "slices"

// DefaultBobberDepth is the water depth assumed when the actor is not casting.
const DefaultBobberDepth = 4

// Frenzy describes the location's current special-catch splash.
type Frenzy struct {
	FishID     string `json:"fishId"`
	SplashTile Tile   `json:"splashTile"`
}

// FishingContext is a read-only snapshot of the actor and world at the moment
// of a catch. Hosts build one per evaluation.
type FishingContext struct {
	Time         int        `json:"time" validate:"gte=0,lte=2800"`
	Season       Seasons    `json:"season"`
	Weather      Weathers   `json:"weather"`
	WaterType    WaterTypes `json:"waterType"`
	FishingLevel int        `json:"fishingLevel" validate:"gte=0"`
	BobberDepth  int        `json:"bobberDepth" validate:"gte=0"`
	PlayerTile   Tile       `json:"playerTile"`
	BobberTile   Tile       `json:"bobberTile"`
	Locations    []string   `json:"locations"`

	Bait         *Key `json:"bait,omitempty"`
	Tackle       *Key `json:"tackle,omitempty"`
	TargetedFish *Key `json:"targetedFish,omitempty"`

	SpecialOrderRules []string `json:"specialOrderRules,omitempty"`
	CaughtFish        []string `json:"caughtFish,omitempty"`
	Flags             []string `json:"flags,omitempty"`
	SeenEvents        []string `json:"seenEvents,omitempty"`
	Frenzy            *Frenzy  `json:"frenzy,omitempty"`
}

// HasLocation reports whether any of names is one of the context's location
// aliases.
func (c *FishingContext) HasLocation(names []string) bool {
	for _, name := range names {
		if slices.Contains(c.Locations, name) {
			return true
		}
	}
	return false
}

// SpecialOrderRuleActive reports whether the named team rule is active.
func (c *FishingContext) SpecialOrderRuleActive(rule string) bool {
	return slices.Contains(c.SpecialOrderRules, rule)
}

// HasCaught reports whether the actor has caught the item at least once.
// Both raw and qualified ids are accepted.
func (c *FishingContext) HasCaught(id string) bool {
	want := ParseKey(id)
	return slices.ContainsFunc(c.CaughtFish, func(raw string) bool {
		return ParseKey(raw) == want
	})
}

// HasFlag reports whether the actor has the mail/event flag.
func (c *FishingContext) HasFlag(flag string) bool {
	return slices.Contains(c.Flags, flag)
}

// HasSeenEvent reports whether the actor has seen the event.
func (c *FishingContext) HasSeenEvent(id string) bool {
	return slices.Contains(c.SeenEvents, id)
}
