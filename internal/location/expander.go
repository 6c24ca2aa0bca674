package location

import (
	"fmt"

	"github.com/osse101/catchpool/internal/domain"
)

// AliasProvider supplies at most one extra name for a place, typically for
// places declared at runtime by third-party content.
type AliasProvider interface {
	ExtraAliasFor(place Place, tile domain.Tile) (string, bool)
}

// Expander turns places into the set of names availability records are
// matched against.
type Expander struct {
	provider AliasProvider
}

// NewExpander creates an expander. provider may be nil.
func NewExpander(provider AliasProvider) *Expander {
	return &Expander{provider: provider}
}

// Expand returns every name the place is known by, in first-seen order
// without duplicates.
func (e *Expander) Expand(place Place, tile domain.Tile) []string {
	names := Names(place)
	if e != nil && e.provider != nil && place != nil {
		if alias, ok := e.provider.ExtraAliasFor(place, tile); ok && alias != "" {
			names = append(names, alias)
		}
	}
	return unique(names)
}

// Names returns the built-in names of a place.
func Names(place Place) []string {
	switch p := place.(type) {
	case DepthPlace:
		return []string{p.RawName, p.Family, fmt.Sprintf("%s/%d", p.Family, p.Depth)}
	case FarmPlace:
		if p.Layout < 0 || p.Layout >= len(FarmLayouts) {
			return []string{p.RawName}
		}
		return []string{p.RawName, p.RawName + "/" + FarmLayouts[p.Layout]}
	case IslandPlace:
		return []string{p.RawName, FamilyIsland}
	case OtherPlace:
		return []string{p.RawName}
	default:
		return nil
	}
}

// SpawnNames returns the include-location set for spawns declared under a data
// location name. Outdoor regions pull in their farm-layout equivalents.
func SpawnNames(locationName string) []string {
	names := []string{locationName}
	names = append(names, regionRemap[locationName]...)
	return unique(names)
}

// MineFloors renders a contiguous floor range as family/floor names. The range
// is clamped to floors 0..MaxMineFloor; a range outside them yields nil.
func MineFloors(from, to int) []string {
	if to < from {
		from, to = to, from
	}
	from, to = max(from, 0), min(to, MaxMineFloor)
	if from > to {
		return nil
	}
	out := make([]string, 0, to-from+1)
	for floor := from; floor <= to; floor++ {
		out = append(out, fmt.Sprintf("%s/%d", FamilyMine, floor))
	}
	return out
}

// Matches reports whether a record's location lists accept the given names.
// The include list passes when empty or intersecting, unless it carries the
// never-match sentinel; the exclude list must not intersect.
func Matches(include, exclude, names []string) bool {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}

	for _, n := range exclude {
		if _, ok := set[n]; ok {
			return false
		}
	}

	if len(include) == 0 {
		return true
	}
	for _, n := range include {
		if n == domain.NoLocation {
			return false
		}
	}
	for _, n := range include {
		if _, ok := set[n]; ok {
			return true
		}
	}
	return false
}

func unique(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
