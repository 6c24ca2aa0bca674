package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Seasons is a set of seasons.
type Seasons uint8

const (
	Spring Seasons = 1 << iota
	Summer
	Fall
	Winter

	NoSeasons  Seasons = 0
	AllSeasons         = Spring | Summer | Fall | Winter
)

// Weathers is a set of weather kinds.
type Weathers uint8

const (
	Sunny Weathers = 1 << iota
	Rainy

	NoWeathers  Weathers = 0
	AllWeathers          = Sunny | Rainy
)

// WaterTypes is a set of water kinds.
type WaterTypes uint8

const (
	River WaterTypes = 1 << iota
	PondOrOcean
	Freshwater

	NoWaterTypes  WaterTypes = 0
	AllWaterTypes            = River | PondOrOcean | Freshwater
)

var seasonNames = []struct {
	flag Seasons
	name string
}{
	{Spring, "spring"},
	{Summer, "summer"},
	{Fall, "fall"},
	{Winter, "winter"},
}

var weatherNames = []struct {
	flag Weathers
	name string
}{
	{Sunny, "sunny"},
	{Rainy, "rainy"},
}

var waterNames = []struct {
	flag WaterTypes
	name string
}{
	{River, "river"},
	{PondOrOcean, "pond_or_ocean"},
	{Freshwater, "freshwater"},
}

// Normalize maps the empty set to every season.
func (s Seasons) Normalize() Seasons {
	s &= AllSeasons
	if s == NoSeasons {
		return AllSeasons
	}
	return s
}

// Intersects reports whether s and other share at least one season.
func (s Seasons) Intersects(other Seasons) bool {
	return s&other != 0
}

// Contains reports whether every season in other is also in s.
func (s Seasons) Contains(other Seasons) bool {
	return other != NoSeasons && s&other == other
}

// Names returns the lowercase names of the seasons in the set.
func (s Seasons) Names() []string {
	names := make([]string, 0, len(seasonNames))
	for _, n := range seasonNames {
		if s&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	return names
}

func (s Seasons) String() string {
	return strings.Join(s.Names(), "|")
}

// ParseSeason maps a single season token. "autumn" is accepted for fall.
func ParseSeason(token string) (Seasons, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "spring":
		return Spring, true
	case "summer":
		return Summer, true
	case "fall", "autumn":
		return Fall, true
	case "winter":
		return Winter, true
	default:
		return NoSeasons, false
	}
}

// Normalize maps the empty set to every weather.
func (w Weathers) Normalize() Weathers {
	w &= AllWeathers
	if w == NoWeathers {
		return AllWeathers
	}
	return w
}

// Intersects reports whether w and other share at least one weather.
func (w Weathers) Intersects(other Weathers) bool {
	return w&other != 0
}

// Contains reports whether every weather in other is also in w.
func (w Weathers) Contains(other Weathers) bool {
	return other != NoWeathers && w&other == other
}

// Names returns the lowercase names of the weathers in the set.
func (w Weathers) Names() []string {
	names := make([]string, 0, len(weatherNames))
	for _, n := range weatherNames {
		if w&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	return names
}

func (w Weathers) String() string {
	return strings.Join(w.Names(), "|")
}

// Normalize maps the empty set to every water type.
func (t WaterTypes) Normalize() WaterTypes {
	t &= AllWaterTypes
	if t == NoWaterTypes {
		return AllWaterTypes
	}
	return t
}

// Intersects reports whether t and other share at least one water type.
func (t WaterTypes) Intersects(other WaterTypes) bool {
	return t&other != 0
}

// Contains reports whether every water type in other is also in t.
func (t WaterTypes) Contains(other WaterTypes) bool {
	return other != NoWaterTypes && t&other == other
}

// Names returns the names of the water types in the set.
func (t WaterTypes) Names() []string {
	names := make([]string, 0, len(waterNames))
	for _, n := range waterNames {
		if t&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	return names
}

func (t WaterTypes) String() string {
	return strings.Join(t.Names(), "|")
}

// JSON encoding uses name lists so content packs and API payloads stay readable.

func (s Seasons) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

func (s *Seasons) UnmarshalJSON(data []byte) error {
	names, err := decodeNames(data)
	if err != nil {
		return err
	}
	var out Seasons
	for _, name := range names {
		if strings.EqualFold(name, "all") {
			out |= AllSeasons
			continue
		}
		flag, ok := ParseSeason(name)
		if !ok {
			return fmt.Errorf("%w: season %q", ErrInvalidFlag, name)
		}
		out |= flag
	}
	*s = out
	return nil
}

func (w Weathers) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.Names())
}

func (w *Weathers) UnmarshalJSON(data []byte) error {
	names, err := decodeNames(data)
	if err != nil {
		return err
	}
	var out Weathers
	for _, name := range names {
		switch strings.ToLower(name) {
		case "sunny":
			out |= Sunny
		case "rainy":
			out |= Rainy
		case "both", "all":
			out |= AllWeathers
		default:
			return fmt.Errorf("%w: weather %q", ErrInvalidFlag, name)
		}
	}
	*w = out
	return nil
}

func (t WaterTypes) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Names())
}

func (t *WaterTypes) UnmarshalJSON(data []byte) error {
	names, err := decodeNames(data)
	if err != nil {
		return err
	}
	var out WaterTypes
	for _, name := range names {
		switch strings.ToLower(name) {
		case "river":
			out |= River
		case "pond_or_ocean", "pondorocean", "ocean", "pond":
			out |= PondOrOcean
		case "freshwater", "lake":
			out |= Freshwater
		case "all":
			out |= AllWaterTypes
		default:
			return fmt.Errorf("%w: water type %q", ErrInvalidFlag, name)
		}
	}
	*t = out
	return nil
}

// decodeNames accepts either a list of names or a single name.
func decodeNames(data []byte) ([]string, error) {
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		return names, nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFlag, string(data))
	}
	if single == "" {
		return nil, nil
	}
	return []string{single}, nil
}
