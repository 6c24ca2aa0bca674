package fishdata

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/osse101/catchpool/internal/domain"
)

var (
	errTooFewFields = errors.New(ReasonTooFewFields)
	errBadNumber    = errors.New(ReasonBadNumber)
)

// Descriptor is one parsed slash-delimited fish row.
type Descriptor struct {
	Traits  domain.FishTraits
	Records []domain.AvailabilityInfo
}

// ParseDescriptor parses a raw descriptor row. The row yields one record per
// valid time window; malformed or empty windows are skipped and a row without
// any valid window gets the default one.
func ParseDescriptor(raw string) (Descriptor, error) {
	fields := strings.Split(raw, descriptorSeparator)
	if len(fields) < minDescriptorFields {
		return Descriptor{}, fmt.Errorf("%w: %w: "+ErrMsgTooFewFields, domain.ErrInvalidRawData, errTooFewFields, len(fields), minDescriptorFields)
	}

	ints := make(map[int]int, 4)
	for _, idx := range []int{fieldDifficulty, fieldMinSize, fieldMaxSize, fieldMinLevel} {
		n, err := strconv.Atoi(strings.TrimSpace(fields[idx]))
		if err != nil {
			return Descriptor{}, fmt.Errorf("%w: %w: "+ErrMsgBadNumber, domain.ErrInvalidRawData, errBadNumber, idx, fields[idx])
		}
		ints[idx] = n
	}

	chance, err := parseWeight(fields[fieldBaseChance])
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: %w: "+ErrMsgBadNumber, domain.ErrInvalidRawData, errBadNumber, fieldBaseChance, fields[fieldBaseChance])
	}

	base := domain.NewAvailability(chance).
		WithSeasons(parseSeasonList(fields[fieldSeasons])).
		WithWeathers(parseDescriptorWeathers(fields[fieldWeather])).
		WithMinFishingLevel(ints[fieldMinLevel])

	windows := parseWindows(fields[fieldTimes])
	if len(windows) == 0 {
		windows = [][2]int{{domain.DefaultStartTime, domain.DefaultEndTime}}
	}

	records := make([]domain.AvailabilityInfo, 0, len(windows))
	for _, w := range windows {
		records = append(records, base.WithTimes(w[0], w[1]))
	}

	return Descriptor{
		Traits: domain.FishTraits{
			Name:       strings.TrimSpace(fields[fieldName]),
			Difficulty: ints[fieldDifficulty],
			MotionType: domain.ParseMotionType(fields[fieldMotion]),
			MinSize:    ints[fieldMinSize],
			MaxSize:    ints[fieldMaxSize],
		},
		Records: records,
	}, nil
}

// parseTrashDescriptor reads the looser base record used for trash rows. The
// weight and level fall back to the neighbouring fields and then to defaults,
// and only the first time window is used.
func parseTrashDescriptor(raw string) (domain.AvailabilityInfo, bool) {
	fields := strings.Split(raw, descriptorSeparator)
	if len(fields) < minDescriptorFields {
		return domain.AvailabilityInfo{}, false
	}

	chance := DefaultBaseChance
	if v, err := parseWeight(fields[fieldBaseChance]); err == nil {
		chance = v
	} else if v, err := parseWeight(fields[fieldAltChance]); err == nil {
		chance = v
	}

	level := 0
	if v, err := strconv.Atoi(strings.TrimSpace(fields[fieldMinLevel])); err == nil {
		level = v
	} else if v, err := strconv.Atoi(strings.TrimSpace(fields[fieldAltLevel])); err == nil {
		level = v
	}

	info := domain.NewAvailability(chance).
		WithSeasons(parseSeasonList(fields[fieldSeasons])).
		WithWeathers(parseDescriptorWeathers(fields[fieldWeather])).
		WithMinFishingLevel(level)

	if windows := parseWindows(fields[fieldTimes]); len(windows) > 0 {
		info = info.WithTimes(windows[0][0], windows[0][1])
	}
	return info, true
}

// parseWeight reads a finite float. NaN and infinities are rejected.
func parseWeight(field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errBadNumber
	}
	return v, nil
}

// skipReason maps a descriptor error to its report bucket.
func skipReason(err error) string {
	switch {
	case errors.Is(err, errTooFewFields):
		return ReasonTooFewFields
	default:
		return ReasonBadNumber
	}
}

func parseWindows(field string) [][2]int {
	parts := strings.Fields(field)
	var out [][2]int
	for i := 0; i+1 < len(parts); i += 2 {
		start, err := strconv.Atoi(parts[i])
		if err != nil {
			continue
		}
		end, err := strconv.Atoi(parts[i+1])
		if err != nil || start >= end {
			continue
		}
		out = append(out, [2]int{start, end})
	}
	return out
}

func parseSeasonList(field string) domain.Seasons {
	var out domain.Seasons
	for _, token := range strings.Fields(field) {
		if s, ok := domain.ParseSeason(token); ok {
			out |= s
		}
	}
	return out.Normalize()
}

func parseDescriptorWeathers(field string) domain.Weathers {
	var out domain.Weathers
	for _, token := range strings.Fields(field) {
		switch strings.ToLower(token) {
		case "sunny":
			out |= domain.Sunny
		case "rainy":
			out |= domain.Rainy
		case "both":
			out |= domain.AllWeathers
		}
	}
	return out.Normalize()
}
