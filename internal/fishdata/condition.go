package fishdata

import (
	"strconv"
	"strings"

	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/location"
	"github.com/osse101/catchpool/internal/predicate"
)

// ParseCondition folds a comma-separated spawn condition into info. Structured
// clauses refine the record fields, no-op clauses are dropped, and everything
// else is kept verbatim as a when clause for the predicate registry.
func ParseCondition(condition string, info domain.AvailabilityInfo) domain.AvailabilityInfo {
	out := info
	for _, raw := range strings.Split(condition, clauseSeparator) {
		clause := strings.TrimSpace(raw)
		if clause == "" {
			continue
		}
		if folded, ok := foldClause(clause, out); ok {
			out = folded
			continue
		}
		out = out.WithClause(domain.Clause{Condition: clause})
	}
	return out
}

// foldClause applies a structured or no-op clause. It reports false when the
// clause has to be kept opaque.
func foldClause(clause string, info domain.AvailabilityInfo) (domain.AvailabilityInfo, bool) {
	negated := strings.HasPrefix(clause, predicate.NegationPrefix)
	fields := strings.Fields(strings.TrimPrefix(clause, predicate.NegationPrefix))
	if len(fields) == 0 {
		return info, false
	}

	token, args := strings.ToUpper(fields[0]), fields[1:]
	if _, ok := noopTokens[token]; ok {
		return info, true
	}

	switch token {
	case TokenSeason:
		return foldSeasons(info, args, negated)
	case TokenLocationSeason:
		if len(args) < 2 {
			return info, false
		}
		return foldSeasons(info, args[1:], negated)
	case TokenWeather:
		return foldWeathers(info, args, negated)
	case TokenTime:
		if negated || len(args) < 2 {
			return info, false
		}
		start, err1 := strconv.Atoi(args[0])
		end, err2 := strconv.Atoi(args[1])
		if err1 != nil || err2 != nil {
			return info, false
		}
		return info.WithTimes(max(info.StartTime, start), min(info.EndTime, end)), true
	case TokenFishingLevel:
		return foldLevel(info, args, negated)
	case TokenPlayerFishingLevel:
		if len(args) < 2 {
			return info, false
		}
		return foldLevel(info, args[1:], negated)
	case TokenMineLevel:
		return foldMineLevel(info, args, negated)
	default:
		return info, false
	}
}

func foldSeasons(info domain.AvailabilityInfo, args []string, negated bool) (domain.AvailabilityInfo, bool) {
	var set domain.Seasons
	for _, arg := range args {
		if s, ok := domain.ParseSeason(arg); ok {
			set |= s
		}
	}
	if set == domain.NoSeasons {
		return info, false
	}
	if negated {
		set = domain.AllSeasons &^ set
		if set == domain.NoSeasons {
			return info, false
		}
	}
	return info.WithSeasons(set), true
}

// foldWeathers accepts an optional leading location argument.
func foldWeathers(info domain.AvailabilityInfo, args []string, negated bool) (domain.AvailabilityInfo, bool) {
	var set domain.Weathers
	for _, arg := range args {
		set |= parseSpawnWeather(arg)
	}
	if set == domain.NoWeathers {
		return info, false
	}
	if negated {
		set = domain.AllWeathers &^ set
		if set == domain.NoWeathers {
			return info, false
		}
	}
	return info.WithWeathers(set), true
}

func parseSpawnWeather(token string) domain.Weathers {
	switch strings.ToLower(token) {
	case "rain", "storm", "greenrain", "rainy":
		return domain.Rainy
	case "sun", "sunny", "wind", "snow":
		return domain.Sunny
	default:
		return domain.NoWeathers
	}
}

func foldLevel(info domain.AvailabilityInfo, args []string, negated bool) (domain.AvailabilityInfo, bool) {
	if negated || len(args) == 0 {
		return info, false
	}
	level, err := strconv.Atoi(args[0])
	if err != nil {
		return info, false
	}
	return info.WithMinFishingLevel(max(info.MinFishingLevel, level)), true
}

// foldMineLevel keeps the clause opaque when the range misses every floor.
func foldMineLevel(info domain.AvailabilityInfo, args []string, negated bool) (domain.AvailabilityInfo, bool) {
	if negated || len(args) == 0 {
		return info, false
	}
	from, err := strconv.Atoi(args[0])
	if err != nil {
		return info, false
	}
	to := MaxMineFloor
	if len(args) > 1 {
		if to, err = strconv.Atoi(args[1]); err != nil {
			return info, false
		}
		if to < from {
			from, to = to, from
		}
	}
	from, to = max(from, 0), min(to, MaxMineFloor)
	if from > to {
		return info, false
	}
	return info.WithIncludeLocations(location.MineFloors(from, to)...), true
}
