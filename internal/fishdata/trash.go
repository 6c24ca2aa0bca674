package fishdata

import (
	"fmt"

	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/predicate"
)

// trashWaterTypes restricts location-spawned trash to the water a region has.
var trashWaterTypes = map[string]domain.WaterTypes{
	locationBeach:    domain.PondOrOcean,
	locationTown:     domain.River,
	locationForest:   domain.River | domain.Freshwater,
	locationMountain: domain.Freshwater,
	locationDesert:   domain.Freshwater,
}

var standardTrashIDs = []string{"168", "169", "170", "171", "172", "167"}

var globalTrashLocations = []string{
	"Town", "Forest", "Beach", "Mountain", "Desert", "Woods", "Sewer", "BugLand",
	"WitchSwamp", "UndergroundMine", "Farm", "Custom_FrontierFarm", "FrontierFarm",
	"Custom_FerngillRepublicFrontier", "Custom_Ferngill_Frontier", "Ferngill_Frontier",
	"Custom_FerngillFrontier", RidgesideVillage,
}

// spawnedTrash builds the record for a trash item declared in a location's
// spawn table.
func spawnedTrash(base domain.AvailabilityInfo, locationName string, names []string, condition string) domain.AvailabilityInfo {
	info := base.WithIncludeLocations(names...)
	if water, ok := trashWaterTypes[locationName]; ok {
		info = info.WithWaterTypes(water)
	}
	if condition != "" {
		info = ParseCondition(condition, info)
	}
	return info
}

// fixedTrash returns the trash entries that exist regardless of the raw
// location table: standard litter, jellies and the Ridgeside one-offs.
func fixedTrash() []domain.Entry {
	out := make([]domain.Entry, 0, len(standardTrashIDs)+5)

	for _, id := range standardTrashIDs {
		out = append(out, domain.NewEntry(
			domain.ParseKey(id),
			domain.NewAvailability(DefaultBaseChance).WithIncludeLocations(globalTrashLocations...),
		))
	}

	out = append(out,
		domain.NewEntry(
			domain.ObjectName(RiverJellyID),
			domain.NewAvailability(JellyBaseChance).
				WithWaterTypes(domain.River|domain.PondOrOcean).
				WithIncludeLocations("Town", "Mountain", "Forest", "Desert", "Woods", "Custom_FrontierFarm", "Custom_FerngillRepublicFrontier"),
		),
		domain.NewEntry(
			domain.ObjectName(SeaJellyID),
			domain.NewAvailability(JellyBaseChance).
				WithWaterTypes(domain.PondOrOcean).
				WithIncludeLocations(locationBeach, locationBeachMarket, locationIslandWest, locationIslandSouth, locationIslandSouthE, "Custom_FerngillRepublicFrontier"),
		),
		domain.NewEntry(
			domain.ObjectName(CaveJellyID),
			domain.NewAvailability(JellyBaseChance).WithIncludeLocations(locationMine),
		),
	)

	hero := oneOff(FlagHeroStatue).WithFarmerPosition(&domain.PositionConstraint{
		X: domain.HalfOpen(145, 146),
		Y: domain.HalfOpen(69, 70),
	})
	pearl := oneOff(FlagSapphire).WithPosition(&domain.PositionConstraint{
		X: domain.HalfOpen(60, 61),
		Y: domain.HalfOpen(55, 56),
	})

	out = append(out,
		domain.NewEntry(domain.ObjectName(HeroSculptureID), hero).WithOnCatch(FlagHeroStatue),
		domain.NewEntry(domain.ObjectName(SapphirePearlID), pearl).WithOnCatch(FlagSapphire),
	)
	return out
}

// oneOff is a single-catch Ridgeside record gated on the intro event and on
// the flag the catch sets.
func oneOff(flag string) domain.AvailabilityInfo {
	return domain.NewAvailability(OneOffBaseChance).
		WithIncludeLocations(RidgesideVillage).
		WithPriorityTier(OneOffTier).
		WithWhen(
			domain.Clause{
				Condition: fmt.Sprintf("%s %s %s", predicate.TokenPlayerHasSeenEvent, ActorCurrent, RidgesideEvent),
				Expected:  domain.Expect(predicate.ResultTrue),
			},
			domain.Clause{
				Condition: fmt.Sprintf("%s %s %s", predicate.TokenPlayerHasFlag, ActorCurrent, flag),
				Expected:  domain.Expect(predicate.ResultFalse),
			},
		)
}
