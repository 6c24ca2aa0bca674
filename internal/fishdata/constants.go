package fishdata

import "github.com/osse101/catchpool/internal/location"

// SourceName identifies the built-in contributor in logs and snapshots.
const SourceName = "default"

// Descriptor field positions
const (
	fieldName       = 0
	fieldDifficulty = 1
	fieldMotion     = 2
	fieldMinSize    = 3
	fieldMaxSize    = 4
	fieldTimes      = 5
	fieldSeasons    = 6
	fieldWeather    = 7
	fieldAltChance  = 9
	fieldBaseChance = 10
	fieldAltLevel   = 11
	fieldMinLevel   = 12

	minDescriptorFields = 13
	descriptorSeparator = "/"
	clauseSeparator     = ","
)

// Record defaults for spawns without a usable descriptor
const (
	DefaultBaseChance = 0.1
	JellyBaseChance   = 0.05
	OneOffBaseChance  = 1.0
	OneOffTier        = 20
)

// MaxMineFloor is the last floor synthesized by an open-ended MINE_LEVEL clause.
const MaxMineFloor = location.MaxMineFloor

// Skip reasons reported per dropped row
const (
	ReasonTooFewFields = "too_few_fields"
	ReasonBadNumber    = "bad_number"
	ReasonEmptySpawnID = "empty_spawn_id"
	ReasonEmptyWindow  = "empty_window"
)

// Structured clause tokens folded into record fields
const (
	TokenSeason             = "SEASON"
	TokenLocationSeason     = "LOCATION_SEASON"
	TokenWeather            = "WEATHER"
	TokenTime               = "TIME"
	TokenFishingLevel       = "FISHING_LEVEL"
	TokenPlayerFishingLevel = "PLAYER_FISHING_LEVEL"
	TokenMineLevel          = "MINE_LEVEL"
)

// noopTokens are clause tokens the engine does not model; they are dropped.
var noopTokens = map[string]struct{}{
	"RANDOM":                      {},
	"SYNCED_RANDOM":               {},
	"SYNCED_CHOICE":               {},
	"SYNCED_SUMMER_RAIN_RANDOM":   {},
	"IS_FESTIVAL_DAY":             {},
	"IS_PASSIVE_FESTIVAL_OPEN":    {},
	"IS_PASSIVE_FESTIVAL_TODAY":   {},
	"PLAYER_SPECIAL_ORDER_ACTIVE": {},
}

// Overlay clauses
const (
	RuleLegendaryFamily = "LEGENDARY_FAMILY"
	ActorCurrent        = "Current"
)

// Ridgeside one-off catches
const (
	RidgesideVillage     = "Custom_Ridgeside_RidgesideVillage"
	RidgesideEvent       = "75160259"
	HeroSculptureID      = "Rafseazz.RSVCP_Village_Hero_Sculpture"
	SapphirePearlID      = "Rafseazz.RSVCP_Sapphire_Pearl"
	FlagHeroStatue       = "RSV.HeroStatue"
	FlagSapphire         = "RSV.Sapphire"
	RiverJellyID         = "RiverJelly"
	SeaJellyID           = "SeaJelly"
	CaveJellyID          = "CaveJelly"
	locationSubmarine    = "Submarine"
	locationDesert       = "Desert"
	locationDesertFest   = "DesertFestival"
	locationBeach        = "Beach"
	locationTown         = "Town"
	locationForest       = "Forest"
	locationMountain     = "Mountain"
	locationMine         = "UndergroundMine"
	locationBeachMarket  = "BeachNightMarket"
	locationIslandWest   = "IslandWest"
	locationIslandSouth  = "IslandSouth"
	locationIslandSouthE = "IslandSouthEast"
)

// Error messages
const (
	ErrMsgTooFewFields    = "descriptor has %d fields, need %d"
	ErrMsgBadNumber       = "field %d: %q is not a number"
	ErrMsgReadRawFile     = "failed to read raw data file %s"
	ErrMsgDecodeRawFile   = "failed to decode raw data file %s"
	ErrMsgLoadDescriptors = "failed to load fish descriptors"
	ErrMsgLoadSpawns      = "failed to load location spawns"
)

// Log messages
const (
	LogMsgRowSkipped      = "Raw data row skipped"
	LogMsgSpawnSkipped    = "Location spawn skipped"
	LogMsgDefaultLoaded   = "Default fishing content built"
	LogMsgOverrideApplied = "Location override applied"
)
