package location

// Place kinds accepted by Spec
const (
	KindDepth  = "depth"
	KindFarm   = "farm"
	KindIsland = "island"
	KindOther  = "other"
)

// Family names emitted during expansion
const (
	FamilyMine   = "UndergroundMine"
	FamilyIsland = "Island"
)

// MaxMineFloor is the deepest mine floor a record can name.
const MaxMineFloor = 120

// FarmLayouts is indexed by the farm layout selector.
var FarmLayouts = []string{
	"Standard",
	"Riverland",
	"Forest",
	"Hills",
	"Wilderness",
	"FourCorners",
	"Beach",
	"Meadows",
}

// regionRemap expands outdoor regions into the farm layouts that share their
// fishing waters.
var regionRemap = map[string][]string{
	"Beach":    {"BeachNightMarket", "Farm/Beach"},
	"Forest":   {"Farm/Forest", "Farm/FourCorners"},
	"Town":     {"Farm/Riverland"},
	"Mountain": {"Farm/Hills", "Farm/Wilderness"},
}

// Alias file schema
const (
	SchemaLocationAliases = "location-aliases"
)

// Error messages
const (
	ErrMsgPlaceNameRequired   = "place name is required"
	ErrMsgMissingVersionField = "%s missing version field"
	ErrMsgInvalidSchema       = "invalid schema in %s: expected '%s', got '%s'"
	ErrMsgFailedToParseConfig = "failed to parse config %s"
)

// Log messages
const (
	LogMsgAliasesLoaded = "Location aliases loaded"
)
