package predicate

// Built-in clause tokens
const (
	TokenFrenzyFish          = "CATCHING_FRENZY_FISH"
	TokenSpecialOrderRule    = "PLAYER_HAS_SPECIAL_ORDER_RULE"
	TokenBobberInRect        = "BOBBER_IN_RECT"
	TokenWaterDepth          = "WATER_DEPTH"
	TokenPlayerTileX         = "PLAYER_TILE_X"
	TokenPlayerTileY         = "PLAYER_TILE_Y"
	TokenPlayerHasCaughtFish = "PLAYER_HAS_CAUGHT_FISH"
	TokenPlayerHasFlag       = "PLAYER_HAS_FLAG"
	TokenPlayerHasSeenEvent  = "PLAYER_HAS_SEEN_EVENT"
)

// NegationPrefix inverts the result of a clause.
const NegationPrefix = "!"

// Literal results used for expected-value comparison
const (
	ResultTrue  = "true"
	ResultFalse = "false"
)

// maxSuggestionDistance bounds how far a registered token may be from an
// unknown one and still be suggested.
const maxSuggestionDistance = 4

// Log messages
const (
	LogMsgUnknownPredicate = "Unregistered clause token, treating as satisfied"
	LogMsgDuplicateToken   = "Clause token already registered, keeping first"
)
