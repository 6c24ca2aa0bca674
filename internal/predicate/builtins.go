package predicate

import (
	"strconv"

	"github.com/osse101/catchpool/internal/domain"
)

// RegisterBuiltins adds the built-in predicates. Calling it more than once, or
// after a host has claimed one of the tokens, is harmless.
func RegisterBuiltins(r *Registry) {
	r.Register(TokenFrenzyFish, frenzyFish)
	r.Register(TokenSpecialOrderRule, specialOrderRule)
	r.Register(TokenBobberInRect, bobberInRect)
	r.Register(TokenWaterDepth, waterDepth)
	r.Register(TokenPlayerTileX, playerTileX)
	r.Register(TokenPlayerTileY, playerTileY)
	r.Register(TokenPlayerHasCaughtFish, playerHasCaughtFish)
	r.Register(TokenPlayerHasFlag, playerHasFlag)
	r.Register(TokenPlayerHasSeenEvent, playerHasSeenEvent)
}

// CATCHING_FRENZY_FISH <fish id>
func frenzyFish(args []string, fctx *domain.FishingContext) bool {
	if len(args) < 2 || fctx.Frenzy == nil {
		return false
	}
	if fctx.Frenzy.SplashTile.IsZero() {
		return false
	}
	if domain.ParseKey(fctx.Frenzy.FishID) != domain.ParseKey(args[1]) {
		return false
	}
	return fctx.BobberTile == fctx.Frenzy.SplashTile
}

// PLAYER_HAS_SPECIAL_ORDER_RULE <who> <rule>
func specialOrderRule(args []string, fctx *domain.FishingContext) bool {
	if len(args) < 3 {
		return false
	}
	return fctx.SpecialOrderRuleActive(args[2])
}

// BOBBER_IN_RECT <x> <y> <width> <height>
func bobberInRect(args []string, fctx *domain.FishingContext) bool {
	nums, ok := parseInts(args, 1, 4)
	if !ok {
		return false
	}
	x, y, w, h := nums[0], nums[1], nums[2], nums[3]
	b := fctx.BobberTile
	return b.X >= x && b.X < x+w && b.Y >= y && b.Y < y+h
}

// WATER_DEPTH <min>
func waterDepth(args []string, fctx *domain.FishingContext) bool {
	nums, ok := parseInts(args, 1, 1)
	if !ok {
		return false
	}
	return fctx.BobberDepth >= nums[0]
}

// PLAYER_TILE_X <who> <min> <max>
func playerTileX(args []string, fctx *domain.FishingContext) bool {
	nums, ok := parseInts(args, 2, 2)
	if !ok {
		return false
	}
	return fctx.PlayerTile.X >= nums[0] && fctx.PlayerTile.X < nums[1]
}

// PLAYER_TILE_Y <who> <min> <max>
func playerTileY(args []string, fctx *domain.FishingContext) bool {
	nums, ok := parseInts(args, 2, 2)
	if !ok {
		return false
	}
	return fctx.PlayerTile.Y >= nums[0] && fctx.PlayerTile.Y < nums[1]
}

// PLAYER_HAS_CAUGHT_FISH <who> <fish id>
func playerHasCaughtFish(args []string, fctx *domain.FishingContext) bool {
	if len(args) < 3 {
		return false
	}
	return fctx.HasCaught(args[2])
}

// PLAYER_HAS_FLAG <who> <flag>
func playerHasFlag(args []string, fctx *domain.FishingContext) bool {
	if len(args) < 3 {
		return false
	}
	return fctx.HasFlag(args[2])
}

// PLAYER_HAS_SEEN_EVENT <who> <event id>
func playerHasSeenEvent(args []string, fctx *domain.FishingContext) bool {
	if len(args) < 3 {
		return false
	}
	return fctx.HasSeenEvent(args[2])
}

// parseInts reads n integers starting at args[from].
func parseInts(args []string, from, n int) ([]int, bool) {
	if len(args) < from+n {
		return nil, false
	}
	out := make([]int, n)
	for i := range n {
		v, err := strconv.Atoi(args[from+i])
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
