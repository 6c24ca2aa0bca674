package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/catchpool/internal/domain"
)

func TestBuiltins(t *testing.T) {
	r := NewDefaultRegistry()

	frenzy := &domain.FishingContext{
		BobberTile: domain.Tile{X: 12, Y: 30},
		Frenzy:     &domain.Frenzy{FishID: "(O)131", SplashTile: domain.Tile{X: 12, Y: 30}},
	}

	tests := []struct {
		name   string
		clause string
		fctx   *domain.FishingContext
		want   bool
	}{
		{"frenzy match", "CATCHING_FRENZY_FISH 131", frenzy, true},
		{"frenzy qualified id", "CATCHING_FRENZY_FISH (O)131", frenzy, true},
		{"frenzy other fish", "CATCHING_FRENZY_FISH 132", frenzy, false},
		{"frenzy bobber elsewhere", "CATCHING_FRENZY_FISH 131", &domain.FishingContext{
			BobberTile: domain.Tile{X: 13, Y: 30},
			Frenzy:     frenzy.Frenzy,
		}, false},
		{"frenzy zero splash", "CATCHING_FRENZY_FISH 131", &domain.FishingContext{
			Frenzy: &domain.Frenzy{FishID: "131"},
		}, false},
		{"frenzy none", "CATCHING_FRENZY_FISH 131", &domain.FishingContext{}, false},
		{"frenzy missing arg", "CATCHING_FRENZY_FISH", frenzy, false},

		{"rule active", "PLAYER_HAS_SPECIAL_ORDER_RULE Current LEGENDARY_FAMILY",
			&domain.FishingContext{SpecialOrderRules: []string{"LEGENDARY_FAMILY"}}, true},
		{"rule inactive", "PLAYER_HAS_SPECIAL_ORDER_RULE Current LEGENDARY_FAMILY", &domain.FishingContext{}, false},
		{"rule missing arg", "PLAYER_HAS_SPECIAL_ORDER_RULE Current", &domain.FishingContext{}, false},

		{"bobber inside", "BOBBER_IN_RECT 10 10 5 5", &domain.FishingContext{BobberTile: domain.Tile{X: 14, Y: 10}}, true},
		{"bobber on far edge", "BOBBER_IN_RECT 10 10 5 5", &domain.FishingContext{BobberTile: domain.Tile{X: 15, Y: 10}}, false},
		{"bobber bad number", "BOBBER_IN_RECT 10 ten 5 5", &domain.FishingContext{BobberTile: domain.Tile{X: 11, Y: 11}}, false},

		{"deep enough", "WATER_DEPTH 3", &domain.FishingContext{BobberDepth: 3}, true},
		{"too shallow", "WATER_DEPTH 4", &domain.FishingContext{BobberDepth: 3}, false},

		{"tile x min inclusive", "PLAYER_TILE_X Current 10 20", &domain.FishingContext{PlayerTile: domain.Tile{X: 10}}, true},
		{"tile x max exclusive", "PLAYER_TILE_X Current 10 20", &domain.FishingContext{PlayerTile: domain.Tile{X: 20}}, false},
		{"tile y in range", "PLAYER_TILE_Y Current 0 2", &domain.FishingContext{PlayerTile: domain.Tile{Y: 1}}, true},
		{"tile y missing max", "PLAYER_TILE_Y Current 0", &domain.FishingContext{}, false},

		{"caught", "PLAYER_HAS_CAUGHT_FISH Current (O)159", &domain.FishingContext{CaughtFish: []string{"159"}}, true},
		{"not caught", "PLAYER_HAS_CAUGHT_FISH Current 160", &domain.FishingContext{CaughtFish: []string{"159"}}, false},
		{"has flag", "PLAYER_HAS_FLAG Current RSV.HeroStatue", &domain.FishingContext{Flags: []string{"RSV.HeroStatue"}}, true},
		{"seen event", "PLAYER_HAS_SEEN_EVENT Current 75160259", &domain.FishingContext{SeenEvents: []string{"75160259"}}, true},
		{"negated seen event", "!PLAYER_HAS_SEEN_EVENT Current 75160259", &domain.FishingContext{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := r.Evaluate(tt.clause, tt.fctx)
			assert.True(t, known)
			assert.Equal(t, tt.want, got)
		})
	}
}
