package predicate

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/catchpool/internal/domain"
)

func alwaysTrue([]string, *domain.FishingContext) bool  { return true }
func alwaysFalse([]string, *domain.FishingContext) bool { return false }

func TestRegister_FirstWriterWins(t *testing.T) {
	r := NewRegistry()

	assert.True(t, r.Register("CUSTOM", alwaysFalse))
	assert.False(t, r.Register("CUSTOM", alwaysTrue))

	result, known := r.Evaluate("CUSTOM", &domain.FishingContext{})
	assert.True(t, known)
	assert.False(t, result, "second registration must not overwrite the first")
}

func TestRegister_RejectsEmpty(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.Register("  ", alwaysTrue))
	assert.False(t, r.Register("X", nil))
	assert.Empty(t, r.Tokens())
}

func TestRegisterBuiltins_Idempotent(t *testing.T) {
	r := NewRegistry()
	assert.True(t, r.Register(TokenWaterDepth, alwaysFalse))

	RegisterBuiltins(r)
	RegisterBuiltins(r)

	tokens := r.Tokens()
	assert.Len(t, tokens, 9)
	assert.Contains(t, tokens, TokenFrenzyFish)

	result, _ := r.Evaluate("WATER_DEPTH 0", &domain.FishingContext{BobberDepth: 5})
	assert.False(t, result, "host registration made before the builtins is kept")
}

func TestRegister_Concurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	wins := make(chan bool, 50)

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- r.Register("RACE", alwaysTrue)
			r.Evaluate("RACE", &domain.FishingContext{})
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for w := range wins {
		if w {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestEvaluate_UnknownIsPermissive(t *testing.T) {
	var buf bytes.Buffer
	r := NewDefaultRegistry().WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	result, known := r.Evaluate("WATER_DEPHT 3", &domain.FishingContext{})
	assert.True(t, result)
	assert.False(t, known)

	result, known = r.Evaluate("!WATER_DEPHT 3", &domain.FishingContext{})
	assert.True(t, result, "negation does not apply to unknown clauses")
	assert.False(t, known)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, LogMsgUnknownPredicate), "unknown tokens are logged once")
	assert.Contains(t, out, "did_you_mean="+TokenWaterDepth)
}

func TestEvaluate_EmptyClause(t *testing.T) {
	result, known := NewRegistry().Evaluate("   ", &domain.FishingContext{})
	assert.True(t, result)
	assert.False(t, known)
}

func TestEvaluate_Negation(t *testing.T) {
	r := NewRegistry()
	require.True(t, r.Register("YES", alwaysTrue))

	result, known := r.Evaluate("! YES", &domain.FishingContext{})
	assert.True(t, known)
	assert.False(t, result)
}

func TestSuggest(t *testing.T) {
	r := NewDefaultRegistry()

	s, ok := r.Suggest("PLAYER_TILE_Z")
	require.True(t, ok)
	assert.Equal(t, TokenPlayerTileX, s, "ties break alphabetically")

	_, ok = r.Suggest("SOMETHING_COMPLETELY_DIFFERENT")
	assert.False(t, ok)
}
