package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/catchpool/internal/chance"
	"github.com/osse101/catchpool/internal/content"
	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/location"
)

func newCatchRouter(h *CatchHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/v1/catch/{pool}", h.HandleCatch)
	r.Post("/api/v1/odds/{pool}", h.HandleOdds)
	r.Post("/api/v1/chance/{pool}", h.HandleChance)
	return r
}

func post(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleCatch(t *testing.T) {
	carp := domain.NewEntry(domain.ObjectID(142), domain.NewAvailability(0.3))
	snap := &content.Snapshot{
		Version: 1,
		Fish:    []domain.Entry{carp},
		Traits: map[domain.Key]domain.FishTraits{
			domain.ObjectID(142): {Name: "Carp", Difficulty: 15},
		},
	}

	t.Run("Caught With Traits", func(t *testing.T) {
		svc := &MockContentService{}
		svc.On("Snapshot").Return(snap, nil)
		svc.On("Evaluate", mock.Anything, domain.PoolFish).Return(carp, true)

		w := post(t, newCatchRouter(NewCatchHandler(svc, nil)), "/api/v1/catch/fish",
			`{"context":{"time":900,"season":["spring"],"weather":["sunny"],"locations":["Town"]}}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp CatchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Caught)
		require.NotNil(t, resp.Traits)
		assert.Equal(t, "Carp", resp.Traits.Name)
		assert.Contains(t, w.Body.String(), `"id":"(O)142"`)
		svc.AssertExpectations(t)
	})

	t.Run("Nothing Caught", func(t *testing.T) {
		svc := &MockContentService{}
		svc.On("Snapshot").Return(snap, nil)
		svc.On("Evaluate", mock.Anything, domain.PoolTrash).Return(domain.Entry{}, false)

		w := post(t, newCatchRouter(NewCatchHandler(svc, nil)), "/api/v1/catch/trash", `{"context":{"time":900}}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `{"caught":false}`+"\n", w.Body.String())
	})

	t.Run("Place Expanded Into Locations", func(t *testing.T) {
		svc := &MockContentService{}
		svc.On("Snapshot").Return(snap, nil)
		svc.On("Evaluate", mock.MatchedBy(func(fctx *domain.FishingContext) bool {
			return assert.ObjectsAreEqual(
				[]string{"Town", "UndergroundMine20", location.FamilyMine, "UndergroundMine/20"},
				fctx.Locations,
			) && fctx.BobberDepth == domain.DefaultBobberDepth
		}), domain.PoolFish).Return(carp, true)

		w := post(t, newCatchRouter(NewCatchHandler(svc, location.NewExpander(nil))), "/api/v1/catch/fish",
			`{"context":{"time":900,"locations":["Town"]},"place":{"kind":"depth","name":"UndergroundMine20","depth":20}}`)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Unknown Pool", func(t *testing.T) {
		svc := &MockContentService{}
		w := post(t, newCatchRouter(NewCatchHandler(svc, nil)), "/api/v1/catch/boots", `{"context":{}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unknown pool 'boots'")
		svc.AssertNotCalled(t, "Evaluate", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Field Rejected", func(t *testing.T) {
		svc := &MockContentService{}
		w := post(t, newCatchRouter(NewCatchHandler(svc, nil)), "/api/v1/catch/fish", `{"ctx":{}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})

	t.Run("Invalid Season", func(t *testing.T) {
		svc := &MockContentService{}
		w := post(t, newCatchRouter(NewCatchHandler(svc, nil)), "/api/v1/catch/fish",
			`{"context":{"season":["monsoon"]}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Time Out Of Range", func(t *testing.T) {
		svc := &MockContentService{}
		w := post(t, newCatchRouter(NewCatchHandler(svc, nil)), "/api/v1/catch/fish", `{"context":{"time":3000}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Must be at most 2800")
	})

	t.Run("Unknown Place Kind", func(t *testing.T) {
		svc := &MockContentService{}
		w := post(t, newCatchRouter(NewCatchHandler(svc, nil)), "/api/v1/catch/fish",
			`{"context":{},"place":{"kind":"volcano","name":"Caldera"}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Must be one of")
	})

	t.Run("No Snapshot", func(t *testing.T) {
		svc := &MockContentService{}
		svc.On("Snapshot").Return(nil, domain.ErrNoSnapshot)

		w := post(t, newCatchRouter(NewCatchHandler(svc, nil)), "/api/v1/catch/fish", `{"context":{}}`)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNoSnapshotError)
	})
}

func TestHandleOdds(t *testing.T) {
	carp := domain.NewEntry(domain.ObjectID(142), domain.NewAvailability(0.3))

	t.Run("Lists Odds", func(t *testing.T) {
		svc := &MockContentService{}
		svc.On("Snapshot").Return(&content.Snapshot{}, nil)
		svc.On("Odds", mock.Anything, domain.PoolFish).Return([]chance.Odds{
			{Entry: carp, Weight: 0.3, Probability: 1},
		})

		w := post(t, newCatchRouter(NewCatchHandler(svc, nil)), "/api/v1/odds/FISH",
			`{"context":{"locations":["Town"]}}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp OddsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domain.PoolFish, resp.Pool)
		assert.Equal(t, []string{"Town"}, resp.Locations)
		require.Len(t, resp.Odds, 1)
		assert.InDelta(t, 1.0, resp.Odds[0].Probability, 1e-9)
	})

	t.Run("Empty Tier Encodes As Empty List", func(t *testing.T) {
		svc := &MockContentService{}
		svc.On("Snapshot").Return(&content.Snapshot{}, nil)
		svc.On("Odds", mock.Anything, domain.PoolTreasure).Return(nil)

		w := post(t, newCatchRouter(NewCatchHandler(svc, nil)), "/api/v1/odds/treasure", `{"context":{}}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"odds":[]`)
	})
}

func TestHandleChance(t *testing.T) {
	t.Run("Qualified Id", func(t *testing.T) {
		svc := &MockContentService{}
		svc.On("Snapshot").Return(&content.Snapshot{}, nil)
		svc.On("ChanceOf", mock.Anything, domain.PoolFish, domain.ObjectID(142)).Return(0.25)

		w := post(t, newCatchRouter(NewCatchHandler(svc, nil)), "/api/v1/chance/fish",
			`{"context":{},"itemId":"142"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp ChanceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "(O)142", resp.ItemID)
		assert.InDelta(t, 0.25, resp.Probability, 1e-9)
		svc.AssertExpectations(t)
	})

	t.Run("Missing Item Id", func(t *testing.T) {
		svc := &MockContentService{}
		w := post(t, newCatchRouter(NewCatchHandler(svc, nil)), "/api/v1/chance/fish", `{"context":{}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"itemid":"This field is required"`)
	})

	t.Run("Prefix Only Item Id", func(t *testing.T) {
		svc := &MockContentService{}
		w := post(t, newCatchRouter(NewCatchHandler(svc, nil)), "/api/v1/chance/fish",
			`{"context":{},"itemId":"(O)"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid item id")
	})
}
