package handler

import (
	"net/http"
	"slices"

	"github.com/osse101/catchpool/internal/chance"
	"github.com/osse101/catchpool/internal/content"
	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/location"
)

// CatchRequest carries the fishing context. When Place is set its expanded
// names are added to the context's locations, using the actor tile.
type CatchRequest struct {
	Context domain.FishingContext `json:"context"`
	Place   *location.Spec        `json:"place,omitempty"`
}

// ChanceRequest asks for one item's probability.
type ChanceRequest struct {
	CatchRequest
	ItemID string `json:"itemId" validate:"required,itemid"`
}

// CatchResponse is the outcome of a draw.
type CatchResponse struct {
	Caught bool               `json:"caught"`
	Entry  *domain.Entry      `json:"entry,omitempty"`
	Traits *domain.FishTraits `json:"traits,omitempty"`
}

// OddsResponse lists the candidates of the winning tier.
type OddsResponse struct {
	Pool      domain.Pool   `json:"pool"`
	Locations []string      `json:"locations"`
	Odds      []chance.Odds `json:"odds"`
}

// ChanceResponse is one item's probability in a pool.
type ChanceResponse struct {
	Pool        domain.Pool `json:"pool"`
	ItemID      string      `json:"itemId"`
	Probability float64     `json:"probability"`
}

// CatchHandler serves draws and odds from the published snapshot.
type CatchHandler struct {
	service  content.Service
	expander *location.Expander
}

// NewCatchHandler creates a new catch handler. expander may be nil, in which
// case places expand without runtime aliases.
func NewCatchHandler(service content.Service, expander *location.Expander) *CatchHandler {
	return &CatchHandler{service: service, expander: expander}
}

// HandleCatch draws one entry from a pool
// @Summary Draw a catch
// @Description Filters the pool against the context, keeps the highest priority tier and draws one entry by weight
// @Tags catch
// @Accept json
// @Produce json
// @Param pool path string true "fish, trash or treasure"
// @Param request body CatchRequest true "Fishing context"
// @Success 200 {object} CatchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/catch/{pool} [post]
// @Security ApiKeyAuth
func (h *CatchHandler) HandleCatch(w http.ResponseWriter, r *http.Request) {
	pool, ok := poolParam(w, r)
	if !ok {
		return
	}

	var req CatchRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Catch"); err != nil {
		return
	}

	snap, err := h.service.Snapshot()
	if err != nil {
		respondServiceError(w, r, "Catch", err)
		return
	}

	fctx, err := h.buildContext(req)
	if err != nil {
		respondServiceError(w, r, "Catch", err)
		return
	}

	entry, caught := h.service.Evaluate(fctx, pool)
	resp := CatchResponse{Caught: caught}
	if caught {
		resp.Entry = &entry
		if traits, ok := snap.TraitsOf(entry.Key); ok {
			resp.Traits = &traits
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleOdds returns normalized odds for a pool
// @Summary Catch odds
// @Description Returns every candidate of the winning priority tier with its effective weight and probability
// @Tags catch
// @Accept json
// @Produce json
// @Param pool path string true "fish, trash or treasure"
// @Param request body CatchRequest true "Fishing context"
// @Success 200 {object} OddsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/odds/{pool} [post]
// @Security ApiKeyAuth
func (h *CatchHandler) HandleOdds(w http.ResponseWriter, r *http.Request) {
	pool, ok := poolParam(w, r)
	if !ok {
		return
	}

	var req CatchRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Odds"); err != nil {
		return
	}

	if _, err := h.service.Snapshot(); err != nil {
		respondServiceError(w, r, "Odds", err)
		return
	}

	fctx, err := h.buildContext(req)
	if err != nil {
		respondServiceError(w, r, "Odds", err)
		return
	}

	odds := h.service.Odds(fctx, pool)
	if odds == nil {
		odds = []chance.Odds{}
	}
	respondJSON(w, http.StatusOK, OddsResponse{Pool: pool, Locations: fctx.Locations, Odds: odds})
}

// HandleChance returns the probability of one item
// @Summary Item chance
// @Description Returns the probability that a draw from the pool yields the given item
// @Tags catch
// @Accept json
// @Produce json
// @Param pool path string true "fish, trash or treasure"
// @Param request body ChanceRequest true "Fishing context and item id"
// @Success 200 {object} ChanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/chance/{pool} [post]
// @Security ApiKeyAuth
func (h *CatchHandler) HandleChance(w http.ResponseWriter, r *http.Request) {
	pool, ok := poolParam(w, r)
	if !ok {
		return
	}

	var req ChanceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Chance"); err != nil {
		return
	}

	if _, err := h.service.Snapshot(); err != nil {
		respondServiceError(w, r, "Chance", err)
		return
	}

	fctx, err := h.buildContext(req.CatchRequest)
	if err != nil {
		respondServiceError(w, r, "Chance", err)
		return
	}

	key := domain.ParseKey(req.ItemID)
	respondJSON(w, http.StatusOK, ChanceResponse{
		Pool:        pool,
		ItemID:      key.String(),
		Probability: h.service.ChanceOf(fctx, pool, key),
	})
}

// buildContext copies the request context and folds in the place's names.
func (h *CatchHandler) buildContext(req CatchRequest) (*domain.FishingContext, error) {
	fctx := req.Context
	fctx.Locations = slices.Clone(fctx.Locations)

	if req.Place != nil {
		place, err := req.Place.Place()
		if err != nil {
			return nil, err
		}
		for _, name := range h.expander.Expand(place, fctx.PlayerTile) {
			if !slices.Contains(fctx.Locations, name) {
				fctx.Locations = append(fctx.Locations, name)
			}
		}
	}

	if fctx.BobberDepth == 0 {
		fctx.BobberDepth = domain.DefaultBobberDepth
	}
	return &fctx, nil
}
