package handler

import (
	"net/http"

	"github.com/osse101/catchpool/internal/content"
	"github.com/osse101/catchpool/internal/logger"
)

// AliasReloader re-reads location alias rules.
type AliasReloader interface {
	Reload() error
	Len() int
}

// AdminHandler handles content administration
type AdminHandler struct {
	service content.Service
	aliases AliasReloader
}

// NewAdminHandler creates a new admin handler. aliases may be nil.
func NewAdminHandler(service content.Service, aliases AliasReloader) *AdminHandler {
	return &AdminHandler{service: service, aliases: aliases}
}

// HandleReload rebuilds the content snapshot
// @Summary Reload content
// @Description Rebuilds the snapshot from every content source. The previous snapshot stays published when a source fails.
// @Tags admin
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/admin/reload [post]
// @Security ApiKeyAuth
func (h *AdminHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	logger.FromContext(r.Context()).Info(LogMsgReloadRequested)

	snap, err := h.service.TryReload(r.Context())
	if err != nil {
		respondServiceError(w, r, "Reload", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{
		Message: MsgContentReloaded,
		Data:    snap.Summary(),
	})
}

// HandleReloadAliases re-reads the location alias file
// @Summary Reload location aliases
// @Description Re-reads the YAML alias rules used when expanding places
// @Tags admin
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/reload-aliases [post]
// @Security ApiKeyAuth
func (h *AdminHandler) HandleReloadAliases(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if h.aliases == nil {
		respondError(w, http.StatusNotFound, ErrMsgAliasesNotConfigured)
		return
	}

	log.Info(LogMsgAliasReloadStarted)
	if err := h.aliases.Reload(); err != nil {
		log.Error(ErrMsgReloadAliasesFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgReloadAliasesFailed)
		return
	}

	rules := h.aliases.Len()
	log.Info(LogMsgAliasReloadFinished, "rules", rules)
	respondJSON(w, http.StatusOK, DataResponse{
		Message: MsgAliasesReloaded,
		Data:    map[string]int{"rules": rules},
	})
}

// HandleGetSnapshot describes the published snapshot
// @Summary Snapshot summary
// @Description Returns version, sources, entry counts per pool and skipped row counts
// @Tags content
// @Produce json
// @Success 200 {object} content.Summary
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/snapshot [get]
// @Security ApiKeyAuth
func (h *AdminHandler) HandleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Snapshot()
	if err != nil {
		respondServiceError(w, r, "Snapshot", err)
		return
	}
	respondJSON(w, http.StatusOK, snap.Summary())
}
