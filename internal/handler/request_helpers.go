package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
//	var req CatchRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Catch"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// poolParam reads the {pool} route parameter. On failure the response has
// already been written.
func poolParam(w http.ResponseWriter, r *http.Request) (domain.Pool, bool) {
	raw := chi.URLParam(r, "pool")
	pool, ok := domain.ParsePool(raw)
	if !ok {
		logger.FromContext(r.Context()).Warn(domain.ErrMsgInvalidPool, "pool", raw)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPoolParam, raw))
		return "", false
	}
	return pool, true
}
