package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// bufferPool reuses encode buffers across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing the header so an encode failure can still be a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and maps it to a status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", opName, "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgNoSnapshotError     = "Content is not loaded yet. Try again shortly."
	ErrMsgReloadBusyError     = "A reload is already running"
	ErrMsgContributorError    = "A content source failed to load; the previous content is still served"
	ErrMsgInvalidPoolError    = "Invalid pool"
	ErrMsgInvalidContextError = "Invalid fishing context"
	ErrMsgInvalidPlaceError   = "Invalid place"
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgInvalidInputError   = "Invalid input"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrNoSnapshot):
		return http.StatusServiceUnavailable, ErrMsgNoSnapshotError
	case errors.Is(err, domain.ErrReloadInProgress):
		return http.StatusConflict, ErrMsgReloadBusyError
	case errors.Is(err, domain.ErrContributorFailed):
		return http.StatusBadGateway, ErrMsgContributorError
	case errors.Is(err, domain.ErrInvalidPool):
		return http.StatusBadRequest, ErrMsgInvalidPoolError
	case errors.Is(err, domain.ErrInvalidContext):
		return http.StatusBadRequest, ErrMsgInvalidContextError
	case errors.Is(err, domain.ErrInvalidPlace):
		return http.StatusBadRequest, ErrMsgInvalidPlaceError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidFlag):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
