package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/catchpool/internal/content"
	"github.com/osse101/catchpool/internal/domain"
)

func TestHandleReload(t *testing.T) {
	snap := &content.Snapshot{
		Version: 3,
		Sources: []string{"default", "pack:spring"},
		Fish:    []domain.Entry{domain.NewEntry(domain.ObjectID(142), domain.NewAvailability(0.3))},
	}

	tests := []struct {
		name           string
		setupMock      func(*MockContentService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			setupMock: func(m *MockContentService) {
				m.On("TryReload", mock.Anything).Return(snap, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgContentReloaded,
		},
		{
			name: "Reload Already Running",
			setupMock: func(m *MockContentService) {
				m.On("TryReload", mock.Anything).Return(nil, domain.ErrReloadInProgress)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgReloadBusyError,
		},
		{
			name: "Contributor Failed",
			setupMock: func(m *MockContentService) {
				m.On("TryReload", mock.Anything).
					Return(nil, fmt.Errorf("%w: pack:spring: boom", domain.ErrContributorFailed))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   ErrMsgContributorError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockContentService{}
			tt.setupMock(svc)
			h := NewAdminHandler(svc, nil)

			w := httptest.NewRecorder()
			h.HandleReload(w, httptest.NewRequest("POST", "/api/v1/admin/reload", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleReload_ReportsSummary(t *testing.T) {
	svc := &MockContentService{}
	svc.On("TryReload", mock.Anything).Return(&content.Snapshot{
		Version: 7,
		Sources: []string{"default"},
		Trash:   []domain.Entry{domain.NewEntry(domain.ObjectID(168), domain.NewAvailability(0))},
	}, nil)

	w := httptest.NewRecorder()
	NewAdminHandler(svc, nil).HandleReload(w, httptest.NewRequest("POST", "/api/v1/admin/reload", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data content.Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.Data.Version)
	assert.Equal(t, 1, resp.Data.Entries["trash"])
	assert.Equal(t, 0, resp.Data.Entries["fish"])
}

func TestHandleReloadAliases(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*MockAliasReloader)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			setupMock: func(m *MockAliasReloader) {
				m.On("Reload").Return(nil)
				m.On("Len").Return(4)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"rules":4`,
		},
		{
			name: "Failure - Reload Error",
			setupMock: func(m *MockAliasReloader) {
				m.On("Reload").Return(errors.New("failed to read file"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgReloadAliasesFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aliases := &MockAliasReloader{}
			tt.setupMock(aliases)
			h := NewAdminHandler(&MockContentService{}, aliases)

			w := httptest.NewRecorder()
			h.HandleReloadAliases(w, httptest.NewRequest("POST", "/api/v1/admin/reload-aliases", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			aliases.AssertExpectations(t)
		})
	}

	t.Run("Not Configured", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewAdminHandler(&MockContentService{}, nil).
			HandleReloadAliases(w, httptest.NewRequest("POST", "/api/v1/admin/reload-aliases", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgAliasesNotConfigured)
	})
}

func TestHandleGetSnapshot(t *testing.T) {
	t.Run("Loaded", func(t *testing.T) {
		svc := &MockContentService{}
		svc.On("Snapshot").Return(&content.Snapshot{Version: 2, Skipped: map[string]int{"default": 3}}, nil)

		w := httptest.NewRecorder()
		NewAdminHandler(svc, nil).HandleGetSnapshot(w, httptest.NewRequest("GET", "/api/v1/snapshot", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"version":2`)
		assert.Contains(t, w.Body.String(), `"skipped":{"default":3}`)
	})

	t.Run("Not Loaded", func(t *testing.T) {
		svc := &MockContentService{}
		svc.On("Snapshot").Return(nil, domain.ErrNoSnapshot)

		w := httptest.NewRecorder()
		NewAdminHandler(svc, nil).HandleGetSnapshot(w, httptest.NewRequest("GET", "/api/v1/snapshot", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
