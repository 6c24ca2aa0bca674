package item

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/catchpool/internal/domain"
)

const itemsJSON = `{
	"version": "1.0",
	"description": "Test items",
	"items": [
		{"id": "(O)142", "name": "Carp", "aliases": ["carp"], "tags": ["fish_lake"]},
		{"id": "159", "name": "Crimsonfish", "tags": ["fish_legendary"]}
	]
}`

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestItemLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("valid JSON file", func(t *testing.T) {
		config, err := loader.Load(createTempFile(t, itemsJSON))
		require.NoError(t, err)
		assert.Equal(t, "1.0", config.Version)
		require.Len(t, config.Items, 2)
		assert.Equal(t, "(O)142", config.Items[0].ID)
		assert.Equal(t, []string{"carp"}, config.Items[0].Aliases)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/path.json")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read items config file")
	})

	t.Run("schema violation", func(t *testing.T) {
		_, err := loader.Load(createTempFile(t, `{"version": "1", "items": [{"name": "no id"}]}`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})
}

func TestItemLoader_Validate(t *testing.T) {
	loader := NewLoader()

	tests := []struct {
		name    string
		config  *Config
		wantErr error
	}{
		{"valid", &Config{Items: []domain.Item{{ID: "1"}, {ID: "2"}}}, nil},
		{"nil", nil, ErrInvalidConfig},
		{"empty", &Config{}, ErrInvalidConfig},
		{"empty id", &Config{Items: []domain.Item{{Name: "x"}}}, ErrInvalidConfig},
		{"prefix only", &Config{Items: []domain.Item{{ID: "(O)"}}}, ErrInvalidConfig},
		{"duplicate across forms", &Config{Items: []domain.Item{{ID: "142"}, {ID: "(O)142"}}}, ErrDuplicateID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loader.Validate(tt.config)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *mockRepo) UpsertItem(ctx context.Context, it domain.Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *mockRepo) GetSyncMetadata(ctx context.Context, name string) (*domain.SyncMetadata, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncMetadata), args.Error(1)
}

func (m *mockRepo) UpsertSyncMetadata(ctx context.Context, meta *domain.SyncMetadata) error {
	return m.Called(ctx, meta).Error(0)
}

func TestItemLoader_SyncToDatabase(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader()
	path := createTempFile(t, itemsJSON)
	config, err := loader.Load(path)
	require.NoError(t, err)

	t.Run("first sync upserts changed items", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("GetSyncMetadata", ctx, ConfigFileName).Return(nil, errors.New("no rows"))
		repo.On("GetAllItems", ctx).Return([]domain.Item{config.Items[1]}, nil)
		repo.On("UpsertItem", ctx, config.Items[0]).Return(nil)
		repo.On("UpsertSyncMetadata", ctx, mock.MatchedBy(func(m *domain.SyncMetadata) bool {
			return m.ConfigName == ConfigFileName && len(m.FileHash) == 64
		})).Return(nil)

		result, err := loader.SyncToDatabase(ctx, config, repo, path)
		require.NoError(t, err)
		assert.Equal(t, 1, result.ItemsUpserted)
		assert.Equal(t, 1, result.ItemsSkipped)
		repo.AssertExpectations(t)
	})

	t.Run("unchanged file is skipped", func(t *testing.T) {
		hash, modTime, err := fileFingerprint(path)
		require.NoError(t, err)

		repo := &mockRepo{}
		repo.On("GetSyncMetadata", ctx, ConfigFileName).Return(&domain.SyncMetadata{FileHash: hash, FileModTime: modTime, LastSyncTime: time.Now()}, nil)

		result, err := loader.SyncToDatabase(ctx, config, repo, path)
		require.NoError(t, err)
		assert.Zero(t, result.ItemsUpserted)
		repo.AssertNotCalled(t, "GetAllItems", mock.Anything)
	})

	t.Run("upsert failure", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("GetSyncMetadata", ctx, ConfigFileName).Return(nil, errors.New("no rows"))
		repo.On("GetAllItems", ctx).Return([]domain.Item{}, nil)
		repo.On("UpsertItem", ctx, mock.Anything).Return(errors.New("db down"))

		_, err := loader.SyncToDatabase(ctx, config, repo, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upsert item")
	})
}
