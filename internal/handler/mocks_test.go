package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/catchpool/internal/chance"
	"github.com/osse101/catchpool/internal/content"
	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/predicate"
)

// MockContentService mocks content.Service
type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Reload(ctx context.Context) (*content.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Snapshot), args.Error(1)
}

func (m *MockContentService) TryReload(ctx context.Context) (*content.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Snapshot), args.Error(1)
}

func (m *MockContentService) Snapshot() (*content.Snapshot, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Snapshot), args.Error(1)
}

func (m *MockContentService) Evaluate(fctx *domain.FishingContext, pool domain.Pool) (domain.Entry, bool) {
	args := m.Called(fctx, pool)
	return args.Get(0).(domain.Entry), args.Bool(1)
}

func (m *MockContentService) WeightOf(fctx *domain.FishingContext, entry domain.Entry) (float64, bool) {
	args := m.Called(fctx, entry)
	return args.Get(0).(float64), args.Bool(1)
}

func (m *MockContentService) Odds(fctx *domain.FishingContext, pool domain.Pool) []chance.Odds {
	args := m.Called(fctx, pool)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]chance.Odds)
}

func (m *MockContentService) ChanceOf(fctx *domain.FishingContext, pool domain.Pool, key domain.Key) float64 {
	args := m.Called(fctx, pool, key)
	return args.Get(0).(float64)
}

func (m *MockContentService) RegisterPredicate(token string, fn predicate.Func) bool {
	args := m.Called(token, fn)
	return args.Bool(0)
}

func (m *MockContentService) CatchCurrent(ctx context.Context, builder content.ContextBuilder, pool domain.Pool) (domain.Entry, bool, error) {
	args := m.Called(ctx, builder, pool)
	return args.Get(0).(domain.Entry), args.Bool(1), args.Error(2)
}

// MockAliasReloader mocks AliasReloader
type MockAliasReloader struct {
	mock.Mock
}

func (m *MockAliasReloader) Reload() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockAliasReloader) Len() int {
	args := m.Called()
	return args.Int(0)
}

// MockDBPool mocks database.Pool
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}
