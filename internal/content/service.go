package content

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/catchpool/internal/chance"
	"github.com/osse101/catchpool/internal/conditions"
	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/logger"
	"github.com/osse101/catchpool/internal/metrics"
	"github.com/osse101/catchpool/internal/predicate"
)

// Contributor adds entries and traits to every reload.
type Contributor interface {
	Name() string
	Load(ctx context.Context) (domain.Content, error)
}

// ContextBuilder supplies the fishing context for the current moment.
type ContextBuilder interface {
	Current(ctx context.Context) (domain.FishingContext, error)
}

// ContextBuilderFunc adapts a function to ContextBuilder.
type ContextBuilderFunc func(ctx context.Context) (domain.FishingContext, error)

// Current calls f.
func (f ContextBuilderFunc) Current(ctx context.Context) (domain.FishingContext, error) {
	return f(ctx)
}

// Service owns the published snapshot and evaluates catches against it.
type Service interface {
	// Reload rebuilds the snapshot from every contributor. On failure the
	// previous snapshot stays published.
	Reload(ctx context.Context) (*Snapshot, error)

	// TryReload is Reload, but returns domain.ErrReloadInProgress instead of
	// waiting when another reload is running.
	TryReload(ctx context.Context) (*Snapshot, error)

	// Snapshot returns the published snapshot.
	Snapshot() (*Snapshot, error)

	// Evaluate draws one entry from a pool.
	Evaluate(fctx *domain.FishingContext, pool domain.Pool) (domain.Entry, bool)

	// WeightOf returns an entry's effective weight, or false when it does not match.
	WeightOf(fctx *domain.FishingContext, entry domain.Entry) (float64, bool)

	// Odds returns the normalized chance of every candidate in the winning tier.
	Odds(fctx *domain.FishingContext, pool domain.Pool) []chance.Odds

	// ChanceOf returns the probability that a draw from pool yields key.
	ChanceOf(fctx *domain.FishingContext, pool domain.Pool, key domain.Key) float64

	// RegisterPredicate adds a clause function. The first registration of a token wins.
	RegisterPredicate(token string, fn predicate.Func) bool

	// CatchCurrent builds the current context and draws from a pool.
	CatchCurrent(ctx context.Context, builder ContextBuilder, pool domain.Pool) (domain.Entry, bool, error)
}

type service struct {
	contributors []Contributor
	registry     *predicate.Registry
	calculator   *chance.Calculator

	reloadMu sync.Mutex
	current  atomic.Pointer[Snapshot]
	version  int64
}

// Option configures the service.
type Option func(*options)

type options struct {
	registry *predicate.Registry
	rng      chance.RandomSource
}

// WithRegistry uses an existing predicate registry instead of a fresh default one.
func WithRegistry(r *predicate.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithRandom replaces the draw's random source.
func WithRandom(rng chance.RandomSource) Option {
	return func(o *options) { o.rng = rng }
}

// NewService creates a service over the given contributors. Contributors are
// merged in order, so later ones can add traits for earlier entries.
func NewService(lookup domain.ItemLookup, contributors []Contributor, opts ...Option) Service {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = predicate.NewDefaultRegistry()
	}

	var calcOpts []chance.Option
	if o.rng != nil {
		calcOpts = append(calcOpts, chance.WithRandom(o.rng))
	}

	return &service{
		contributors: contributors,
		registry:     o.registry,
		calculator:   chance.NewCalculator(conditions.NewMatcher(o.registry), lookup, calcOpts...),
	}
}

func (s *service) Reload(ctx context.Context) (*Snapshot, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()
	return s.reload(ctx)
}

func (s *service) TryReload(ctx context.Context) (*Snapshot, error) {
	if !s.reloadMu.TryLock() {
		return nil, domain.ErrReloadInProgress
	}
	defer s.reloadMu.Unlock()
	return s.reload(ctx)
}

// reload must be called with reloadMu held.
func (s *service) reload(ctx context.Context) (snap *Snapshot, err error) {
	log := logger.FromContext(ctx)
	start := time.Now()
	defer func() {
		metrics.RecordReload(err, time.Since(start))
	}()

	log.Info(LogMsgReloadStarted, "contributors", len(s.contributors))

	m := newMerger()
	for _, c := range s.contributors {
		content, err := c.Load(ctx)
		if err != nil {
			log.Error(LogMsgReloadFailed, "contributor", c.Name(), "error", err)
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrContributorFailed, c.Name(), err)
		}
		if content.Source == "" {
			content.Source = c.Name()
		}
		log.Debug(LogMsgContributorDone, "contributor", c.Name(), "entries", content.Size(), "traits", len(content.Traits))
		m.add(content)
	}

	snap, dropped := m.finish()
	if dropped > 0 {
		log.Debug(LogMsgEntriesDiscarded, "count", dropped)
	}

	s.version++
	snap.Version = s.version
	snap.LoadedAt = time.Now()
	s.current.Store(snap)

	metrics.RecordSnapshot(snap.Counts(), len(snap.Traits))
	metrics.RecordSkipped(snap.Skipped)

	log.Info(LogMsgReloadCompleted,
		"version", snap.Version,
		"fish", len(snap.Fish),
		"trash", len(snap.Trash),
		"treasure", len(snap.Treasure),
		"traits", len(snap.Traits),
		"duration_ms", time.Since(start).Milliseconds())

	return snap, nil
}

func (s *service) Snapshot() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, domain.ErrNoSnapshot
	}
	return snap, nil
}

func (s *service) Evaluate(fctx *domain.FishingContext, pool domain.Pool) (domain.Entry, bool) {
	snap := s.current.Load()
	if snap == nil {
		return domain.Entry{}, false
	}
	entry, ok := s.calculator.Draw(fctx, snap.Pool(pool))
	metrics.RecordEvaluation(string(pool), ok)
	return entry, ok
}

func (s *service) WeightOf(fctx *domain.FishingContext, entry domain.Entry) (float64, bool) {
	return s.calculator.WeightOf(fctx, entry)
}

func (s *service) Odds(fctx *domain.FishingContext, pool domain.Pool) []chance.Odds {
	snap := s.current.Load()
	if snap == nil {
		return nil
	}
	return s.calculator.Odds(fctx, snap.Pool(pool))
}

func (s *service) ChanceOf(fctx *domain.FishingContext, pool domain.Pool, key domain.Key) float64 {
	snap := s.current.Load()
	if snap == nil {
		return 0
	}
	return s.calculator.ChanceOf(fctx, snap.Pool(pool), key)
}

func (s *service) RegisterPredicate(token string, fn predicate.Func) bool {
	return s.registry.Register(token, fn)
}

func (s *service) CatchCurrent(ctx context.Context, builder ContextBuilder, pool domain.Pool) (domain.Entry, bool, error) {
	if s.current.Load() == nil {
		return domain.Entry{}, false, domain.ErrNoSnapshot
	}
	fctx, err := builder.Current(ctx)
	if err != nil {
		return domain.Entry{}, false, fmt.Errorf("%s: %w", ErrMsgBuildContext, err)
	}
	entry, ok := s.Evaluate(&fctx, pool)
	return entry, ok, nil
}
