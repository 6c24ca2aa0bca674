package predicate

import (
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/metrics"
)

// Func evaluates one clause. args holds every whitespace-separated token of the
// clause, with the clause token itself at args[0].
type Func func(args []string, fctx *domain.FishingContext) bool

// Registry maps clause tokens to predicate functions. Registration is
// first-writer-wins; lookups are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	funcs   map[string]Func
	unknown map[string]struct{}
	log     *slog.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		funcs:   make(map[string]Func),
		unknown: make(map[string]struct{}),
		log:     slog.Default(),
	}
}

// NewDefaultRegistry returns a registry with the built-in predicates.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterBuiltins(r)
	return r
}

// WithLogger sets the logger used for unknown-token diagnostics.
func (r *Registry) WithLogger(log *slog.Logger) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = log
	return r
}

// Register adds fn under token. It returns false, leaving the existing entry
// untouched, when token is already registered.
func (r *Registry) Register(token string, fn Func) bool {
	token = strings.TrimSpace(token)
	if token == "" || fn == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.funcs[token]; exists {
		return false
	}
	r.funcs[token] = fn
	delete(r.unknown, token)
	return true
}

// Lookup returns the function registered under token.
func (r *Registry) Lookup(token string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.funcs[token]
	return fn, ok
}

// Tokens returns the registered tokens in sorted order.
func (r *Registry) Tokens() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tokens := make([]string, 0, len(r.funcs))
	for t := range r.funcs {
		tokens = append(tokens, t)
	}
	slices.Sort(tokens)
	return tokens
}

// Evaluate runs a clause against the context. A leading "!" negates the
// result. Clauses whose token is not registered evaluate to true and known is
// false.
func (r *Registry) Evaluate(clause string, fctx *domain.FishingContext) (result bool, known bool) {
	clause = strings.TrimSpace(clause)
	negate := strings.HasPrefix(clause, NegationPrefix)
	if negate {
		clause = strings.TrimSpace(strings.TrimPrefix(clause, NegationPrefix))
	}

	args := strings.Fields(clause)
	if len(args) == 0 {
		return true, false
	}

	fn, ok := r.Lookup(args[0])
	if !ok {
		r.noteUnknown(args[0])
		return true, false
	}

	result = fn(args, fctx)
	if negate {
		result = !result
	}
	return result, true
}

// Suggest returns the registered token closest to token, if any is close
// enough to be a likely typo.
func (r *Registry) Suggest(token string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	best, bestDist := "", maxSuggestionDistance+1
	for candidate := range r.funcs {
		dist := levenshtein.ComputeDistance(token, candidate)
		if dist < bestDist || (dist == bestDist && candidate < best) {
			best, bestDist = candidate, dist
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

// noteUnknown logs each unregistered token once.
func (r *Registry) noteUnknown(token string) {
	r.mu.RLock()
	_, seen := r.unknown[token]
	r.mu.RUnlock()
	if seen {
		return
	}

	r.mu.Lock()
	if _, seen = r.unknown[token]; seen {
		r.mu.Unlock()
		return
	}
	r.unknown[token] = struct{}{}
	log := r.log
	r.mu.Unlock()

	metrics.UnknownPredicates.Inc()
	attrs := []any{"token", token}
	if suggestion, ok := r.Suggest(token); ok {
		attrs = append(attrs, "did_you_mean", suggestion)
	}
	log.Debug(LogMsgUnknownPredicate, attrs...)
}
