package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/catchpool/internal/content"
	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/logger"
)

// Reloader rebuilds the content snapshot without waiting on a running reload
type Reloader interface {
	TryReload(ctx context.Context) (*content.Snapshot, error)
}

// AliasReloader re-reads location alias rules
type AliasReloader interface {
	Reload() error
	Len() int
}

// ReloadJob refreshes location aliases (when configured) and then the content
// snapshot. A reload that is already running is not an error.
type ReloadJob struct {
	reloader Reloader
	aliases  AliasReloader
	timeout  time.Duration
}

// NewReloadJob creates a reload job. aliases may be nil; a non-positive
// timeout uses DefaultReloadTimeout.
func NewReloadJob(reloader Reloader, aliases AliasReloader, timeout time.Duration) *ReloadJob {
	if timeout <= 0 {
		timeout = DefaultReloadTimeout
	}
	return &ReloadJob{reloader: reloader, aliases: aliases, timeout: timeout}
}

// Process runs one scheduled reload
func (j *ReloadJob) Process(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	// Alias failures keep the previous rules and never block the content reload
	if j.aliases != nil {
		if err := j.aliases.Reload(); err != nil {
			log.Warn(LogMsgAliasReloadFailed, "error", err)
		} else {
			log.Debug(LogMsgAliasesReloaded, "rules", j.aliases.Len())
		}
	}

	log.Debug(LogMsgScheduledReloadStarting)
	snap, err := j.reloader.TryReload(ctx)
	if errors.Is(err, domain.ErrReloadInProgress) {
		log.Info(LogMsgScheduledReloadSkipped)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgScheduledReloadFailed, err)
	}

	log.Info(LogMsgScheduledReloadCompleted,
		"version", snap.Version,
		"sources", len(snap.Sources),
		"entries", snap.Counts())
	return nil
}
