package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/catchpool/internal/logger"
	"github.com/osse101/catchpool/internal/worker"
)

const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgJobDropped   = "Scheduled job dropped, worker queue full"
)

type entry struct {
	name     string
	interval time.Duration
	job      worker.Job
}

// Scheduler enqueues jobs on a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	entries    []entry
	quit       chan struct{}
	wg         sync.WaitGroup
	startOnce  sync.Once
	stopOnce   sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run every interval once Start is called. A
// non-positive interval disables the job.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	if interval <= 0 {
		return
	}
	s.entries = append(s.entries, entry{name: name, interval: interval, job: job})
}

// Start launches one ticker per registered job. Calling it again is a no-op.
func (s *Scheduler) Start() {
	s.startOnce.Do(func() {
		for _, e := range s.entries {
			logger.Info(LogMsgJobScheduled, "job", e.name, "interval", e.interval)
			s.wg.Add(1)
			go s.run(e)
		}
	})
}

func (s *Scheduler) run(e entry) {
	defer s.wg.Done()
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Enqueue never blocks, so a slow job only costs the missed ticks
			if !s.workerPool.Enqueue(e.job) {
				slog.Warn(LogMsgJobDropped, "job", e.name)
			}
		case <-s.quit:
			return
		}
	}
}

// Stop stops all scheduled jobs. It does not stop the worker pool.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
	})
}
