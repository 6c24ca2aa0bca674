package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/catchpool/internal/testing/leaktest"
	"github.com/osse101/catchpool/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount atomic.Int32
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount.Add(1)
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := worker.NewPool(1, 10)
	pool.Start()

	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule("mock", 10*time.Millisecond, job)
	sched.Start()

	timeout := time.After(time.Second)
	runs := 0
	for runs < 2 {
		select {
		case <-job.Done:
			runs++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	sched.Stop()
	pool.Stop()

	assert.GreaterOrEqual(t, job.RunCount.Load(), int32(2))
	checker.Check(0)
}

func TestScheduler_NothingRunsBeforeStart(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule("mock", 5*time.Millisecond, job)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), job.RunCount.Load())

	sched.Stop()
}

func TestScheduler_DisabledInterval(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := worker.NewPool(1, 10)
	sched := New(pool)
	sched.Schedule("off", 0, &MockJob{Done: make(chan struct{}, 1)})
	sched.Start()
	sched.Start()
	sched.Stop()
	sched.Stop()
	pool.Stop()

	checker.Check(0)
}
