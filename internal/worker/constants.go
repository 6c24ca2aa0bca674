package worker

import "time"

// DefaultReloadTimeout bounds a single scheduled reload
const DefaultReloadTimeout = 2 * time.Minute

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
	LogMsgWorkerQueueFull   = "Worker queue full, job dropped"
)

// ============================================================================
// Log Messages - Reload Worker
// ============================================================================

const (
	LogMsgScheduledReloadStarting  = "Scheduled reload starting"
	LogMsgScheduledReloadCompleted = "Scheduled reload completed"
	LogMsgScheduledReloadSkipped   = "Scheduled reload skipped, another reload is running"
	LogMsgAliasReloadFailed        = "Location alias reload failed, keeping previous rules"
	LogMsgAliasesReloaded          = "Location aliases reloaded"

	ErrMsgScheduledReloadFailed = "scheduled reload failed"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
	TestJobWaitTimeout   = time.Second
)
