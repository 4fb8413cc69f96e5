package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Timer Worker
// ============================================================================

// Log messages for timer worker operations
const (
	LogMsgTimerScheduled      = "Timer scheduled"
	LogMsgTimerFired          = "Timer fired"
	LogMsgTimerCancelled      = "Cancelled pending timer"
	LogMsgTimerPingFailed     = "Timer ping failed"
	LogMsgTimerWorkerStopping = "Shutting down timer worker"
	LogMsgTimerWorkerStopped  = "Timer worker shutdown complete"
	LogMsgTimerWorkerTimeout  = "Timer worker shutdown timeout"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
