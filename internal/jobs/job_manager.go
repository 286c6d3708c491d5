package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"shiprelay/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderReconciliationJob *OrderReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	submitPendingHandler commands.SubmitPendingOrdersCommandHandler,
	gracePeriod time.Duration,
	schedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderReconciliationJob: NewOrderReconciliationJob(
			submitPendingHandler, gracePeriod, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start order reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderReconciliationJob.Stop()
}
