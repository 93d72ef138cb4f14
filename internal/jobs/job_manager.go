package jobs

import (
	"fmt"
	"log/slog"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	batchExpiryJob *BatchExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	expireBatchesHandler commands.ExpireStorageBatchesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		batchExpiryJob: NewBatchExpiryJob(expireBatchesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.batchExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start batch expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.batchExpiryJob.Stop()
}
