package jobs

import (
	"context"
	"log/slog"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BatchExpiryJob sweeps available storage batches past their best-before
// instant and transitions them to expired under the system actor.
// Runs every minute; a sweep that finds nothing overdue is a no-op.
type BatchExpiryJob struct {
	handler commands.ExpireStorageBatchesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBatchExpiryJob creates a new job for expiring overdue batches.
// Uses ExpireStorageBatchesCommandHandler to process the sweep every minute.
func NewBatchExpiryJob(handler commands.ExpireStorageBatchesCommandHandler, logger *slog.Logger) *BatchExpiryJob {
	return &BatchExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "batch_expiry_job"),
	}
}

// Start begins the expiry sweep to run every minute.
func (j *BatchExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireStorageBatchesCommand()

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Batch expiry sweep failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired overdue storage batches", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Batch expiry job started (running every minute)")
	return nil
}

// Stop stops the expiry sweep.
func (j *BatchExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Batch expiry job stopped")
}
