package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodmarket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderSweepJob rejects orders that restaurants left pending past the
// response deadline. Runs every minute so customers are not kept waiting on
// an unresponsive restaurant much longer than the configured age.
type StaleOrderSweepJob struct {
	handler       commands.RejectStaleOrdersCommandHandler
	maxPendingAge time.Duration
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewStaleOrderSweepJob creates a job rejecting orders pending longer than
// maxPendingAge.
func NewStaleOrderSweepJob(
	handler commands.RejectStaleOrdersCommandHandler,
	maxPendingAge time.Duration,
	logger *slog.Logger,
) *StaleOrderSweepJob {
	return &StaleOrderSweepJob{
		handler:       handler,
		maxPendingAge: maxPendingAge,
		cron:          cron.New(),
		logger:        logger.With("component", "stale_order_sweep_job"),
	}
}

// Start begins the stale order sweep to run every minute.
func (j *StaleOrderSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRejectStaleOrdersCommand(j.maxPendingAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep misconfigured", "error", cmdErr)
			return
		}

		rejected, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", handleErr)
			return
		}

		if rejected > 0 {
			j.logger.InfoContext(ctx, "Rejected stale pending orders", "count", rejected)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order sweep started",
		"max_pending_age", j.maxPendingAge)
	return nil
}

// Stop stops the stale order sweep.
func (j *StaleOrderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order sweep stopped")
}
