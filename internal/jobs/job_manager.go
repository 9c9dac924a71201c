package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderSweepJob      *StaleOrderSweepJob
	partnerLocationSweepJob *PartnerLocationSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	rejectStaleOrdersHandler commands.RejectStaleOrdersCommandHandler,
	locationRepo ports.LocationRepository,
	maxPendingAge time.Duration,
	maxLocationAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderSweepJob:      NewStaleOrderSweepJob(rejectStaleOrdersHandler, maxPendingAge, logger),
		partnerLocationSweepJob: NewPartnerLocationSweepJob(locationRepo, maxLocationAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order sweep job: %w", err)
	}

	if err := jm.partnerLocationSweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.staleOrderSweepJob.Stop()
		return fmt.Errorf("failed to start partner location sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.partnerLocationSweepJob.Stop()
	jm.staleOrderSweepJob.Stop()
}
