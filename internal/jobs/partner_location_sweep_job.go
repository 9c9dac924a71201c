package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodmarket/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PartnerLocationSweepJob drops delivery partner positions that stopped
// being reported. Partners without a fresh position fall out of proximity
// matching until they report again.
type PartnerLocationSweepJob struct {
	locationRepo ports.LocationRepository
	maxAge       time.Duration
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewPartnerLocationSweepJob creates a job removing positions older than
// maxAge.
func NewPartnerLocationSweepJob(
	locationRepo ports.LocationRepository,
	maxAge time.Duration,
	logger *slog.Logger,
) *PartnerLocationSweepJob {
	return &PartnerLocationSweepJob{
		locationRepo: locationRepo,
		maxAge:       maxAge,
		cron:         cron.New(),
		logger:       logger.With("component", "partner_location_sweep_job"),
	}
}

// Start begins the location sweep to run every minute.
func (j *PartnerLocationSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		removed, sweepErr := j.locationRepo.DeleteStalePartnerLocations(ctx, time.Now().Add(-j.maxAge))
		if sweepErr != nil {
			j.logger.ErrorContext(ctx, "Partner location sweep failed", "error", sweepErr)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Removed stale partner locations", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Partner location sweep started",
		"max_age", j.maxAge)
	return nil
}

// Stop stops the location sweep.
func (j *PartnerLocationSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Partner location sweep stopped")
}
