// Package jobs provides scheduled background tasks for the ordering system,
// built on github.com/robfig/cron/v3. Jobs are managed through JobManager,
// which offers a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(pruneHandler, retention, schedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	cartJanitorJob *CartJanitorJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	pruneStaleCartsHandler commands.PruneStaleCartsCommandHandler,
	cartRetention time.Duration,
	janitorSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		cartJanitorJob: NewCartJanitorJob(pruneStaleCartsHandler, cartRetention, janitorSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.cartJanitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start cart janitor job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cartJanitorJob.Stop()
}
