package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CartJanitorJob periodically removes cart lines that have sat untouched
// longer than the retention window. Abandoned carts hold price captures that
// grow stale, so they expire instead of lingering forever.
type CartJanitorJob struct {
	handler   commands.PruneStaleCartsCommandHandler
	retention time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCartJanitorJob creates the cart cleanup job. The schedule is a standard
// cron expression with a seconds field; retention is how long a line may stay
// in a cart before it is pruned.
func NewCartJanitorJob(
	handler commands.PruneStaleCartsCommandHandler,
	retention time.Duration,
	schedule string,
	logger *slog.Logger,
) *CartJanitorJob {
	return &CartJanitorJob{
		handler:   handler,
		retention: retention,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "cart_janitor_job"),
	}
}

// Start begins the scheduled cleanup runs.
func (j *CartJanitorJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPruneStaleCartsCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Cart janitor misconfigured", "error", cmdErr)
			return
		}

		pruned, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Cart janitor run failed", "error", handleErr)
			return
		}

		if pruned > 0 {
			j.logger.InfoContext(ctx, "Pruned stale cart lines", "count", pruned)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart janitor job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// Stop stops the scheduled cleanup runs.
func (j *CartJanitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart janitor job stopped")
}
