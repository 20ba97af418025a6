package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleDraftExpirationJob cancels draft orders that have not been touched
// for longer than the configured TTL. Runs hourly; a missed run only delays
// expiration, it never loses it.
type StaleDraftExpirationJob struct {
	handler  commands.ExpireStaleDraftsCommandHandler
	draftTTL time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleDraftExpirationJob creates a new job for expiring stale drafts.
// draftTTL is how long a draft may stay untouched before it is cancelled.
func NewStaleDraftExpirationJob(
	handler commands.ExpireStaleDraftsCommandHandler,
	draftTTL time.Duration,
	logger *slog.Logger,
) *StaleDraftExpirationJob {
	return &StaleDraftExpirationJob{
		handler:  handler,
		draftTTL: draftTTL,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_draft_expiration_job"),
	}
}

// Start begins the expiration job to run at the top of every hour.
func (j *StaleDraftExpirationJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cutoff := time.Now().UTC().Add(-j.draftTTL)
		cmd, err := commands.NewExpireStaleDraftsCommand(cutoff)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale draft expiration job misconfigured", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale draft expiration job failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale draft orders", "count", expired, "cutoff", cutoff)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale draft expiration job started (running hourly)")
	return nil
}

// Stop stops the expiration job.
func (j *StaleDraftExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale draft expiration job stopped")
}
