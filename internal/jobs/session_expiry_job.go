package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderbot/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ConversationSweeper drops chat conversations left idle for too long.
type ConversationSweeper interface {
	ForgetIdle(ctx context.Context, idleFor time.Duration) int
}

// SessionExpiryJob periodically drops order sessions nobody has touched
// within the idle TTL. Chat conversations are kept for one more TTL so a user
// whose order expired is still told there is no active order.
type SessionExpiryJob struct {
	handler       commands.ExpireIdleSessionsCommandHandler
	conversations ConversationSweeper
	schedule      string
	idleFor       time.Duration
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewSessionExpiryJob creates a job running handler on schedule, a cron
// expression with a leading seconds field.
func NewSessionExpiryJob(
	handler commands.ExpireIdleSessionsCommandHandler,
	conversations ConversationSweeper,
	schedule string,
	idleFor time.Duration,
	logger *slog.Logger,
) *SessionExpiryJob {
	return &SessionExpiryJob{
		handler:       handler,
		conversations: conversations,
		schedule:      schedule,
		idleFor:       idleFor,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "session_expiry_job"),
	}
}

// Start validates the configuration and schedules the sweep.
func (j *SessionExpiryJob) Start() error {
	cmd, err := commands.NewExpireIdleSessionsCommand(j.idleFor)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() { j.Run(context.Background(), cmd) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session expiry job started",
		"schedule", j.schedule, "idle_ttl", j.idleFor.String())
	return nil
}

// Run performs one sweep.
func (j *SessionExpiryJob) Run(ctx context.Context, cmd commands.ExpireIdleSessionsCommand) {
	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session expiry job failed", "error", err)
	} else if removed > 0 {
		j.logger.InfoContext(ctx, "Idle sessions expired", "count", removed)
	}

	if forgotten := j.conversations.ForgetIdle(ctx, 2*cmd.IdleFor()); forgotten > 0 {
		j.logger.InfoContext(ctx, "Idle conversations forgotten", "count", forgotten)
	}
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *SessionExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session expiry job stopped")
}
