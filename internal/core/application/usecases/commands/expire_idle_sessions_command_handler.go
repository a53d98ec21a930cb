package commands

import (
	"context"
	"log/slog"

	"orderbot/internal/core/ports"
)

// ExpireIdleSessionsCommandHandler cancels and removes stale sessions and
// returns how many were removed.
type ExpireIdleSessionsCommandHandler struct {
	sessions ports.SessionRepository
	now      Clock
	logger   *slog.Logger
}

func NewExpireIdleSessionsCommandHandler(
	sessions ports.SessionRepository,
	now Clock,
	logger *slog.Logger,
) ExpireIdleSessionsCommandHandler {
	return ExpireIdleSessionsCommandHandler{
		sessions: sessions,
		now:      now,
		logger:   logger.With("component", "expire_idle_sessions_handler"),
	}
}

// Handle processes the expire idle sessions command.
func (h ExpireIdleSessionsCommandHandler) Handle(ctx context.Context, cmd ExpireIdleSessionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := h.now().Add(-cmd.IdleFor())
	removed, err := h.sessions.RemoveIdle(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, s := range removed {
		if err = s.Cancel(); err != nil {
			h.logger.WarnContext(ctx, "Expired session was not open",
				"order_id", s.ID().String(), "status", s.Status().String())
			continue
		}
		h.logger.InfoContext(ctx, "Idle order expired",
			"order_id", s.ID().String(), "owner_id", s.OwnerID(), "touched_at", s.TouchedAt())
	}

	return len(removed), nil
}
