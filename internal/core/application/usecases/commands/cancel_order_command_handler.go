package commands

import (
	"context"
	"errors"
	"log/slog"

	"orderbot/internal/core/ports"
	"orderbot/internal/pkg/errs"
)

// CancelOrderCommandHandler discards the owner's session. Cancelling when
// there is nothing to cancel succeeds silently.
type CancelOrderCommandHandler struct {
	sessions ports.SessionRepository
	logger   *slog.Logger
}

func NewCancelOrderCommandHandler(sessions ports.SessionRepository, logger *slog.Logger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		sessions: sessions,
		logger:   logger.With("component", "cancel_order_handler"),
	}
}

// Handle processes the cancel order command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session, err := h.sessions.Take(ctx, cmd.OwnerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = session.Cancel(); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Order cancelled",
		"order_id", session.ID().String(), "owner_id", cmd.OwnerID())

	return nil
}
