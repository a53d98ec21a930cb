package commands

import (
	"context"
	"errors"
	"log/slog"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/ports"
	"orderbot/internal/pkg/errs"
)

// CompleteOrderResult carries the rendered receipt of a finished order.
type CompleteOrderResult struct {
	OrderID kernel.UUID
	Summary string
}

// CompleteOrderCommandHandler removes the owner's session from the registry,
// marks it completed and renders its receipt. Returns ErrNoActiveOrder when
// the owner has no live session.
type CompleteOrderCommandHandler struct {
	sessions ports.SessionRepository
	renderer SummaryRenderer
	logger   *slog.Logger
}

func NewCompleteOrderCommandHandler(
	sessions ports.SessionRepository,
	renderer SummaryRenderer,
	logger *slog.Logger,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		sessions: sessions,
		renderer: renderer,
		logger:   logger.With("component", "complete_order_handler"),
	}
}

// Handle processes the complete order command.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (CompleteOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompleteOrderResult{}, err
	}

	session, err := h.sessions.Take(ctx, cmd.OwnerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return CompleteOrderResult{}, ErrNoActiveOrder
	}
	if err != nil {
		return CompleteOrderResult{}, err
	}

	if err = session.Complete(); err != nil {
		return CompleteOrderResult{}, err
	}

	summary := h.renderer.Render(session)

	h.logger.InfoContext(ctx, "Order completed",
		"order_id", session.ID().String(),
		"owner_id", cmd.OwnerID(),
		"items", len(session.Items()),
		"subtotal", session.Subtotal().String(),
	)

	return CompleteOrderResult{
		OrderID: session.ID(),
		Summary: summary,
	}, nil
}
