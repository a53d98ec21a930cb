package commands

import (
	"context"
	"log/slog"

	"orderbot/internal/core/domain/model/customer"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/core/ports"
)

// StartOrderResult describes the session that was opened.
type StartOrderResult struct {
	OrderID      kernel.UUID
	CustomerName string
	NewCustomer  bool
}

// StartOrderCommandHandler opens order sessions. Any previous unfinished
// session of the same owner is replaced, not merged.
//
// Customers missing from the directory are appended to the new-customer log
// once their session is stored.
// A failing log write is reported in the logs but never blocks the order.
type StartOrderCommandHandler struct {
	sessions     ports.SessionRepository
	directory    customer.Directory
	newCustomers ports.NewCustomerLog
	now          Clock
	logger       *slog.Logger
}

// NewStartOrderCommandHandler creates a handler for order start operations.
func NewStartOrderCommandHandler(
	sessions ports.SessionRepository,
	directory customer.Directory,
	newCustomers ports.NewCustomerLog,
	now Clock,
	logger *slog.Logger,
) StartOrderCommandHandler {
	return StartOrderCommandHandler{
		sessions:     sessions,
		directory:    directory,
		newCustomers: newCustomers,
		now:          now,
		logger:       logger.With("component", "start_order_handler"),
	}
}

// Handle processes the start order command.
func (h StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) (StartOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return StartOrderResult{}, err
	}

	session, err := order.NewSession(kernel.NewUUID(), cmd.OwnerID(), cmd.CustomerName(), h.now())
	if err != nil {
		return StartOrderResult{}, err
	}

	if err = h.sessions.Put(ctx, session); err != nil {
		return StartOrderResult{}, err
	}

	formatted := customer.FormatName(cmd.CustomerName())
	_, known := h.directory.Lookup(cmd.CustomerName())
	if !known {
		if err = h.newCustomers.Append(ctx, formatted); err != nil {
			h.logger.ErrorContext(ctx, "Failed to record new customer", "customer", formatted, "error", err)
		}
	}

	h.logger.InfoContext(ctx, "Order started",
		"order_id", session.ID().String(), "owner_id", cmd.OwnerID(), "new_customer", !known)

	return StartOrderResult{
		OrderID:      session.ID(),
		CustomerName: formatted,
		NewCustomer:  !known,
	}, nil
}
