package commands

import (
	"context"
	"errors"
	"fmt"

	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/core/ports"
	"orderbot/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownItemCode = errors.New("item code not recognized")
	ErrInvalidQuantity = errors.New("quantity must be a positive number")
	ErrNoActiveOrder   = errors.New("no active order")
)

// AddItemResult describes the line item that was appended.
type AddItemResult struct {
	Code     string
	Quantity kernel.Quantity
	Size     kernel.Size
	Total    decimal.Decimal
}

// AddItemCommandHandler validates an item line against the catalog, prices
// it and appends it to the owner's session. A rejected line leaves the
// session untouched.
//
// Checks run in this order, and the first failure is returned:
//   - ErrUnknownItemCode when the code is not in the catalog
//   - ErrInvalidQuantity when the quantity is not a positive finite number
//   - services.ErrNoSuitableSize when no priced size fits the quantity
//   - ErrNoActiveOrder when the owner has no live session
type AddItemCommandHandler struct {
	sessions ports.SessionRepository
	catalog  catalog.Catalog
	resolver PriceResolver
	now      Clock
}

// NewAddItemCommandHandler creates a handler for item entry operations.
func NewAddItemCommandHandler(
	sessions ports.SessionRepository,
	cat catalog.Catalog,
	resolver PriceResolver,
	now Clock,
) AddItemCommandHandler {
	return AddItemCommandHandler{
		sessions: sessions,
		catalog:  cat,
		resolver: resolver,
		now:      now,
	}
}

// Handle processes the add item command.
func (h AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) (AddItemResult, error) {
	if err := cmd.Validate(); err != nil {
		return AddItemResult{}, err
	}

	entry, ok := h.catalog.Lookup(cmd.Code())
	if !ok {
		return AddItemResult{}, fmt.Errorf("%w: %s", ErrUnknownItemCode, cmd.Code())
	}

	quantity, err := kernel.ParseQuantity(cmd.RawQuantity())
	if err != nil {
		return AddItemResult{}, fmt.Errorf("%w: %w", ErrInvalidQuantity, err)
	}

	size, total, err := h.resolver.Resolve(entry, quantity)
	if err != nil {
		return AddItemResult{}, err
	}

	item, err := order.NewLineItem(entry.Code(), quantity, size, total)
	if err != nil {
		return AddItemResult{}, err
	}

	err = h.sessions.Update(ctx, cmd.OwnerID(), func(s *order.Session) error {
		return s.AddItem(item, h.now())
	})
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AddItemResult{}, ErrNoActiveOrder
	}
	if err != nil {
		return AddItemResult{}, err
	}

	return AddItemResult{
		Code:     item.Code(),
		Quantity: item.Quantity(),
		Size:     item.Size(),
		Total:    item.Total(),
	}, nil
}
