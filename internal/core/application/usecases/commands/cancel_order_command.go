package commands

import (
	"errors"

	"orderbot/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand discards the owner's session without a receipt.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	ownerID string

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(ownerID string) (CancelOrderCommand, error) {
	if ownerID == "" {
		return CancelOrderCommand{}, ErrOwnerIDIsRequired
	}

	return CancelOrderCommand{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OwnerID() string {
	return c.ownerID
}
