package commands

import (
	"errors"

	"orderbot/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand finishes the owner's session and asks for its receipt.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	ownerID string

	guard guard.ConstructorGuard
}

func NewCompleteOrderCommand(ownerID string) (CompleteOrderCommand, error) {
	if ownerID == "" {
		return CompleteOrderCommand{}, ErrOwnerIDIsRequired
	}

	return CompleteOrderCommand{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) OwnerID() string {
	return c.ownerID
}
