package commands

import (
	"errors"
	"strings"

	"orderbot/internal/pkg/guard"
)

var (
	ErrStartOrderCommandIsNotConstructed = errors.New(
		"StartOrderCommand must be created via NewStartOrderCommand constructor",
	)
	ErrOwnerIDIsRequired      = errors.New("owner id is required")
	ErrCustomerNameIsRequired = errors.New("customer name is required")
)

// StartOrderCommand opens a new order session for a chat user.
//
// Example:
//
//	cmd, err := NewStartOrderCommand("42", "jane doe")
//	if errors.Is(err, ErrCustomerNameIsRequired) {
//	    // re-prompt for the customer name
//	}
type StartOrderCommand struct { //nolint:recvcheck //using for validation
	ownerID      string
	customerName string

	guard guard.ConstructorGuard
}

// NewStartOrderCommand validates that both the owner and a non-blank
// customer name are present. The name is stored trimmed.
func NewStartOrderCommand(ownerID, customerName string) (StartOrderCommand, error) {
	cmd := StartOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setCustomerName(customerName),
	); err != nil {
		return StartOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}

// OwnerID returns the chat user starting the order.
func (c StartOrderCommand) OwnerID() string {
	return c.ownerID
}

// CustomerName returns the trimmed, unformatted customer name.
func (c StartOrderCommand) CustomerName() string {
	return c.customerName
}

func (c *StartOrderCommand) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return ErrOwnerIDIsRequired
	}

	c.ownerID = ownerID
	return nil
}

func (c *StartOrderCommand) setCustomerName(customerName string) error {
	trimmed := strings.TrimSpace(customerName)
	if trimmed == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = trimmed
	return nil
}
