package commands

import (
	"errors"
	"strings"

	"orderbot/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
	ErrMalformedItemLine = errors.New("item line must be ITEMCODE QUANTITY")
)

// AddItemCommand adds one "ITEMCODE QUANTITY" line to the owner's session.
// The line is trimmed and upper-cased before it is split, so "s755 1" and
// " S755   1 " are the same request.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	ownerID     string
	code        string
	rawQuantity string

	guard guard.ConstructorGuard
}

// NewAddItemCommand parses line into an item code and a raw quantity.
// Returns ErrMalformedItemLine unless line holds exactly two tokens.
func NewAddItemCommand(ownerID, line string) (AddItemCommand, error) {
	cmd := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setLine(line),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OwnerID returns the chat user adding the item.
func (c AddItemCommand) OwnerID() string {
	return c.ownerID
}

// Code returns the upper-cased item code token.
func (c AddItemCommand) Code() string {
	return c.code
}

// RawQuantity returns the unparsed quantity token.
func (c AddItemCommand) RawQuantity() string {
	return c.rawQuantity
}

func (c *AddItemCommand) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return ErrOwnerIDIsRequired
	}

	c.ownerID = ownerID
	return nil
}

func (c *AddItemCommand) setLine(line string) error {
	fields := strings.Fields(strings.ToUpper(strings.TrimSpace(line)))
	if len(fields) != 2 {
		return ErrMalformedItemLine
	}

	c.code = fields[0]
	c.rawQuantity = fields[1]
	return nil
}
