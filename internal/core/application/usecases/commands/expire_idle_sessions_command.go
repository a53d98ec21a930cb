package commands

import (
	"errors"
	"time"

	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"
)

var ErrExpireIdleSessionsCommandIsNotConstructed = errors.New(
	"ExpireIdleSessionsCommand must be created via NewExpireIdleSessionsCommand constructor",
)

// ExpireIdleSessionsCommand drops sessions that have not been touched for
// longer than idleFor.
type ExpireIdleSessionsCommand struct { //nolint:recvcheck //using for validation
	idleFor time.Duration

	guard guard.ConstructorGuard
}

func NewExpireIdleSessionsCommand(idleFor time.Duration) (ExpireIdleSessionsCommand, error) {
	if idleFor <= 0 {
		return ExpireIdleSessionsCommand{}, errs.NewValueIsInvalidError("idleFor")
	}

	return ExpireIdleSessionsCommand{
		idleFor: idleFor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireIdleSessionsCommand) Validate() error {
	return c.guard.Validate(ErrExpireIdleSessionsCommandIsNotConstructed)
}

func (c ExpireIdleSessionsCommand) IdleFor() time.Duration {
	return c.idleFor
}
