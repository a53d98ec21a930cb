package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/domain/services"

	"github.com/moby/locker"
)

const (
	commandStart  = "/start"
	commandCancel = "/cancel"

	keywordDone   = "DONE"
	keywordCancel = "CANCEL"
)

type (
	OrderStarter interface {
		Handle(ctx context.Context, cmd commands.StartOrderCommand) (commands.StartOrderResult, error)
	}

	ItemAdder interface {
		Handle(ctx context.Context, cmd commands.AddItemCommand) (commands.AddItemResult, error)
	}

	OrderCompleter interface {
		Handle(ctx context.Context, cmd commands.CompleteOrderCommand) (commands.CompleteOrderResult, error)
	}

	OrderCanceller interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}
)

// turnHandler processes one text in a given state and returns the reply and
// the next state.
type turnHandler func(ctx context.Context, userID, text string) (string, State, error)

// conversation is the non-idle state of one user and when it was last touched.
type conversation struct {
	state     State
	touchedAt time.Time
}

// Controller runs the order conversation of every chat user.
type Controller struct {
	starter   OrderStarter
	adder     ItemAdder
	completer OrderCompleter
	canceller OrderCanceller
	now       commands.Clock
	logger    *slog.Logger

	locks         *locker.Locker
	stateMu       sync.Mutex
	conversations map[string]conversation
	turns         map[State]turnHandler
}

// NewController creates a controller with every user idle.
func NewController(
	starter OrderStarter,
	adder ItemAdder,
	completer OrderCompleter,
	canceller OrderCanceller,
	now commands.Clock,
	logger *slog.Logger,
) *Controller {
	c := &Controller{
		starter:       starter,
		adder:         adder,
		completer:     completer,
		canceller:     canceller,
		now:           now,
		logger:        logger.With("component", "chat_controller"),
		locks:         locker.New(),
		conversations: make(map[string]conversation),
	}
	c.turns = map[State]turnHandler{
		StateIdle:                 c.handleIdle,
		StateAwaitingCustomerName: c.handleCustomerName,
		StateAwaitingItem:         c.handleItem,
	}
	return c
}

// Handle processes one inbound text of userID. An empty reply means the
// bot stays silent. On error the user's state is left unchanged.
func (c *Controller) Handle(ctx context.Context, userID, text string) (string, error) {
	if userID == "" {
		return "", commands.ErrOwnerIDIsRequired
	}

	c.locks.Lock(userID)
	defer c.locks.Unlock(userID) //nolint:errcheck // the lock is always held here

	current := c.State(userID)

	var (
		reply string
		next  State
		err   error
	)
	if command, ok := parseCommand(text); ok {
		reply, next, err = c.handleCommand(ctx, userID, command, current)
	} else {
		reply, next, err = c.turns[current](ctx, userID, text)
	}
	if err != nil {
		c.logger.ErrorContext(ctx, "Chat turn failed", "user_id", userID, "state", current.String(), "error", err)
		return "", err
	}

	if next != current {
		c.logger.DebugContext(ctx, "Conversation state changed",
			"user_id", userID, "from", current.String(), "to", next.String())
	}
	c.setState(userID, next)
	return reply, nil
}

// State returns the conversation state of userID.
func (c *Controller) State(userID string) State {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()

	return c.conversations[userID].state
}

// ForgetIdle returns every conversation untouched for longer than idleFor
// to the idle state and reports how many were dropped.
func (c *Controller) ForgetIdle(ctx context.Context, idleFor time.Duration) int {
	cutoff := c.now().Add(-idleFor)

	c.stateMu.Lock()
	defer c.stateMu.Unlock()

	forgotten := 0
	for userID, conv := range c.conversations {
		if conv.touchedAt.Before(cutoff) {
			delete(c.conversations, userID)
			forgotten++
		}
	}

	if forgotten > 0 {
		c.logger.DebugContext(ctx, "Idle conversations forgotten", "count", forgotten)
	}
	return forgotten
}

func (c *Controller) setState(userID string, s State) {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()

	if s == StateIdle {
		delete(c.conversations, userID)
		return
	}
	c.conversations[userID] = conversation{state: s, touchedAt: c.now()}
}

// parseCommand returns the lower-cased leading slash command of text.
// A bot mention suffix such as /start@order_bot is dropped.
func parseCommand(text string) (string, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", false
	}

	command, _, _ := strings.Cut(strings.ToLower(fields[0]), "@")
	return command, true
}

func (c *Controller) handleCommand(ctx context.Context, userID, command string, current State) (string, State, error) {
	switch command {
	case commandStart:
		return replyWelcome, StateAwaitingCustomerName, nil
	case commandCancel:
		if current == StateIdle {
			return "", StateIdle, nil
		}
		return c.cancel(ctx, userID)
	default:
		return "", current, nil
	}
}

func (c *Controller) handleIdle(context.Context, string, string) (string, State, error) {
	return "", StateIdle, nil
}

func (c *Controller) handleCustomerName(ctx context.Context, userID, text string) (string, State, error) {
	cmd, err := commands.NewStartOrderCommand(userID, text)
	if errors.Is(err, commands.ErrCustomerNameIsRequired) {
		return replyInvalidCustomerName, StateAwaitingCustomerName, nil
	}
	if err != nil {
		return "", StateAwaitingCustomerName, err
	}

	result, err := c.starter.Handle(ctx, cmd)
	if err != nil {
		return "", StateAwaitingCustomerName, err
	}

	return replyOrderStarted(result.CustomerName), StateAwaitingItem, nil
}

func (c *Controller) handleItem(ctx context.Context, userID, text string) (string, State, error) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case keywordDone:
		return c.complete(ctx, userID)
	case keywordCancel:
		return c.cancel(ctx, userID)
	}

	cmd, err := commands.NewAddItemCommand(userID, text)
	if errors.Is(err, commands.ErrMalformedItemLine) {
		return replyInvalidFormat, StateAwaitingItem, nil
	}
	if err != nil {
		return "", StateAwaitingItem, err
	}

	result, err := c.adder.Handle(ctx, cmd)
	var sizeErr *services.NoSuitableSizeError
	switch {
	case err == nil:
		return replyItemAdded(result), StateAwaitingItem, nil
	case errors.Is(err, commands.ErrUnknownItemCode):
		return replyUnknownItemCode(cmd.Code()), StateAwaitingItem, nil
	case errors.Is(err, commands.ErrInvalidQuantity):
		return replyInvalidQuantity, StateAwaitingItem, nil
	case errors.As(err, &sizeErr):
		return replyNoSuitableSize(sizeErr.Quantity), StateAwaitingItem, nil
	case errors.Is(err, commands.ErrNoActiveOrder):
		return replyNoActiveOrder, StateIdle, nil
	default:
		return "", StateAwaitingItem, err
	}
}

func (c *Controller) complete(ctx context.Context, userID string) (string, State, error) {
	cmd, err := commands.NewCompleteOrderCommand(userID)
	if err != nil {
		return "", StateAwaitingItem, err
	}

	result, err := c.completer.Handle(ctx, cmd)
	if errors.Is(err, commands.ErrNoActiveOrder) {
		return replyNoActiveOrder, StateIdle, nil
	}
	if err != nil {
		return "", StateAwaitingItem, err
	}

	return result.Summary, StateIdle, nil
}

func (c *Controller) cancel(ctx context.Context, userID string) (string, State, error) {
	cmd, err := commands.NewCancelOrderCommand(userID)
	if err != nil {
		return "", StateAwaitingItem, err
	}

	if err = c.canceller.Handle(ctx, cmd); err != nil {
		return "", StateAwaitingItem, err
	}

	return replyOrderCancelled, StateIdle, nil
}
