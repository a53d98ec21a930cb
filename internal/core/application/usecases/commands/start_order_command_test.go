package commands_test

import (
	"errors"
	"testing"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/domain/model/customer"
	"orderbot/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewStartOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewStartOrderCommand("42", "  jane doe ")
	require.NoError(t, err)
	assert.Equal(t, "42", cmd.OwnerID())
	assert.Equal(t, "jane doe", cmd.CustomerName())
	require.NoError(t, cmd.Validate())
}

func TestNewStartOrderCommand_BlankName(t *testing.T) {
	_, err := commands.NewStartOrderCommand("42", "   ")
	require.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
}

func TestNewStartOrderCommand_MissingOwnerAndName(t *testing.T) {
	_, err := commands.NewStartOrderCommand("", "")
	require.ErrorIs(t, err, commands.ErrOwnerIDIsRequired)
	require.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
}

func knownDirectory(t *testing.T) customer.Directory {
	t.Helper()

	rec, err := customer.NewRecord("Jane Doe", "Jane D.", "1 Main St\nSpringfield", true)
	require.NoError(t, err)
	return customer.NewDirectory(rec)
}

func TestStartOrderCommandHandler_Handle_KnownCustomer(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewStartOrderCommand("42", "jane doe")
	require.NoError(t, err)

	sessions := new(MockSessionRepository)
	sessions.On("Put", ctx, mock.MatchedBy(func(s *order.Session) bool {
		return s.OwnerID() == "42" && s.CustomerName() == "jane doe" && s.TouchedAt().Equal(fixedNow)
	})).Return(nil).Once()
	newCustomers := new(MockNewCustomerLog)

	handler := commands.NewStartOrderCommandHandler(sessions, knownDirectory(t), newCustomers, clock, discardLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", result.CustomerName)
	assert.False(t, result.NewCustomer)
	require.NoError(t, result.OrderID.Validate())
	sessions.AssertExpectations(t)
	newCustomers.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestStartOrderCommandHandler_Handle_NewCustomerIsLogged(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewStartOrderCommand("7", "bob smith")
	require.NoError(t, err)

	sessions := new(MockSessionRepository)
	sessions.On("Put", ctx, mock.AnythingOfType("*order.Session")).Return(nil).Once()
	newCustomers := new(MockNewCustomerLog)
	newCustomers.On("Append", ctx, "Bob Smith").Return(nil).Once()

	handler := commands.NewStartOrderCommandHandler(sessions, knownDirectory(t), newCustomers, clock, discardLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Bob Smith", result.CustomerName)
	assert.True(t, result.NewCustomer)
	sessions.AssertExpectations(t)
	newCustomers.AssertExpectations(t)
}

func TestStartOrderCommandHandler_Handle_LogFailureDoesNotBlock(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewStartOrderCommand("7", "bob smith")
	require.NoError(t, err)

	sessions := new(MockSessionRepository)
	sessions.On("Put", ctx, mock.AnythingOfType("*order.Session")).Return(nil).Once()
	newCustomers := new(MockNewCustomerLog)
	newCustomers.On("Append", ctx, "Bob Smith").Return(errors.New("disk full")).Once()

	handler := commands.NewStartOrderCommandHandler(sessions, customer.NewDirectory(), newCustomers, clock, discardLogger())
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	sessions.AssertExpectations(t)
}

func TestStartOrderCommandHandler_Handle_PutError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewStartOrderCommand("42", "jane doe")
	require.NoError(t, err)

	sessions := new(MockSessionRepository)
	sessions.On("Put", ctx, mock.AnythingOfType("*order.Session")).Return(errors.New("put error")).Once()

	handler := commands.NewStartOrderCommandHandler(
		sessions, knownDirectory(t), new(MockNewCustomerLog), clock, discardLogger(),
	)
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "put error")
}

func TestStartOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	sessions := new(MockSessionRepository)

	handler := commands.NewStartOrderCommandHandler(
		sessions, customer.NewDirectory(), new(MockNewCustomerLog), clock, discardLogger(),
	)
	_, err := handler.Handle(ctx, commands.StartOrderCommand{})

	require.ErrorIs(t, err, commands.ErrStartOrderCommandIsNotConstructed)
	sessions.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestStartOrderCommandHandler_Handle_PutErrorSkipsNewCustomerLog(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewStartOrderCommand("7", "bob smith")
	require.NoError(t, err)

	sessions := new(MockSessionRepository)
	sessions.On("Put", ctx, mock.AnythingOfType("*order.Session")).Return(errors.New("put error")).Once()
	newCustomers := new(MockNewCustomerLog)

	handler := commands.NewStartOrderCommandHandler(sessions, customer.NewDirectory(), newCustomers, clock, discardLogger())
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "put error")
	newCustomers.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}
