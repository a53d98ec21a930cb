package commands_test

import (
	"context"
	"log/slog"
	"time"

	"orderbot/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Put(ctx context.Context, s *order.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// Update runs fn against the session configured as the first return value.
func (m *MockSessionRepository) Update(ctx context.Context, ownerID string, fn func(s *order.Session) error) error {
	args := m.Called(ctx, ownerID)
	if s, ok := args.Get(0).(*order.Session); ok {
		if err := fn(s); err != nil {
			return err
		}
	}
	return args.Error(1)
}

func (m *MockSessionRepository) Take(ctx context.Context, ownerID string) (*order.Session, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Session), args.Error(1)
}

func (m *MockSessionRepository) RemoveIdle(ctx context.Context, cutoff time.Time) ([]*order.Session, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Session), args.Error(1)
}

type MockNewCustomerLog struct{ mock.Mock }

func (m *MockNewCustomerLog) Append(ctx context.Context, formattedName string) error {
	args := m.Called(ctx, formattedName)
	return args.Error(0)
}

type MockSummaryRenderer struct{ mock.Mock }

func (m *MockSummaryRenderer) Render(s *order.Session) string {
	args := m.Called(s)
	return args.String(0)
}

var fixedNow = time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

func clock() time.Time {
	return fixedNow
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
