package chat_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"orderbot/internal/adapters/in/chat"
	"orderbot/internal/adapters/out/memory/sessionrepo"
	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/customer"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

var receiptDate = time.Date(2026, time.October, 15, 14, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return receiptDate }

// recordingLog keeps appended customer names in memory.
type recordingLog struct {
	mu    sync.Mutex
	names []string
}

func (l *recordingLog) Append(_ context.Context, formattedName string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.names = append(l.names, formattedName)
	return nil
}

func (l *recordingLog) Names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.names...)
}

// botStack wires a controller to real handlers over in-memory storage.
type botStack struct {
	controller   *chat.Controller
	sessions     *sessionrepo.InMemorySessionRepository
	newCustomers *recordingLog
}

func newBotStack(cat catalog.Catalog, dir customer.Directory) *botStack {
	logger := slog.New(slog.DiscardHandler)
	sessions := sessionrepo.NewInMemorySessionRepository()
	newCustomers := &recordingLog{}

	controller := chat.NewController(
		commands.NewStartOrderCommandHandler(sessions, dir, newCustomers, fixedClock, logger),
		commands.NewAddItemCommandHandler(sessions, cat, services.NewPriceResolver(), fixedClock),
		commands.NewCompleteOrderCommandHandler(sessions, services.NewSummaryRenderer(cat, dir, fixedClock), logger),
		commands.NewCancelOrderCommandHandler(sessions, logger),
		fixedClock,
		logger,
	)

	return &botStack{
		controller:   controller,
		sessions:     sessions,
		newCustomers: newCustomers,
	}
}

func defaultCatalog(t *testing.T) catalog.Catalog {
	t.Helper()

	flower, err := catalog.NewEntry("S755", "Blue Dream", map[kernel.Size]int64{
		kernel.SizeWhole:   300,
		kernel.SizeHalf:    160,
		kernel.SizeQuarter: 90,
	})
	require.NoError(t, err)

	sampler, err := catalog.NewEntry("Q100", "Sampler", map[kernel.Size]int64{
		kernel.SizeQuarter: 50,
	})
	require.NoError(t, err)

	return catalog.NewCatalog(flower, sampler)
}

func defaultDirectory(t *testing.T) customer.Directory {
	t.Helper()

	jane, err := customer.NewRecord("Jane Doe", "Jane D.", "1 Main St\nSpringfield", true)
	require.NoError(t, err)

	return customer.NewDirectory(jane)
}
