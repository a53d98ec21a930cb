// Package commands contains the operations that change order sessions.
// Every command follows the same pattern: a validated command value built by
// its constructor and a handler that applies it through the ports.
package commands

import (
	"time"

	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type (
	// Clock returns the current time. Handlers take it as a dependency so
	// tests can pin receipt dates and idle cutoffs.
	Clock func() time.Time

	// PriceResolver picks the package size and line total for a quantity.
	PriceResolver interface {
		Resolve(entry catalog.Entry, quantity kernel.Quantity) (kernel.Size, decimal.Decimal, error)
	}

	// SummaryRenderer renders the receipt of a finished session.
	SummaryRenderer interface {
		Render(session *order.Session) string
	}
)
