package ports

import "context"

// NewCustomerLog is the append-only sink of customer names that were not
// found in the customer directory when an order was started.
//
// Entries are not deduplicated: a customer who orders twice before being
// added to the directory is recorded twice.
type NewCustomerLog interface {
	Append(ctx context.Context, formattedName string) error
}
