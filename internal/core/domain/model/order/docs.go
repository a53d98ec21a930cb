// Package order provides the order session aggregate: the per-operator,
// in-progress order that accumulates priced line items until it is
// completed or cancelled.
//
// The package includes:
//   - Session: the aggregate root holding the customer name and line items
//   - LineItem: one priced item-code/quantity entry, immutable once created
//   - Status: the session lifecycle Open -> Completed | Cancelled
//
// Key business rules:
//   - Line items keep their insertion order, which is the receipt order
//   - Items can only be added while the session is Open
//   - Completed and Cancelled are final states
package order
