// Package customer models the customer directory consulted when an order is
// started and when its receipt is rendered.
//
// Customers are keyed by lower-cased name. A name that is not in the
// directory belongs to a new customer; that is a valid state, not an error.
package customer
