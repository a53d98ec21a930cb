// Package kernel provides the shared value objects of the order bot domain.
//
// The package includes:
//   - UUID: identifier assigned to every order session
//   - Size: the package size tiers (1.0, 0.5, 0.25) that key an item's price table
//   - Quantity: a positive, finite amount of product as typed by the operator
//
// All values are immutable and safe for concurrent use.
package kernel
