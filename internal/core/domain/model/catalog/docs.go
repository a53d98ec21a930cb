// Package catalog models the shop's item catalog: every sellable item code
// with its display name and a per-unit price for each package size it is
// sold in.
//
// Key business rules:
//   - Item codes are canonicalised to trimmed upper case
//   - Every entry prices at least one size tier
//   - The catalog is built once at startup and never mutated afterwards
package catalog
