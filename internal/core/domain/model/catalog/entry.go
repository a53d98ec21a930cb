package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"
)

var (
	// ErrEntryIsNotConstructed is returned when a zero-value Entry is used.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")
	// ErrEntryHasNoPrices is returned when an entry would price no size at all.
	ErrEntryHasNoPrices = errors.New("entry must price at least one size")
)

// Entry is one catalog item. Entries are immutable value objects: the price
// map is copied on construction and never exposed.
//
// Entry follows these invariants:
//   - Code is non-empty and canonical (see NormalizeCode)
//   - At least one size is priced
//   - Prices are whole dollars and never negative
//   - Can only be created through NewEntry
//
// Example:
//
//	entry, err := catalog.NewEntry("s755", "Widget", map[kernel.Size]int64{
//	    kernel.SizeWhole: 20,
//	})
//	// entry.Code() == "S755"
type Entry struct { //nolint:recvcheck //using for validation
	// code is the canonical, upper-cased item code
	code string

	// name is printed on receipts; it may be empty
	name string

	// prices maps each sold size to its unit price in dollars
	prices map[kernel.Size]int64

	// guard ensures the entry was created via NewEntry
	guard guard.ConstructorGuard
}

// NewEntry validates and builds a catalog entry.
//
// Parameters:
//   - code: item code as written in the catalog file, canonicalised with NormalizeCode
//   - name: display name, may be empty
//   - prices: unit price per size; sizes missing from the map are not sold
//
// Returns:
//   - Entry: the constructed entry
//   - error: ErrEntryHasNoPrices, a required-value error for a blank code, or
//     an invalid-value error for a negative price, joined together
func NewEntry(code, name string, prices map[kernel.Size]int64) (Entry, error) {
	entry := Entry{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(entry.setCode(code), entry.setPrices(prices)); err != nil {
		return Entry{}, err
	}

	return entry, nil
}

// Validate ensures the entry was created through NewEntry.
//
// Returns:
//   - nil if the entry is valid
//   - ErrEntryIsNotConstructed for a zero-value Entry
func (e Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// Code returns the canonical item code.
func (e Entry) Code() string {
	return e.code
}

// Name returns the display name printed on receipts.
func (e Entry) Name() string {
	return e.name
}

// Price returns the unit price for size and whether that size is sold.
//
// Parameters:
//   - size: the tier to look up
//
// Returns:
//   - int64: unit price in dollars, zero when the size is not sold
//   - bool: false when the catalog row left that size blank
//
// Example:
//
//	if price, ok := entry.Price(kernel.SizeHalf); ok {
//	    total := decimal.NewFromInt(price).Mul(decimal.NewFromFloat(qty.Float64()))
//	}
func (e Entry) Price(size kernel.Size) (int64, bool) {
	price, ok := e.prices[size]
	return price, ok
}

// Sizes returns the priced sizes in ascending order, smallest tier first.
// The price resolver walks them to find the best fitting tier.
func (e Entry) Sizes() []kernel.Size {
	sizes := make([]kernel.Size, 0, len(e.prices))
	for size := range e.prices {
		sizes = append(sizes, size)
	}
	slices.Sort(sizes)
	return sizes
}

func (e *Entry) setCode(code string) error {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return errs.NewValueIsRequiredError("code")
	}

	e.code = normalized
	return nil
}

func (e *Entry) setPrices(prices map[kernel.Size]int64) error {
	if len(prices) == 0 {
		return ErrEntryHasNoPrices
	}

	copied := make(map[kernel.Size]int64, len(prices))
	for size, price := range prices {
		if err := size.Validate(); err != nil {
			return err
		}
		if price < 0 {
			return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", price))
		}
		copied[size] = price
	}

	e.prices = copied
	return nil
}

// NormalizeCode returns the canonical form of an item code as typed by an
// operator: surrounding whitespace removed and upper-cased, so " s755" and
// "S755" name the same entry.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
