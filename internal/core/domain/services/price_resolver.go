package services

import (
	"errors"
	"fmt"

	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ErrNoSuitableSize is the sentinel wrapped by NoSuitableSizeError.
var ErrNoSuitableSize = errors.New("no suitable size available")

// NoSuitableSizeError reports a quantity that no priced size can serve.
type NoSuitableSizeError struct {
	Quantity kernel.Quantity
}

func (e *NoSuitableSizeError) Error() string {
	return fmt.Sprintf("%s for quantity %s", ErrNoSuitableSize, e.Quantity)
}

func (e *NoSuitableSizeError) Unwrap() error {
	return ErrNoSuitableSize
}

// PriceResolver determines the package size a quantity is sold at and the
// resulting line total.
//
// Selection algorithm:
//   - Classify the quantity into its nominal tier with kernel.NominalSize
//   - Use the tier's price if the entry sells that size
//   - Otherwise take the smallest priced size strictly larger than the tier
//   - Fail with NoSuitableSizeError when neither exists
//
// The total is always proportional: price(size) * quantity / size. A request
// for 0.9 units of an item only sold whole is charged 0.9 of the unit price,
// not rounded up to a whole package.
//
// Example:
//
//	resolver := NewPriceResolver()
//	size, total, err := resolver.Resolve(widget, half) // widget sells 1.0 @ 20
//	// size == kernel.SizeWhole, total == 10
type PriceResolver struct{}

// NewPriceResolver creates a PriceResolver.
func NewPriceResolver() PriceResolver {
	return PriceResolver{}
}

// Resolve returns the chosen size and the unrounded line total.
func (r PriceResolver) Resolve(entry catalog.Entry, quantity kernel.Quantity) (kernel.Size, decimal.Decimal, error) {
	if err := errors.Join(entry.Validate(), quantity.Validate()); err != nil {
		return 0, decimal.Zero, err
	}

	size, price, ok := r.findSize(entry, kernel.NominalSize(quantity.Float64()))
	if !ok {
		return 0, decimal.Zero, &NoSuitableSizeError{Quantity: quantity}
	}

	packages := decimal.NewFromFloat(quantity.Float64()).Div(decimal.NewFromFloat(size.Float64()))
	return size, decimal.NewFromInt(price).Mul(packages), nil
}

func (r PriceResolver) findSize(entry catalog.Entry, nominal kernel.Size) (kernel.Size, int64, bool) {
	if price, ok := entry.Price(nominal); ok {
		return nominal, price, true
	}

	for _, size := range entry.Sizes() {
		if size > nominal {
			price, _ := entry.Price(size)
			return size, price, true
		}
	}

	return 0, 0, false
}
