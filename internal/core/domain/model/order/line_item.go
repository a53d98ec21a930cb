package order

import (
	"errors"
	"fmt"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when a zero-value LineItem is used.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one priced entry of an order. The total is kept unrounded;
// rounding only happens when a receipt is rendered.
type LineItem struct { //nolint:recvcheck //using for validation
	code     string
	quantity kernel.Quantity
	size     kernel.Size
	total    decimal.Decimal
	guard    guard.ConstructorGuard
}

// NewLineItem validates and builds a line item.
//
// Parameters:
//   - code: canonical catalog item code
//   - quantity: amount requested by the operator
//   - size: package size the price was resolved at
//   - total: unrounded price of the whole line
func NewLineItem(code string, quantity kernel.Quantity, size kernel.Size, total decimal.Decimal) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setCode(code),
		item.setQuantity(quantity),
		item.setSize(size),
		item.setTotal(total),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the line item was created through NewLineItem.
func (l LineItem) Validate() error {
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

// Code returns the catalog item code.
func (l LineItem) Code() string {
	return l.code
}

// Quantity returns the requested amount.
func (l LineItem) Quantity() kernel.Quantity {
	return l.quantity
}

// Size returns the resolved package size.
func (l LineItem) Size() kernel.Size {
	return l.size
}

// Total returns the unrounded line price.
func (l LineItem) Total() decimal.Decimal {
	return l.total
}

func (l *LineItem) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	l.code = code
	return nil
}

func (l *LineItem) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	l.quantity = quantity
	return nil
}

func (l *LineItem) setSize(size kernel.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	l.size = size
	return nil
}

func (l *LineItem) setTotal(total decimal.Decimal) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%s is negative", total))
	}
	l.total = total
	return nil
}
