package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"
)

// ErrQuantityIsNotConstructed is returned when a zero-value Quantity is used.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError("quantity must be created via NewQuantity or ParseQuantity")

// Quantity is a positive, finite amount of product in the shop's selling unit.
type Quantity struct {
	value float64
	guard guard.ConstructorGuard
}

// NewQuantity validates that value is finite and strictly positive.
func NewQuantity(value float64) (Quantity, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%v is not finite", value))
	}
	if value <= 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%v is not greater than 0", value))
	}
	return Quantity{value: value, guard: guard.NewConstructorGuard()}, nil
}

// ParseQuantity parses operator input such as "2", "0.5" or "1e0".
func ParseQuantity(raw string) (Quantity, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity", err)
	}
	return NewQuantity(value)
}

// Validate returns ErrQuantityIsNotConstructed for the zero value.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// Float64 returns the raw amount.
func (q Quantity) Float64() float64 {
	return q.value
}

// String renders the amount the way receipts show it. Amounts with a decimal
// exponent below -4 or from 16 up use the shortest scientific form ("1e-05",
// "1e+16"). Other integral amounts keep one decimal place ("2.0") and the
// rest use the shortest fixed form ("0.25").
func (q Quantity) String() string {
	if exp := decimalExponent(q.value); exp < -4 || exp >= 16 {
		return strconv.FormatFloat(q.value, 'e', -1, 64)
	}

	s := strconv.FormatFloat(q.value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// decimalExponent returns the exponent of v in shortest scientific notation.
func decimalExponent(v float64) int {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:])
	return exp
}
