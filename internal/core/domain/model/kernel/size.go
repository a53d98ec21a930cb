package kernel

import (
	"fmt"
	"strconv"

	"orderbot/internal/pkg/errs"
)

// Size is a package size tier expressed as a fraction of a whole unit.
// It is used both to classify a requested quantity and to key into an
// item's price table.
type Size float64

const (
	// SizeQuarter is the quarter-unit package.
	SizeQuarter Size = 0.25
	// SizeHalf is the half-unit package.
	SizeHalf Size = 0.5
	// SizeWhole is the whole-unit package.
	SizeWhole Size = 1.0
)

// AllSizes lists every size tier in ascending order.
func AllSizes() []Size {
	return []Size{SizeQuarter, SizeHalf, SizeWhole}
}

// NominalSize classifies a requested quantity into its nominal tier:
// quantities of at least one unit map to SizeWhole, quantities of at least
// half a unit map to SizeHalf and everything else maps to SizeQuarter.
//
// Example:
//
//	kernel.NominalSize(2)    // SizeWhole
//	kernel.NominalSize(0.9)  // SizeHalf
//	kernel.NominalSize(0.3)  // SizeQuarter
func NominalSize(quantity float64) Size {
	switch {
	case quantity >= float64(SizeWhole):
		return SizeWhole
	case quantity >= float64(SizeHalf):
		return SizeHalf
	default:
		return SizeQuarter
	}
}

// Validate rejects values that are not one of the three tiers.
func (s Size) Validate() error {
	switch s {
	case SizeQuarter, SizeHalf, SizeWhole:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%v is not a size tier", float64(s)))
	}
}

// Float64 returns the tier as a fraction of a unit.
func (s Size) Float64() float64 {
	return float64(s)
}

func (s Size) String() string {
	return strconv.FormatFloat(float64(s), 'f', -1, 64)
}
