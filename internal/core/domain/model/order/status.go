package order

import (
	"fmt"

	"orderbot/internal/pkg/errs"
)

// Status represents the lifecycle state of an order session.
//
// Valid transitions:
//   - Open -> Completed (operator typed "done")
//   - Open -> Cancelled (operator typed "cancel" or the session expired)
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota

	// Open sessions accept new line items.
	Open

	// Completed sessions have had their receipt rendered.
	Completed

	// Cancelled sessions were discarded without a receipt.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Open:      "Open",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAddItem ensures the session still accepts line items.
func (s Status) ValidateAddItem() error {
	if s != Open {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to add items", s.String()),
		)
	}
	return nil
}

// Complete returns the status after a successful completion.
func (s Status) Complete() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Cancel returns the status after a cancellation.
func (s Status) Cancel() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
