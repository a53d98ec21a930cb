package kernel

import (
	"fmt"

	"orderbot/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not created through NewUUID or UUIDFromString.
// The nil UUID is reported the same way.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID or UUIDFromString")

// UUID identifies an order session. It wraps github.com/google/uuid so the
// domain never handles the nil UUID as a valid identifier.
//
// Example:
//
//	id := kernel.NewUUID()
//	logger.Info("order started", "order_id", id)
type UUID struct {
	// id is never uuid.Nil for a constructed value
	id uuid.UUID
}

// NewUUID generates a new random (version 4) UUID.
//
// Returns:
//   - UUID: a fresh identifier that always passes Validate
//
// NewUUID panics only if the system random source fails, as uuid.New does.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the canonical, braced or urn form of a UUID.
//
// Parameters:
//   - s: textual UUID such as "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// Returns:
//   - UUID: the parsed identifier
//   - error: a wrapped parse error, or ErrUUIDIsNotConstructed for the nil UUID
//
// Example:
//
//	id, err := kernel.UUIDFromString(row.OrderID)
//	if err != nil {
//	    // Handle malformed identifier
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// IsEqual reports whether both UUIDs hold the same value.
//
// Parameters:
//   - other: the UUID to compare with
//
// Returns:
//   - true if both wrap the same 128-bit value
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value.
//
// Returns:
//   - nil for any UUID built by NewUUID or UUIDFromString
//   - ErrUUIDIsNotConstructed for the zero value
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
