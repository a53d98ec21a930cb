package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrSessionIsNotConstructed is returned when a Session was not created via NewSession.
// Repositories return it instead of handing out half-built sessions.
var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

// Session is the aggregate root of an order being assembled by one operator.
// It lives from the moment a customer name is accepted until the operator
// completes or cancels the order, or the session expires.
//
// Session follows these invariants:
//   - Must have a valid identifier
//   - Owner id and customer name are never empty
//   - Line items are append-only and keep insertion order
//   - Only Open sessions accept items
//   - Status transitions follow the Open to Completed or Cancelled rules of Status
//
// Session is not safe for concurrent use; the session repository serializes
// access per owner.
type Session struct {
	// id correlates the log records of one order
	id kernel.UUID

	// ownerID is the opaque identity of the chat user
	ownerID string

	// customerName is the name as typed, trimmed but not title-cased
	customerName string

	// items holds the priced lines in the order they were entered
	items []LineItem

	// status is the current lifecycle state
	status Status

	// touchedAt is the time of creation or of the last added item
	touchedAt time.Time

	// isConstructed ensures the session was created via NewSession
	isConstructed bool
}

// NewSession opens a new order session for ownerID. This is the only way to
// create a valid Session.
//
// Parameters:
//   - id: identifier of the order, used to correlate log records
//   - ownerID: opaque identity of the chat user assembling the order
//   - customerName: the customer name as typed; surrounding whitespace is removed
//   - now: creation time, used for idle expiry
//
// Returns:
//   - *Session: an Open session with no items
//   - error: every validation failure joined together
//
// Example:
//
//	s, err := order.NewSession(kernel.NewUUID(), "42", "jane doe", time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewSession(id kernel.UUID, ownerID, customerName string, now time.Time) (*Session, error) {
	s := &Session{
		items:         make([]LineItem, 0),
		status:        Open,
		touchedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOwnerID(ownerID),
		s.setCustomerName(customerName),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the session was created through NewSession.
//
// Returns:
//   - nil if the session is valid
//   - ErrSessionIsNotConstructed for a nil session or a zero-value struct
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the order identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// OwnerID returns the identity of the chat user that owns the session.
func (s *Session) OwnerID() string {
	return s.ownerID
}

// CustomerName returns the customer name as entered, before formatting.
func (s *Session) CustomerName() string {
	return s.customerName
}

// Status returns the lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// TouchedAt returns the time of the last change.
func (s *Session) TouchedAt() time.Time {
	return s.touchedAt
}

// Items returns a copy of the line items in insertion order. Changing the
// returned slice does not affect the session.
func (s *Session) Items() []LineItem {
	return slices.Clone(s.items)
}

// Subtotal sums the unrounded line totals. Rounding to whole dollars happens
// only when the receipt is rendered.
//
// Returns:
//   - decimal.Decimal: the exact sum, zero for a session without items
func (s *Session) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range s.items {
		subtotal = subtotal.Add(item.Total())
	}
	return subtotal
}

// TotalQuantity sums the requested quantities of every line. The receipt
// uses it to pick the shipping line.
func (s *Session) TotalQuantity() float64 {
	var total float64
	for _, item := range s.items {
		total += item.Quantity().Float64()
	}
	return total
}

// AddItem appends a line item to an Open session and refreshes TouchedAt.
//
// Parameters:
//   - item: a priced line built with NewLineItem
//   - now: time of the change, used for idle expiry
//
// Returns:
//   - nil if the item was appended
//   - the item's validation error for a zero-value LineItem
//   - a status error if the session is Completed or Cancelled
//
// Example:
//
//	item, _ := order.NewLineItem("S755", qty, kernel.SizeWhole, decimal.NewFromInt(300))
//	if err := s.AddItem(item, time.Now()); err != nil {
//	    // The session no longer accepts items
//	}
func (s *Session) AddItem(item LineItem, now time.Time) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := s.status.ValidateAddItem(); err != nil {
		return err
	}

	s.items = append(s.items, item)
	s.touchedAt = now
	return nil
}

// Complete marks the session as completed.
//
// Returns:
//   - nil if the session was Open
//   - a status error otherwise; the session is left unchanged
func (s *Session) Complete() error {
	newStatus, err := s.status.Complete()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Cancel marks the session as cancelled. Expired sessions are cancelled too
// before they are dropped.
//
// Returns:
//   - nil if the session was Open
//   - a status error otherwise; the session is left unchanged
func (s *Session) Cancel() error {
	newStatus, err := s.status.Cancel()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

func (s *Session) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Session) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return errs.NewValueIsRequiredError("ownerID")
	}
	s.ownerID = ownerID
	return nil
}

func (s *Session) setCustomerName(customerName string) error {
	trimmed := strings.TrimSpace(customerName)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	s.customerName = trimmed
	return nil
}
