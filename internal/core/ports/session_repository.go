// Package ports defines the contracts between the order bot core and its
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"orderbot/internal/core/domain/model/order"
)

// SessionRepository is the registry of live order sessions, one per owner.
// Implementations must be safe for concurrent use and must never run two
// mutations of the same owner's session at the same time.
type SessionRepository interface {
	// Put stores s as the live session of its owner, replacing any previous one.
	Put(ctx context.Context, s *order.Session) error

	// Update runs fn against the owner's live session while holding that
	// owner's lock. Returns errs.ObjectNotFoundError when there is none.
	Update(ctx context.Context, ownerID string, fn func(s *order.Session) error) error

	// Take removes and returns the owner's live session.
	// Returns errs.ObjectNotFoundError when there is none.
	Take(ctx context.Context, ownerID string) (*order.Session, error)

	// RemoveIdle removes every session last touched before cutoff and
	// returns the removed sessions.
	RemoveIdle(ctx context.Context, cutoff time.Time) ([]*order.Session, error)
}
