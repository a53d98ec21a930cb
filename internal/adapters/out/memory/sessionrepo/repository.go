// Package sessionrepo keeps live order sessions in process memory.
// Sessions do not survive a restart.
package sessionrepo

import (
	"context"
	"sync"
	"time"

	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/pkg/errs"
)

// InMemorySessionRepository implements ports.SessionRepository with a map
// keyed by owner id. A single mutex guards the map and every Update callback.
type InMemorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*order.Session
}

// NewInMemorySessionRepository creates an empty repository.
func NewInMemorySessionRepository() *InMemorySessionRepository {
	return &InMemorySessionRepository{
		sessions: make(map[string]*order.Session),
	}
}

// Put stores the session, replacing any previous session of the same owner.
func (r *InMemorySessionRepository) Put(_ context.Context, s *order.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[s.OwnerID()] = s
	return nil
}

// Update applies fn to the owner's session under the repository lock.
func (r *InMemorySessionRepository) Update(
	_ context.Context,
	ownerID string,
	fn func(s *order.Session) error,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[ownerID]
	if !ok {
		return errs.NewObjectNotFoundError("ownerID", ownerID)
	}

	return fn(s)
}

// Take removes and returns the owner's session.
func (r *InMemorySessionRepository) Take(_ context.Context, ownerID string) (*order.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[ownerID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("ownerID", ownerID)
	}

	delete(r.sessions, ownerID)
	return s, nil
}

// RemoveIdle removes the sessions whose last activity is before cutoff.
func (r *InMemorySessionRepository) RemoveIdle(_ context.Context, cutoff time.Time) ([]*order.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []*order.Session
	for ownerID, s := range r.sessions {
		if s.TouchedAt().Before(cutoff) {
			removed = append(removed, s)
			delete(r.sessions, ownerID)
		}
	}

	return removed, nil
}

// Len returns the number of live sessions.
func (r *InMemorySessionRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}
