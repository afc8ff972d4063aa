// Package ports defines the contracts between the dispatch desk core and its
// adapters: session storage, document renderers and the host clipboard.
// These interfaces keep the core free of infrastructure and easy to test.
package ports

import (
	"context"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/session"
)

// SessionRepository defines the storage contract for session aggregates.
type SessionRepository interface {
	// Add stores a new session. The session must be valid and its ID unused.
	Add(ctx context.Context, s *session.Session) error

	// Get returns the session with the given ID. Within a unit of work the
	// session stays reserved for the caller until Commit or Rollback.
	// Returns an *errs.ObjectNotFoundError for unknown or evicted sessions.
	Get(ctx context.Context, id kernel.UUID) (*session.Session, error)

	// Update records that a session obtained from Get was changed.
	Update(ctx context.Context, s *session.Session) error
}

// SessionReader gives queries read access to one session at a time.
//
// Example:
//
//	err := reader.View(ctx, id, func(s *session.Session) error {
//	    rows = s.Manifest().Rows()
//	    return nil
//	})
type SessionReader interface {
	// View calls fn with the session while no command can change it.
	// fn must not keep references to the session after it returns.
	View(ctx context.Context, id kernel.UUID, fn func(s *session.Session) error) error
}
