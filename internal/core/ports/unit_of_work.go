package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents one command's exclusive access to the sessions it
// touches. Client code must explicitly manage its lifecycle.
type UnitOfWork interface {
	// Begin starts the unit of work.
	Begin(ctx context.Context) error

	// Commit ends the unit of work and releases every session it holds.
	Commit(ctx context.Context) error

	// Rollback releases every session still held. Calling it after Commit is
	// a no-op, so it is safe to defer.
	Rollback(ctx context.Context) error

	// SessionRepository returns a SessionRepository bound to this unit of work.
	SessionRepository() SessionRepository
}
