// Package commands contains the operations that change a desk session.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, unit of work, update.
package commands

import (
	"context"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/session"
	"dispatchdesk/internal/core/ports"
)

// Unit of Work interfaces give command handlers exclusive access to a session.
// Changes made through them are visible to others only after Commit.
type (
	// TxManager handles the unit of work lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SessionRepoFactory provides access to the session repository within a unit of work.
	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// SessionUoW manages one command's access to sessions.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   s, err := uow.SessionRepository().Get(ctx, id)
	//   // ... change the session
	//
	//   err = uow.Commit(ctx)
	SessionUoW interface {
		TxManager
		SessionRepoFactory
	}

	// SessionUoWFactory creates new session unit of work instances.
	SessionUoWFactory interface {
		Create() SessionUoW
	}
)

// changeSession runs change against the session with the given id inside a
// unit of work and commits when change succeeds. On error nothing is committed.
func changeSession(
	ctx context.Context,
	uowFactory SessionUoWFactory,
	id kernel.UUID,
	change func(s *session.Session) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SessionRepository()
	s, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = change(s); err != nil {
		return err
	}

	if err = repo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
