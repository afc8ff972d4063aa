package memory

import (
	"context"
	"errors"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/session"
	"dispatchdesk/internal/core/ports"
)

var (
	ErrUnitOfWorkNotStarted     = errors.New("unit of work is not started")
	ErrUnitOfWorkAlreadyStarted = errors.New("unit of work is already started")
	ErrSessionIsNotHeld         = errors.New("session was not loaded by this unit of work")
)

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork collects the sessions one command touches. New sessions become
// visible on Commit; loaded sessions are released on Commit or Rollback.
//
// Domain operations check their input before changing a session, so a failed
// command leaves nothing to undo and Rollback only has to release.
type UnitOfWork struct {
	registry *Registry
	started  bool
	held     map[kernel.UUID]*entry
	added    []*session.Session
}

// NewUnitOfWork creates a unit of work over registry.
func NewUnitOfWork(registry *Registry) *UnitOfWork {
	return &UnitOfWork{
		registry: registry,
		held:     make(map[kernel.UUID]*entry),
	}
}

// Begin starts the unit of work.
func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.started {
		return ErrUnitOfWorkAlreadyStarted
	}
	u.started = true
	return nil
}

// Commit registers the added sessions and releases the loaded ones.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.started {
		return ErrUnitOfWorkNotStarted
	}

	var err error
	for _, s := range u.added {
		err = errors.Join(err, u.registry.insert(s))
	}
	u.finish(true)
	return err
}

// Rollback drops the added sessions and releases the loaded ones. It is a
// no-op when the unit of work has already finished.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.started {
		return nil
	}
	u.finish(false)
	return nil
}

// SessionRepository returns the repository bound to this unit of work.
func (u *UnitOfWork) SessionRepository() ports.SessionRepository {
	return &sessionRepository{uow: u}
}

func (u *UnitOfWork) finish(touch bool) {
	for id, e := range u.held {
		u.registry.release(e, touch)
		delete(u.held, id)
	}
	u.added = nil
	u.started = false
}

// UnitOfWorkFactory creates a fresh UnitOfWork for every command.
type UnitOfWorkFactory struct {
	registry *Registry
}

// NewUnitOfWorkFactory creates a factory over registry.
func NewUnitOfWorkFactory(registry *Registry) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{registry: registry}
}

// Create implements ports.UnitOfWorkFactory.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return NewUnitOfWork(f.registry)
}
