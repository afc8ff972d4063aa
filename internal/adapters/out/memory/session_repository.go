package memory

import (
	"context"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/session"
	"dispatchdesk/internal/core/ports"
)

var _ ports.SessionRepository = (*sessionRepository)(nil)

type sessionRepository struct {
	uow *UnitOfWork
}

func (r *sessionRepository) Add(_ context.Context, s *session.Session) error {
	if !r.uow.started {
		return ErrUnitOfWorkNotStarted
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if r.uow.registry.contains(s.ID()) {
		return ErrSessionAlreadyExists
	}

	r.uow.added = append(r.uow.added, s)
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	if !r.uow.started {
		return nil, ErrUnitOfWorkNotStarted
	}
	if e, ok := r.uow.held[id]; ok {
		return e.session, nil
	}

	e, err := r.uow.registry.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	r.uow.held[id] = e
	return e.session, nil
}

func (r *sessionRepository) Update(_ context.Context, s *session.Session) error {
	if !r.uow.started {
		return ErrUnitOfWorkNotStarted
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if e, ok := r.uow.held[s.ID()]; !ok || e.session != s {
		return ErrSessionIsNotHeld
	}
	return nil
}
