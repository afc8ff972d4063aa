package commands

import (
	"context"

	"dispatchdesk/internal/core/domain/model/courier"
	"dispatchdesk/internal/core/domain/model/manifest"
	"dispatchdesk/internal/core/domain/model/session"
)

// CreateSessionCommandHandler opens sessions with the configured courier
// roster and signature pad size.
//
// Example:
//
//	handler := NewCreateSessionCommandHandler(uowFactory, courier.DefaultRoster(), 400, 150)
//	cmd, _ := NewCreateSessionCommand(kernel.NewUUID(), time.Now())
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("session creation failed: %w", err)
//	}
type CreateSessionCommandHandler struct {
	uowFactory SessionUoWFactory
	roster     courier.Roster
	padWidth   int
	padHeight  int
}

// NewCreateSessionCommandHandler creates a handler for session creation.
func NewCreateSessionCommandHandler(
	uowFactory SessionUoWFactory,
	roster courier.Roster,
	padWidth, padHeight int,
) CreateSessionCommandHandler {
	return CreateSessionCommandHandler{
		uowFactory: uowFactory,
		roster:     roster,
		padWidth:   padWidth,
		padHeight:  padHeight,
	}
}

// Handle builds the session and stores it. The first roster courier is
// selected and the manifest date is the opening time.
func (h CreateSessionCommandHandler) Handle(ctx context.Context, cmd CreateSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := session.NewSession(
		cmd.SessionID(),
		h.roster,
		manifest.NewMeta(cmd.DefaultDate(), ""),
		h.padWidth,
		h.padHeight,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SessionRepository().Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
