package commands

import (
	"context"

	"dispatchdesk/internal/core/domain/model/session"
)

// DeleteRowCommandHandler deletes a row, renumbers the rest and recomputes the total.
type DeleteRowCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewDeleteRowCommandHandler creates a handler for row deletion.
func NewDeleteRowCommandHandler(uowFactory SessionUoWFactory) DeleteRowCommandHandler {
	return DeleteRowCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the row deletion command.
func (h DeleteRowCommandHandler) Handle(ctx context.Context, cmd DeleteRowCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeSession(ctx, h.uowFactory, cmd.SessionID(), func(s *session.Session) error {
		_, err := s.Manifest().Delete(cmd.Index())
		return err
	})
}
