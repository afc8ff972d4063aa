package commands

import (
	"context"

	"dispatchdesk/internal/core/domain/model/session"
)

// EditCellCommandHandler applies an in-place cell edit and recomputes the total.
// A row number outside the manifest fails with an *errs.ValueIsOutOfRangeError.
type EditCellCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewEditCellCommandHandler creates a handler for cell edits.
func NewEditCellCommandHandler(uowFactory SessionUoWFactory) EditCellCommandHandler {
	return EditCellCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cell edit command.
func (h EditCellCommandHandler) Handle(ctx context.Context, cmd EditCellCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeSession(ctx, h.uowFactory, cmd.SessionID(), func(s *session.Session) error {
		_, err := s.Manifest().Edit(cmd.Index(), cmd.Column(), cmd.Value())
		return err
	})
}
