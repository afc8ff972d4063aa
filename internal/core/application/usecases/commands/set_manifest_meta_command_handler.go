package commands

import (
	"context"

	"dispatchdesk/internal/core/domain/model/session"
)

// SetManifestMetaCommandHandler stores the manifest date and note on a session.
type SetManifestMetaCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewSetManifestMetaCommandHandler creates a handler for meta updates.
func NewSetManifestMetaCommandHandler(uowFactory SessionUoWFactory) SetManifestMetaCommandHandler {
	return SetManifestMetaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the meta update command.
func (h SetManifestMetaCommandHandler) Handle(ctx context.Context, cmd SetManifestMetaCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeSession(ctx, h.uowFactory, cmd.SessionID(), func(s *session.Session) error {
		s.SetMeta(cmd.Meta())
		return nil
	})
}
