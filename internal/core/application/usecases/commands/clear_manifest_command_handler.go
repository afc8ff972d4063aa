package commands

import (
	"context"

	"dispatchdesk/internal/core/domain/model/session"
)

// ClearManifestCommandHandler empties the manifest and resets the total to zero.
// The courier selection, the meta and the signatures are kept.
type ClearManifestCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewClearManifestCommandHandler creates a handler for clearing the manifest.
func NewClearManifestCommandHandler(uowFactory SessionUoWFactory) ClearManifestCommandHandler {
	return ClearManifestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear command.
func (h ClearManifestCommandHandler) Handle(ctx context.Context, cmd ClearManifestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeSession(ctx, h.uowFactory, cmd.SessionID(), func(s *session.Session) error {
		s.Manifest().Clear()
		return nil
	})
}
