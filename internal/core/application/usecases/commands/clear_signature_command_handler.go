package commands

import (
	"context"

	"dispatchdesk/internal/core/domain/model/session"
)

// ClearSignatureCommandHandler repaints a pad white. A stroke in progress stays
// in progress.
type ClearSignatureCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewClearSignatureCommandHandler creates a handler for clearing pads.
func NewClearSignatureCommandHandler(uowFactory SessionUoWFactory) ClearSignatureCommandHandler {
	return ClearSignatureCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pad clear command.
func (h ClearSignatureCommandHandler) Handle(ctx context.Context, cmd ClearSignatureCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeSession(ctx, h.uowFactory, cmd.SessionID(), func(s *session.Session) error {
		pad, err := s.Pad(cmd.Pad())
		if err != nil {
			return err
		}
		pad.Clear()
		return nil
	})
}
