package commands

import (
	"context"

	"dispatchdesk/internal/core/domain/model/session"
)

// ApplySignatureEventsCommandHandler draws an event batch on a signature pad.
// Strokes appear immediately; nothing is buffered between batches except the
// pad's pointer state.
type ApplySignatureEventsCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewApplySignatureEventsCommandHandler creates a handler for signature events.
func NewApplySignatureEventsCommandHandler(uowFactory SessionUoWFactory) ApplySignatureEventsCommandHandler {
	return ApplySignatureEventsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the signature event command.
func (h ApplySignatureEventsCommandHandler) Handle(ctx context.Context, cmd ApplySignatureEventsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeSession(ctx, h.uowFactory, cmd.SessionID(), func(s *session.Session) error {
		pad, err := s.Pad(cmd.Pad())
		if err != nil {
			return err
		}
		return pad.Apply(cmd.Events()...)
	})
}
