package commands

import (
	"context"

	"dispatchdesk/internal/core/domain/model/session"
)

// SelectCourierCommandHandler changes the selected courier of a session.
// Unknown names fail with a *courier.UnknownCourierError carrying the closest
// roster name.
type SelectCourierCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewSelectCourierCommandHandler creates a handler for courier selection.
func NewSelectCourierCommandHandler(uowFactory SessionUoWFactory) SelectCourierCommandHandler {
	return SelectCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier selection command.
func (h SelectCourierCommandHandler) Handle(ctx context.Context, cmd SelectCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeSession(ctx, h.uowFactory, cmd.SessionID(), func(s *session.Session) error {
		_, err := s.SelectCourier(cmd.Name())
		return err
	})
}
