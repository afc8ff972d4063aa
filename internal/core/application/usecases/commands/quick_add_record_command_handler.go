package commands

import (
	"context"

	"dispatchdesk/internal/core/domain/model/manifest"
	"dispatchdesk/internal/core/domain/model/session"
)

// QuickAddRecordCommandHandler appends a single record for the selected courier.
type QuickAddRecordCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewQuickAddRecordCommandHandler creates a handler for quick-add records.
func NewQuickAddRecordCommandHandler(uowFactory SessionUoWFactory) QuickAddRecordCommandHandler {
	return QuickAddRecordCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quick-add command.
// Returns session.ErrNoCourierSelected when the session has no courier.
func (h QuickAddRecordCommandHandler) Handle(ctx context.Context, cmd QuickAddRecordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeSession(ctx, h.uowFactory, cmd.SessionID(), func(s *session.Session) error {
		courierName, err := s.RequireCourier()
		if err != nil {
			return err
		}

		s.Manifest().Add(manifest.NewPackageRecord(
			cmd.PackageID(),
			cmd.RecipientName(),
			cmd.Phone(),
			cmd.Address(),
			cmd.Amount(),
			courierName,
		))
		return nil
	})
}
