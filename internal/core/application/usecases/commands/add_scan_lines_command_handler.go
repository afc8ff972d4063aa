package commands

import (
	"context"

	"dispatchdesk/internal/core/domain/model/session"
	"dispatchdesk/internal/core/domain/services"
)

// AddScanLinesCommandHandler parses a scanner batch and appends the records
// to the session manifest.
//
// Business rules:
//   - A courier must be selected; every record copies it
//   - All lines are parsed before the first row is added, so a failing
//     batch leaves the manifest as it was
//   - The total is recomputed once the rows are in
type AddScanLinesCommandHandler struct {
	uowFactory SessionUoWFactory
	parser     services.ScanLineParser
}

// NewAddScanLinesCommandHandler creates a handler for scanner batches.
func NewAddScanLinesCommandHandler(uowFactory SessionUoWFactory) AddScanLinesCommandHandler {
	return AddScanLinesCommandHandler{
		uowFactory: uowFactory,
		parser:     services.NewScanLineParser(),
	}
}

// Handle processes the scan batch command.
// Returns session.ErrNoCourierSelected when the session has no courier.
func (h AddScanLinesCommandHandler) Handle(ctx context.Context, cmd AddScanLinesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeSession(ctx, h.uowFactory, cmd.SessionID(), func(s *session.Session) error {
		courierName, err := s.RequireCourier()
		if err != nil {
			return err
		}

		records := h.parser.ParseBatch(cmd.Raw(), courierName)
		s.Manifest().Add(records...)
		return nil
	})
}
