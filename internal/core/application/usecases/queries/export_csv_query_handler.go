package queries

import (
	"context"

	"dispatchdesk/internal/core/domain/model/manifest"
	"dispatchdesk/internal/core/domain/model/session"
	"dispatchdesk/internal/core/domain/services"
	"dispatchdesk/internal/core/ports"
)

// ExportCSVQueryHandler produces manifest.csv with every row of the session,
// whatever courier it belongs to.
type ExportCSVQueryHandler struct {
	reader     ports.SessionReader
	serializer services.ManifestCSVSerializer
}

// NewExportCSVQueryHandler creates a handler for the CSV export.
func NewExportCSVQueryHandler(reader ports.SessionReader) ExportCSVQueryHandler {
	return ExportCSVQueryHandler{
		reader:     reader,
		serializer: services.NewManifestCSVSerializer(),
	}
}

// Handle executes the CSV export. An empty manifest yields only the header.
func (h ExportCSVQueryHandler) Handle(ctx context.Context, query ExportQuery) (ExportFile, error) {
	if err := query.Validate(); err != nil {
		return ExportFile{}, err
	}

	var rows []manifest.Row
	err := h.reader.View(ctx, query.SessionID(), func(s *session.Session) error {
		rows = s.Manifest().Rows()
		return nil
	})
	if err != nil {
		return ExportFile{}, err
	}

	return ExportFile{
		FileName:    services.CSVFileName,
		ContentType: services.CSVContentType,
		Content:     h.serializer.Serialize(rows),
	}, nil
}
