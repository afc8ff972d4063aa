package queries

import (
	"context"
	"fmt"

	"dispatchdesk/internal/core/domain/model/session"
	"dispatchdesk/internal/core/ports"
)

const (
	// XLSXFileName is the download name of the workbook export.
	XLSXFileName = "manifest.xlsx"
	// XLSXContentType is the media type of the workbook export.
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportXLSXQueryHandler produces a workbook with the whole manifest, the same
// rows as the CSV export plus a total line.
type ExportXLSXQueryHandler struct {
	reader   ports.SessionReader
	renderer ports.SpreadsheetRenderer
}

// NewExportXLSXQueryHandler creates a handler for the workbook export.
func NewExportXLSXQueryHandler(reader ports.SessionReader, renderer ports.SpreadsheetRenderer) ExportXLSXQueryHandler {
	return ExportXLSXQueryHandler{reader: reader, renderer: renderer}
}

// Handle executes the workbook export.
func (h ExportXLSXQueryHandler) Handle(ctx context.Context, query ExportQuery) (ExportFile, error) {
	if err := query.Validate(); err != nil {
		return ExportFile{}, err
	}

	var doc ports.WorkbookDocument
	err := h.reader.View(ctx, query.SessionID(), func(s *session.Session) error {
		doc = ports.WorkbookDocument{
			Rows:  s.Manifest().Rows(),
			Total: s.Manifest().Total(),
		}
		return nil
	})
	if err != nil {
		return ExportFile{}, err
	}

	content, err := h.renderer.RenderWorkbook(ctx, doc)
	if err != nil {
		return ExportFile{}, fmt.Errorf("render workbook: %w", err)
	}

	return ExportFile{
		FileName:    XLSXFileName,
		ContentType: XLSXContentType,
		Content:     content,
	}, nil
}
