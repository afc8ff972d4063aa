package queries

import (
	"context"
	"fmt"
	"regexp"

	"dispatchdesk/internal/core/domain/model/manifest"
	"dispatchdesk/internal/core/domain/model/session"
	"dispatchdesk/internal/core/domain/model/signature"
	"dispatchdesk/internal/core/domain/services"
	"dispatchdesk/internal/core/ports"
)

// PDFContentType is the media type of the PDF export.
const PDFContentType = "application/pdf"

var whitespaceRun = regexp.MustCompile(`\s+`)

// PDFFileName returns the download name of a courier's PDF manifest: whitespace
// runs in the name become "_" and the date is the UTC day of the request.
func PDFFileName(courier string, query ExportQuery) string {
	return fmt.Sprintf(
		"manifest_%s_%s.pdf",
		whitespaceRun.ReplaceAllString(courier, "_"),
		query.RequestedAt().UTC().Format("2006-01-02"),
	)
}

// ExportPDFQueryHandler produces the signed PDF manifest of the selected courier.
//
// Business rules:
//   - Only the selected courier's rows are exported, renumbered from 1
//   - The total is recomputed over those rows only
//   - Blank signature pads leave their boxes empty
//   - No selection or no rows for the courier fail before rendering
type ExportPDFQueryHandler struct {
	reader      ports.SessionReader
	renderer    ports.DocumentRenderer
	formatter   services.AmountFormatter
	partitioner services.CourierPartitioner
}

// NewExportPDFQueryHandler creates a handler for the PDF export.
func NewExportPDFQueryHandler(
	reader ports.SessionReader,
	renderer ports.DocumentRenderer,
	formatter services.AmountFormatter,
) ExportPDFQueryHandler {
	return ExportPDFQueryHandler{
		reader:      reader,
		renderer:    renderer,
		formatter:   formatter,
		partitioner: services.NewCourierPartitioner(),
	}
}

// Handle executes the PDF export.
func (h ExportPDFQueryHandler) Handle(ctx context.Context, query ExportQuery) (ExportFile, error) {
	if err := query.Validate(); err != nil {
		return ExportFile{}, err
	}

	var doc ports.ManifestDocument
	err := h.reader.View(ctx, query.SessionID(), func(s *session.Session) error {
		part, err := selectCourierManifest(s, h.partitioner)
		if err != nil {
			return err
		}

		doc = ports.ManifestDocument{
			Courier: part.courier,
			Date:    part.meta.Date(),
			Note:    part.meta.Note(),
			Rows:    part.rows,
			Total:   h.formatter.FormatBig(manifest.SumRows(part.rows)),
		}

		if doc.CourierSignature, err = captureSignature(s, signature.Courier); err != nil {
			return err
		}
		doc.ReceiverSignature, err = captureSignature(s, signature.Receiver)
		return err
	})
	if err != nil {
		return ExportFile{}, err
	}

	content, err := h.renderer.RenderManifest(ctx, doc)
	if err != nil {
		return ExportFile{}, fmt.Errorf("render manifest: %w", err)
	}

	return ExportFile{
		FileName:    PDFFileName(doc.Courier, query),
		ContentType: PDFContentType,
		Content:     content,
	}, nil
}
