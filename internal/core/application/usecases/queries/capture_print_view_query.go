package queries

import (
	"context"
	"errors"
	"fmt"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/manifest"
	"dispatchdesk/internal/core/domain/model/session"
	"dispatchdesk/internal/core/domain/services"
	"dispatchdesk/internal/core/ports"
	"dispatchdesk/internal/pkg/guard"
)

var ErrCapturePrintViewQueryIsNotConstructed = errors.New(
	"CapturePrintViewQuery must be created via NewCapturePrintViewQuery constructor",
)

// CapturePrintViewQuery retrieves the print layout of the selected courier's
// manifest. The UI fills its print block with it and opens the print dialog.
type CapturePrintViewQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCapturePrintViewQuery creates a print view query for the session.
func NewCapturePrintViewQuery(sessionID kernel.UUID) (CapturePrintViewQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return CapturePrintViewQuery{}, err
	}
	return CapturePrintViewQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q CapturePrintViewQuery) Validate() error {
	return q.guard.Validate(ErrCapturePrintViewQueryIsNotConstructed)
}

// SessionID returns the queried session.
func (q CapturePrintViewQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// PrintView is the print layout. It carries no signature images; the printed
// sheet is signed by hand.
type PrintView struct {
	MetaLine    string
	CourierName string
	Rows        []RowView
	Total       int
	TotalText   string
}

// PrintMetaLine returns the line printed above the table, e.g.
// "Манифест для курьера: Nomonjon — Дата: 19.10.2026 — evening".
func PrintMetaLine(courier string, meta manifest.Meta) string {
	line := fmt.Sprintf("Манифест для курьера: %s — Дата: %s", courier, meta.Date())
	if meta.HasNote() {
		line += " — " + meta.Note()
	}
	return line
}

// CapturePrintViewQueryHandler builds the print view of the selected courier.
type CapturePrintViewQueryHandler struct {
	reader      ports.SessionReader
	formatter   services.AmountFormatter
	partitioner services.CourierPartitioner
}

// NewCapturePrintViewQueryHandler creates a handler for print view queries.
func NewCapturePrintViewQueryHandler(
	reader ports.SessionReader,
	formatter services.AmountFormatter,
) CapturePrintViewQueryHandler {
	return CapturePrintViewQueryHandler{
		reader:      reader,
		formatter:   formatter,
		partitioner: services.NewCourierPartitioner(),
	}
}

// Handle executes the print view query. It fails with
// session.ErrNoCourierSelected or services.ErrEmptyPartition.
func (h CapturePrintViewQueryHandler) Handle(ctx context.Context, query CapturePrintViewQuery) (PrintView, error) {
	if err := query.Validate(); err != nil {
		return PrintView{}, err
	}

	var part courierManifest
	err := h.reader.View(ctx, query.SessionID(), func(s *session.Session) error {
		var err error
		part, err = selectCourierManifest(s, h.partitioner)
		return err
	})
	if err != nil {
		return PrintView{}, err
	}

	total := manifest.SumRows(part.rows)
	return PrintView{
		MetaLine:    PrintMetaLine(part.courier, part.meta),
		CourierName: part.courier,
		Rows:        NewRowViews(part.rows),
		Total:       total.Int(),
		TotalText:   h.formatter.Format(total),
	}, nil
}
