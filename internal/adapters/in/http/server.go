package http

import (
	"log/slog"
	"mime"
	"net/http"
	"time"

	"dispatchdesk/internal/core/application/usecases/commands"
	"dispatchdesk/internal/core/application/usecases/queries"
	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/signature"
	"dispatchdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ ServerInterface = (*Server)(nil)

// Handlers are the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	CreateSession        commands.CreateSessionCommandHandler
	SelectCourier        commands.SelectCourierCommandHandler
	AddScanLines         commands.AddScanLinesCommandHandler
	QuickAddRecord       commands.QuickAddRecordCommandHandler
	EditCell             commands.EditCellCommandHandler
	DeleteRow            commands.DeleteRowCommandHandler
	ClearManifest        commands.ClearManifestCommandHandler
	SetManifestMeta      commands.SetManifestMetaCommandHandler
	ApplySignatureEvents commands.ApplySignatureEventsCommandHandler
	ClearSignature       commands.ClearSignatureCommandHandler

	// Query handlers
	GetManifest      queries.GetManifestQueryHandler
	GetCouriers      queries.GetCouriersQueryHandler
	ExportCSV        queries.ExportCSVQueryHandler
	ExportXLSX       queries.ExportXLSXQueryHandler
	ExportPDF        queries.ExportPDFQueryHandler
	CapturePrintView queries.CapturePrintViewQueryHandler
	ReadClipboard    queries.ReadClipboardQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	now      func() time.Time
	logger   *slog.Logger
}

// NewServer creates a new HTTP server. now stamps new sessions and export
// file names.
func NewServer(handlers Handlers, now func() time.Time, logger *slog.Logger) *Server {
	if now == nil {
		now = time.Now
	}
	return &Server{
		handlers: handlers,
		now:      now,
		logger:   logger.With("component", "http_server"),
	}
}

// CreateSession handles POST /api/v1/sessions.
func (s *Server) CreateSession(ctx echo.Context) error {
	id := kernel.NewUUID()

	cmd, err := commands.NewCreateSessionCommand(id, s.now())
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateSession.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SessionCreated{Id: id.String()})
}

// GetCouriers handles GET /api/v1/sessions/{sessionId}/couriers.
func (s *Server) GetCouriers(ctx echo.Context, sessionId SessionId) error {
	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetCouriersQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.handlers.GetCouriers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CourierList{
		Couriers: res.Couriers,
		Selected: optional(res.Selected),
	})
}

// SelectCourier handles PUT /api/v1/sessions/{sessionId}/courier.
func (s *Server) SelectCourier(ctx echo.Context, sessionId SessionId) error {
	var req SelectCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSelectCourierCommand(id, req.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.SelectCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetManifest handles GET /api/v1/sessions/{sessionId}/manifest.
func (s *Server) GetManifest(ctx echo.Context, sessionId SessionId) error {
	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetManifestQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.handlers.GetManifest.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Manifest{
		SessionId:       res.SessionID.String(),
		SelectedCourier: optional(res.SelectedCourier),
		Rows:            manifestRows(res.Rows),
		Total:           res.Total,
		TotalText:       res.TotalText,
		BigTotal:        res.BigTotal,
		Date:            res.Date,
		Note:            res.Note,
		CourierSigned:   res.CourierSigned,
		ReceiverSigned:  res.ReceiverSigned,
	})
}

// ClearManifest handles DELETE /api/v1/sessions/{sessionId}/manifest.
func (s *Server) ClearManifest(ctx echo.Context, sessionId SessionId, params ClearManifestParams) error {
	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewClearManifestCommand(id, params.Confirm != nil && *params.Confirm)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.ClearManifest.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetManifestMeta handles PUT /api/v1/sessions/{sessionId}/manifest/meta.
func (s *Server) SetManifestMeta(ctx echo.Context, sessionId SessionId) error {
	var req MetaRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSetManifestMetaCommand(id, req.Date, req.Note)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.SetManifestMeta.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddQuickRecord handles POST /api/v1/sessions/{sessionId}/manifest/rows.
func (s *Server) AddQuickRecord(ctx echo.Context, sessionId SessionId) error {
	var req QuickAddRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewQuickAddRecordCommand(id, req.Id, req.RecipientName, req.Phone, req.Address, req.Amount)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.QuickAddRecord.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EditCell handles PATCH /api/v1/sessions/{sessionId}/manifest/rows/{index}.
func (s *Server) EditCell(ctx echo.Context, sessionId SessionId, index RowIndex) error {
	var req EditCellRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewEditCellCommand(id, index, req.Column, req.Value)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.EditCell.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteRow handles DELETE /api/v1/sessions/{sessionId}/manifest/rows/{index}.
func (s *Server) DeleteRow(ctx echo.Context, sessionId SessionId, index RowIndex) error {
	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteRowCommand(id, index)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteRow.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddScanLines handles POST /api/v1/sessions/{sessionId}/manifest/scans.
func (s *Server) AddScanLines(ctx echo.Context, sessionId SessionId) error {
	var req ScanBatchRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddScanLinesCommand(id, req.Text)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.AddScanLines.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ExportManifest handles GET /api/v1/sessions/{sessionId}/exports/{format}.
func (s *Server) ExportManifest(ctx echo.Context, sessionId SessionId, format ExportFormat) error {
	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewExportQuery(id, s.now())
	if err != nil {
		return s.fail(ctx, err)
	}

	var file queries.ExportFile
	switch format {
	case ExportFormatCSV:
		file, err = s.handlers.ExportCSV.Handle(ctx.Request().Context(), query)
	case ExportFormatXLSX:
		file, err = s.handlers.ExportXLSX.Handle(ctx.Request().Context(), query)
	case ExportFormatPDF:
		file, err = s.handlers.ExportPDF.Handle(ctx.Request().Context(), query)
	default:
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Unknown export format " + string(format),
		})
	}
	if err != nil {
		return s.fail(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": file.FileName}))
	return ctx.Blob(http.StatusOK, file.ContentType, file.Content)
}

// GetPrintView handles GET /api/v1/sessions/{sessionId}/print-view.
func (s *Server) GetPrintView(ctx echo.Context, sessionId SessionId) error {
	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewCapturePrintViewQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.CapturePrintView.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PrintView{
		MetaLine:    view.MetaLine,
		CourierName: view.CourierName,
		Rows:        manifestRows(view.Rows),
		Total:       view.Total,
		TotalText:   view.TotalText,
	})
}

// ApplySignatureEvents handles POST /api/v1/sessions/{sessionId}/signatures/{pad}/events.
func (s *Server) ApplySignatureEvents(ctx echo.Context, sessionId SessionId, pad SignaturePad) error {
	var req SignatureEventsRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	events := make([]signature.Event, 0, len(req.Events))
	for _, e := range req.Events {
		events = append(events, signature.Event{
			Type:  signature.EventType(e.Type),
			Point: signature.Point{X: e.X, Y: e.Y},
		})
	}

	cmd, err := commands.NewApplySignatureEventsCommand(id, pad, events)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.ApplySignatureEvents.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearSignature handles DELETE /api/v1/sessions/{sessionId}/signatures/{pad}.
func (s *Server) ClearSignature(ctx echo.Context, sessionId SessionId, pad SignaturePad) error {
	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewClearSignatureCommand(id, pad)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.ClearSignature.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReadClipboard handles GET /api/v1/clipboard.
func (s *Server) ReadClipboard(ctx echo.Context) error {
	text, err := s.handlers.ReadClipboard.Handle(ctx.Request().Context(), queries.NewReadClipboardQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ClipboardText{Text: text})
}

// sessionID converts the path parameter. The nil UUID never names a session.
func sessionID(id SessionId) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromString(id.String())
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause("session", id.String(), err)
	}
	return parsed, nil
}

func manifestRows(rows []queries.RowView) []ManifestRow {
	out := make([]ManifestRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, ManifestRow{
			Index:         r.Index,
			Id:            r.ID,
			RecipientName: r.RecipientName,
			Phone:         r.Phone,
			Address:       r.Address,
			Amount:        r.Amount,
			Courier:       r.Courier,
		})
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
