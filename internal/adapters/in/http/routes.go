package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists every API operation.
type ServerInterface interface {
	// (GET /api/v1/clipboard)
	ReadClipboard(ctx echo.Context) error
	// (POST /api/v1/sessions)
	CreateSession(ctx echo.Context) error
	// (GET /api/v1/sessions/{sessionId}/couriers)
	GetCouriers(ctx echo.Context, sessionId SessionId) error
	// (PUT /api/v1/sessions/{sessionId}/courier)
	SelectCourier(ctx echo.Context, sessionId SessionId) error
	// (GET /api/v1/sessions/{sessionId}/manifest)
	GetManifest(ctx echo.Context, sessionId SessionId) error
	// (DELETE /api/v1/sessions/{sessionId}/manifest)
	ClearManifest(ctx echo.Context, sessionId SessionId, params ClearManifestParams) error
	// (PUT /api/v1/sessions/{sessionId}/manifest/meta)
	SetManifestMeta(ctx echo.Context, sessionId SessionId) error
	// (POST /api/v1/sessions/{sessionId}/manifest/rows)
	AddQuickRecord(ctx echo.Context, sessionId SessionId) error
	// (PATCH /api/v1/sessions/{sessionId}/manifest/rows/{index})
	EditCell(ctx echo.Context, sessionId SessionId, index RowIndex) error
	// (DELETE /api/v1/sessions/{sessionId}/manifest/rows/{index})
	DeleteRow(ctx echo.Context, sessionId SessionId, index RowIndex) error
	// (POST /api/v1/sessions/{sessionId}/manifest/scans)
	AddScanLines(ctx echo.Context, sessionId SessionId) error
	// (GET /api/v1/sessions/{sessionId}/exports/{format})
	ExportManifest(ctx echo.Context, sessionId SessionId, format ExportFormat) error
	// (GET /api/v1/sessions/{sessionId}/print-view)
	GetPrintView(ctx echo.Context, sessionId SessionId) error
	// (POST /api/v1/sessions/{sessionId}/signatures/{pad}/events)
	ApplySignatureEvents(ctx echo.Context, sessionId SessionId, pad SignaturePad) error
	// (DELETE /api/v1/sessions/{sessionId}/signatures/{pad})
	ClearSignature(ctx echo.Context, sessionId SessionId, pad SignaturePad) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPath(ctx echo.Context, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

func (w *ServerInterfaceWrapper) ReadClipboard(ctx echo.Context) error {
	return w.Handler.ReadClipboard(ctx)
}

func (w *ServerInterfaceWrapper) CreateSession(ctx echo.Context) error {
	return w.Handler.CreateSession(ctx)
}

func (w *ServerInterfaceWrapper) GetCouriers(ctx echo.Context) error {
	var sessionId SessionId
	if err := bindPath(ctx, "sessionId", &sessionId); err != nil {
		return err
	}
	return w.Handler.GetCouriers(ctx, sessionId)
}

func (w *ServerInterfaceWrapper) SelectCourier(ctx echo.Context) error {
	var sessionId SessionId
	if err := bindPath(ctx, "sessionId", &sessionId); err != nil {
		return err
	}
	return w.Handler.SelectCourier(ctx, sessionId)
}

func (w *ServerInterfaceWrapper) GetManifest(ctx echo.Context) error {
	var sessionId SessionId
	if err := bindPath(ctx, "sessionId", &sessionId); err != nil {
		return err
	}
	return w.Handler.GetManifest(ctx, sessionId)
}

func (w *ServerInterfaceWrapper) ClearManifest(ctx echo.Context) error {
	var sessionId SessionId
	if err := bindPath(ctx, "sessionId", &sessionId); err != nil {
		return err
	}

	var params ClearManifestParams
	err := runtime.BindQueryParameter("form", true, false, "confirm", ctx.QueryParams(), &params.Confirm)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter confirm: %s", err))
	}

	return w.Handler.ClearManifest(ctx, sessionId, params)
}

func (w *ServerInterfaceWrapper) SetManifestMeta(ctx echo.Context) error {
	var sessionId SessionId
	if err := bindPath(ctx, "sessionId", &sessionId); err != nil {
		return err
	}
	return w.Handler.SetManifestMeta(ctx, sessionId)
}

func (w *ServerInterfaceWrapper) AddQuickRecord(ctx echo.Context) error {
	var sessionId SessionId
	if err := bindPath(ctx, "sessionId", &sessionId); err != nil {
		return err
	}
	return w.Handler.AddQuickRecord(ctx, sessionId)
}

func (w *ServerInterfaceWrapper) EditCell(ctx echo.Context) error {
	var sessionId SessionId
	if err := bindPath(ctx, "sessionId", &sessionId); err != nil {
		return err
	}
	var index RowIndex
	if err := bindPath(ctx, "index", &index); err != nil {
		return err
	}
	return w.Handler.EditCell(ctx, sessionId, index)
}

func (w *ServerInterfaceWrapper) DeleteRow(ctx echo.Context) error {
	var sessionId SessionId
	if err := bindPath(ctx, "sessionId", &sessionId); err != nil {
		return err
	}
	var index RowIndex
	if err := bindPath(ctx, "index", &index); err != nil {
		return err
	}
	return w.Handler.DeleteRow(ctx, sessionId, index)
}

func (w *ServerInterfaceWrapper) AddScanLines(ctx echo.Context) error {
	var sessionId SessionId
	if err := bindPath(ctx, "sessionId", &sessionId); err != nil {
		return err
	}
	return w.Handler.AddScanLines(ctx, sessionId)
}

func (w *ServerInterfaceWrapper) ExportManifest(ctx echo.Context) error {
	var sessionId SessionId
	if err := bindPath(ctx, "sessionId", &sessionId); err != nil {
		return err
	}
	var format ExportFormat
	if err := bindPath(ctx, "format", &format); err != nil {
		return err
	}
	return w.Handler.ExportManifest(ctx, sessionId, format)
}

func (w *ServerInterfaceWrapper) GetPrintView(ctx echo.Context) error {
	var sessionId SessionId
	if err := bindPath(ctx, "sessionId", &sessionId); err != nil {
		return err
	}
	return w.Handler.GetPrintView(ctx, sessionId)
}

func (w *ServerInterfaceWrapper) ApplySignatureEvents(ctx echo.Context) error {
	var sessionId SessionId
	if err := bindPath(ctx, "sessionId", &sessionId); err != nil {
		return err
	}
	var pad SignaturePad
	if err := bindPath(ctx, "pad", &pad); err != nil {
		return err
	}
	return w.Handler.ApplySignatureEvents(ctx, sessionId, pad)
}

func (w *ServerInterfaceWrapper) ClearSignature(ctx echo.Context) error {
	var sessionId SessionId
	if err := bindPath(ctx, "sessionId", &sessionId); err != nil {
		return err
	}
	var pad SignaturePad
	if err := bindPath(ctx, "pad", &pad); err != nil {
		return err
	}
	return w.Handler.ClearSignature(ctx, sessionId, pad)
}

// EchoRouter is the part of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every API route to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL adds every API route under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/v1/clipboard", w.ReadClipboard)
	router.POST(baseURL+"/api/v1/sessions", w.CreateSession)
	router.GET(baseURL+"/api/v1/sessions/:sessionId/couriers", w.GetCouriers)
	router.PUT(baseURL+"/api/v1/sessions/:sessionId/courier", w.SelectCourier)
	router.GET(baseURL+"/api/v1/sessions/:sessionId/manifest", w.GetManifest)
	router.DELETE(baseURL+"/api/v1/sessions/:sessionId/manifest", w.ClearManifest)
	router.PUT(baseURL+"/api/v1/sessions/:sessionId/manifest/meta", w.SetManifestMeta)
	router.POST(baseURL+"/api/v1/sessions/:sessionId/manifest/rows", w.AddQuickRecord)
	router.PATCH(baseURL+"/api/v1/sessions/:sessionId/manifest/rows/:index", w.EditCell)
	router.DELETE(baseURL+"/api/v1/sessions/:sessionId/manifest/rows/:index", w.DeleteRow)
	router.POST(baseURL+"/api/v1/sessions/:sessionId/manifest/scans", w.AddScanLines)
	router.GET(baseURL+"/api/v1/sessions/:sessionId/exports/:format", w.ExportManifest)
	router.GET(baseURL+"/api/v1/sessions/:sessionId/print-view", w.GetPrintView)
	router.POST(baseURL+"/api/v1/sessions/:sessionId/signatures/:pad/events", w.ApplySignatureEvents)
	router.DELETE(baseURL+"/api/v1/sessions/:sessionId/signatures/:pad", w.ClearSignature)
}
