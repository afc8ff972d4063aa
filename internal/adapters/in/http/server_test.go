package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dispatchhttp "dispatchdesk/internal/adapters/in/http"
	"dispatchdesk/internal/adapters/out/memory"
	"dispatchdesk/internal/adapters/out/pdf"
	"dispatchdesk/internal/adapters/out/xlsx"
	"dispatchdesk/internal/core/application/usecases/commands"
	"dispatchdesk/internal/core/application/usecases/queries"
	"dispatchdesk/internal/core/domain/model/courier"
	"dispatchdesk/internal/core/domain/services"
	"dispatchdesk/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

type sessionUoWFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f sessionUoWFactory) Create() commands.SessionUoW {
	return f.factory.Create()
}

type stubClipboard struct {
	text string
	err  error
}

func (c stubClipboard) ReadText(context.Context) (string, error) {
	return c.text, c.err
}

type api struct {
	t *testing.T
	e *echo.Echo
}

func newAPI(t *testing.T, clipboard ports.Clipboard) *api {
	t.Helper()

	registry := memory.NewRegistry(func() time.Time { return clock })
	uows := sessionUoWFactory{factory: memory.NewUnitOfWorkFactory(registry)}
	formatter := services.DefaultAmountFormatter()

	renderer, err := pdf.NewRenderer(pdf.Config{})
	require.NoError(t, err)

	handlers := dispatchhttp.Handlers{
		CreateSession:        commands.NewCreateSessionCommandHandler(uows, courier.DefaultRoster(), 400, 150),
		SelectCourier:        commands.NewSelectCourierCommandHandler(uows),
		AddScanLines:         commands.NewAddScanLinesCommandHandler(uows),
		QuickAddRecord:       commands.NewQuickAddRecordCommandHandler(uows),
		EditCell:             commands.NewEditCellCommandHandler(uows),
		DeleteRow:            commands.NewDeleteRowCommandHandler(uows),
		ClearManifest:        commands.NewClearManifestCommandHandler(uows),
		SetManifestMeta:      commands.NewSetManifestMetaCommandHandler(uows),
		ApplySignatureEvents: commands.NewApplySignatureEventsCommandHandler(uows),
		ClearSignature:       commands.NewClearSignatureCommandHandler(uows),
		GetManifest:          queries.NewGetManifestQueryHandler(registry, formatter),
		GetCouriers:          queries.NewGetCouriersQueryHandler(registry),
		ExportCSV:            queries.NewExportCSVQueryHandler(registry),
		ExportXLSX:           queries.NewExportXLSXQueryHandler(registry, xlsx.NewRenderer()),
		ExportPDF:            queries.NewExportPDFQueryHandler(registry, renderer, formatter),
		CapturePrintView:     queries.NewCapturePrintViewQueryHandler(registry, formatter),
		ReadClipboard:        queries.NewReadClipboardQueryHandler(clipboard, time.Second),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := dispatchhttp.NewServer(handlers, func() time.Time { return clock }, logger)

	e, err := dispatchhttp.NewEcho(server)
	require.NoError(t, err)

	return &api{t: t, e: e}
}

func (a *api) do(method, target, body string) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *api) createSession() string {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/api/v1/sessions", "")
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())

	var created dispatchhttp.SessionCreated
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(a.t, created.Id)
	return "/api/v1/sessions/" + created.Id
}

func (a *api) manifest(base string) dispatchhttp.Manifest {
	a.t.Helper()

	rec := a.do(http.MethodGet, base+"/manifest", "")
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())

	var m dispatchhttp.Manifest
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dispatchhttp.Error {
	t.Helper()

	var e dispatchhttp.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e), rec.Body.String())
	assert.Equal(t, rec.Code, e.Code)
	return e
}

const scans = `{"text":"A1|John Doe|+998901234567|Tashkent St 5|15000\nB2,Jane,998900000000,Samarkand,7 500,extra"}`

func TestServer_SessionLifecycle(t *testing.T) {
	a := newAPI(t, stubClipboard{})
	base := a.createSession()

	m := a.manifest(base)
	require.NotNil(t, m.SelectedCourier)
	assert.Equal(t, "Ulug'bek Nuriyev", *m.SelectedCourier)
	assert.Empty(t, m.Rows)
	assert.Equal(t, 0, m.Total)
	assert.Equal(t, "19.10.2026, 09:30:00", m.Date)

	rec := a.do(http.MethodGet, base+"/couriers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list dispatchhttp.CourierList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, courier.DefaultNames, list.Couriers)
}

func TestServer_BuildManifest(t *testing.T) {
	a := newAPI(t, stubClipboard{})
	base := a.createSession()

	rec := a.do(http.MethodPut, base+"/courier", `{"name":"Nomonjon"}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = a.do(http.MethodPost, base+"/manifest/scans", scans)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	m := a.manifest(base)
	require.Len(t, m.Rows, 2)
	assert.Equal(t, dispatchhttp.ManifestRow{
		Index: 1, Id: "A1", RecipientName: "John Doe", Phone: "+998901234567",
		Address: "Tashkent St 5", Amount: 15000, Courier: "Nomonjon",
	}, m.Rows[0])
	assert.Equal(t, 7500, m.Rows[1].Amount)
	assert.Equal(t, 22500, m.Total)

	t.Run("quick add", func(t *testing.T) {
		rec := a.do(http.MethodPost, base+"/manifest/rows", `{"id":"C3","recipientName":"Ali","amount":"2 500 сум"}`)
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		m := a.manifest(base)
		require.Len(t, m.Rows, 3)
		assert.Equal(t, 3, m.Rows[2].Index)
		assert.Equal(t, 25000, m.Total)
	})

	t.Run("edit and delete renumber rows", func(t *testing.T) {
		rec := a.do(http.MethodPatch, base+"/manifest/rows/2", `{"column":"amount","value":"10 000"}`)
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		rec = a.do(http.MethodDelete, base+"/manifest/rows/1", "")
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		m := a.manifest(base)
		require.Len(t, m.Rows, 2)
		assert.Equal(t, 1, m.Rows[0].Index)
		assert.Equal(t, "B2", m.Rows[0].Id)
		assert.Equal(t, 12500, m.Total)
	})

	t.Run("row out of range", func(t *testing.T) {
		rec := a.do(http.MethodDelete, base+"/manifest/rows/9", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		decodeError(t, rec)
	})

	t.Run("courier column is not editable", func(t *testing.T) {
		rec := a.do(http.MethodPatch, base+"/manifest/rows/1", `{"column":"courier","value":"X"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("meta", func(t *testing.T) {
		rec := a.do(http.MethodPut, base+"/manifest/meta", `{"date":"20.10.2026","note":"evening"}`)
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		m := a.manifest(base)
		assert.Equal(t, "20.10.2026", m.Date)
		assert.Equal(t, "evening", m.Note)
	})

	t.Run("print view", func(t *testing.T) {
		rec := a.do(http.MethodGet, base+"/print-view", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var view dispatchhttp.PrintView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, "Nomonjon", view.CourierName)
		assert.Equal(t, "Манифест для курьера: Nomonjon — Дата: 20.10.2026 — evening", view.MetaLine)
		assert.Len(t, view.Rows, 2)
	})

	t.Run("clear needs confirmation", func(t *testing.T) {
		rec := a.do(http.MethodDelete, base+"/manifest", "")
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Len(t, a.manifest(base).Rows, 2)

		rec = a.do(http.MethodDelete, base+"/manifest?confirm=true", "")
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
		assert.Empty(t, a.manifest(base).Rows)
		assert.Equal(t, 0, a.manifest(base).Total)
	})
}

func TestServer_OperatorNotices(t *testing.T) {
	a := newAPI(t, stubClipboard{})
	base := a.createSession()

	t.Run("unknown courier suggests a name", func(t *testing.T) {
		rec := a.do(http.MethodPut, base+"/courier", `{"name":"Nomonjn"}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, `did you mean "Nomonjon"`)
	})

	t.Run("empty scanner input", func(t *testing.T) {
		rec := a.do(http.MethodPost, base+"/manifest/scans", `{"text":"  \n "}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		decodeError(t, rec)
	})

	t.Run("quick add without id", func(t *testing.T) {
		rec := a.do(http.MethodPost, base+"/manifest/rows", `{"id":" ","amount":"100"}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("print view without rows for the courier", func(t *testing.T) {
		rec := a.do(http.MethodGet, base+"/print-view", "")

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		decodeError(t, rec)
	})
}

func TestServer_MalformedRequests(t *testing.T) {
	a := newAPI(t, stubClipboard{})
	base := a.createSession()

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"unknown session", http.MethodGet, "/api/v1/sessions/3f0c8d0e-6c1a-4b55-9a51-0c5a3c1f9b11/manifest", "", http.StatusNotFound},
		{"nil session id", http.MethodGet, "/api/v1/sessions/00000000-0000-0000-0000-000000000000/manifest", "", http.StatusNotFound},
		{"session id is not a uuid", http.MethodGet, "/api/v1/sessions/not-a-uuid/manifest", "", http.StatusBadRequest},
		{"row index is not a number", http.MethodDelete, base + "/manifest/rows/first", "", http.StatusBadRequest},
		{"missing required field", http.MethodPut, base + "/courier", `{}`, http.StatusBadRequest},
		{"unknown pad", http.MethodDelete, base + "/signatures/sender", "", http.StatusBadRequest},
		{"unknown export format", http.MethodGet, base + "/exports/doc", "", http.StatusBadRequest},
		{"unknown route", http.MethodGet, "/api/v1/nothing", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(tt.method, tt.target, tt.body)

			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			decodeError(t, rec)
		})
	}
}

func TestServer_Signatures(t *testing.T) {
	a := newAPI(t, stubClipboard{})
	base := a.createSession()

	stroke := `{"events":[
		{"type":"down","x":20,"y":20},
		{"type":"move","x":200,"y":100},
		{"type":"move","x":380,"y":40},
		{"type":"up"}]}`

	rec := a.do(http.MethodPost, base+"/signatures/courier/events", stroke)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	m := a.manifest(base)
	assert.True(t, m.CourierSigned)
	assert.False(t, m.ReceiverSigned)

	rec = a.do(http.MethodDelete, base+"/signatures/courier", "")
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	assert.False(t, a.manifest(base).CourierSigned)

	rec = a.do(http.MethodPost, base+"/signatures/receiver/events", `{"events":[]}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestServer_Exports(t *testing.T) {
	a := newAPI(t, stubClipboard{})
	base := a.createSession()

	require.Equal(t, http.StatusNoContent, a.do(http.MethodPut, base+"/courier", `{"name":"Nomonjon"}`).Code)
	require.Equal(t, http.StatusNoContent, a.do(http.MethodPost, base+"/manifest/scans", scans).Code)

	t.Run("csv", func(t *testing.T) {
		rec := a.do(http.MethodGet, base+"/exports/csv", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "text/csv;charset=utf-8", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, `attachment; filename=manifest.csv`, rec.Header().Get(echo.HeaderContentDisposition))
		assert.True(t, strings.HasPrefix(rec.Body.String(), `"№","ID"`))
		assert.Contains(t, rec.Body.String(), `"A1","John Doe"`)
	})

	t.Run("xlsx", func(t *testing.T) {
		rec := a.do(http.MethodGet, base+"/exports/xlsx", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"))
	})

	t.Run("pdf", func(t *testing.T) {
		rec := a.do(http.MethodGet, base+"/exports/pdf", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "manifest_Nomonjon_2026-10-19.pdf")
		assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
	})

	t.Run("pdf without rows for the courier", func(t *testing.T) {
		require.Equal(t, http.StatusNoContent, a.do(http.MethodPut, base+"/courier", `{"name":"Muzaffar Aliyev"}`).Code)

		rec := a.do(http.MethodGet, base+"/exports/pdf", "")

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		decodeError(t, rec)
	})
}

func TestServer_ReadClipboard(t *testing.T) {
	t.Run("returns clipboard text", func(t *testing.T) {
		a := newAPI(t, stubClipboard{text: "A1|x"})

		rec := a.do(http.MethodGet, "/api/v1/clipboard", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"text":"A1|x"}`, rec.Body.String())
	})

	t.Run("reports an unavailable clipboard", func(t *testing.T) {
		a := newAPI(t, stubClipboard{err: errors.New("no display")})

		rec := a.do(http.MethodGet, "/api/v1/clipboard", "")

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		decodeError(t, rec)
	})
}

func TestServer_HealthAndDocs(t *testing.T) {
	a := newAPI(t, stubClipboard{})

	rec := a.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())

	rec = a.do(http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dispatch Desk API")
}
