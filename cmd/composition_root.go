package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"dispatchdesk/internal/adapters/in/http"
	"dispatchdesk/internal/adapters/out/clipboard"
	"dispatchdesk/internal/adapters/out/memory"
	"dispatchdesk/internal/adapters/out/pdf"
	"dispatchdesk/internal/adapters/out/xlsx"
	"dispatchdesk/internal/core/application/usecases/commands"
	"dispatchdesk/internal/core/application/usecases/queries"
	"dispatchdesk/internal/core/domain/model/courier"
	"dispatchdesk/internal/core/domain/services"
	"dispatchdesk/internal/jobs"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	registry   *memory.Registry
	uowFactory *memory.UnitOfWorkFactory
	roster     courier.Roster
	formatter  services.AmountFormatter
	renderer   *pdf.Renderer
	clipboard  *clipboard.CommandClipboard
}

func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	roster := courier.DefaultRoster()
	if len(config.Couriers) > 0 {
		var err error
		if roster, err = courier.NewRoster(config.Couriers...); err != nil {
			return CompositionRoot{}, fmt.Errorf("COURIERS: %w", err)
		}
	}

	locale, err := language.Parse(config.Locale)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("LOCALE: %w", err)
	}

	renderer, err := pdf.NewRenderer(pdf.Config{
		HeaderText:   config.PDFHeaderText,
		FontPath:     config.PDFFontPath,
		BoldFontPath: config.PDFFontBoldPath,
		Compress:     true,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	registry := memory.NewRegistry(time.Now)

	return CompositionRoot{
		config:     config,
		logger:     logger,
		registry:   registry,
		uowFactory: memory.NewUnitOfWorkFactory(registry),
		roster:     roster,
		formatter:  services.NewAmountFormatter(locale, config.CurrencySuffix),
		renderer:   renderer,
		clipboard:  clipboard.New(config.ClipboardCommand),
	}, nil
}

func (c *CompositionRoot) sessionUoWFactory() commands.SessionUoWFactory {
	return FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateSessionCommandHandler() commands.CreateSessionCommandHandler {
	return commands.NewCreateSessionCommandHandler(
		c.sessionUoWFactory(), c.roster, c.config.SignatureWidth, c.config.SignatureHeight)
}

func (c *CompositionRoot) CreateSelectCourierCommandHandler() commands.SelectCourierCommandHandler {
	return commands.NewSelectCourierCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateAddScanLinesCommandHandler() commands.AddScanLinesCommandHandler {
	return commands.NewAddScanLinesCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateQuickAddRecordCommandHandler() commands.QuickAddRecordCommandHandler {
	return commands.NewQuickAddRecordCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateEditCellCommandHandler() commands.EditCellCommandHandler {
	return commands.NewEditCellCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRowCommandHandler() commands.DeleteRowCommandHandler {
	return commands.NewDeleteRowCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateClearManifestCommandHandler() commands.ClearManifestCommandHandler {
	return commands.NewClearManifestCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateSetManifestMetaCommandHandler() commands.SetManifestMetaCommandHandler {
	return commands.NewSetManifestMetaCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateApplySignatureEventsCommandHandler() commands.ApplySignatureEventsCommandHandler {
	return commands.NewApplySignatureEventsCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateClearSignatureCommandHandler() commands.ClearSignatureCommandHandler {
	return commands.NewClearSignatureCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateGetManifestQueryHandler() queries.GetManifestQueryHandler {
	return queries.NewGetManifestQueryHandler(c.registry, c.formatter)
}

func (c *CompositionRoot) CreateGetCouriersQueryHandler() queries.GetCouriersQueryHandler {
	return queries.NewGetCouriersQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateExportCSVQueryHandler() queries.ExportCSVQueryHandler {
	return queries.NewExportCSVQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateExportXLSXQueryHandler() queries.ExportXLSXQueryHandler {
	return queries.NewExportXLSXQueryHandler(c.registry, xlsx.NewRenderer())
}

func (c *CompositionRoot) CreateExportPDFQueryHandler() queries.ExportPDFQueryHandler {
	return queries.NewExportPDFQueryHandler(c.registry, c.renderer, c.formatter)
}

func (c *CompositionRoot) CreateCapturePrintViewQueryHandler() queries.CapturePrintViewQueryHandler {
	return queries.NewCapturePrintViewQueryHandler(c.registry, c.formatter)
}

func (c *CompositionRoot) CreateReadClipboardQueryHandler() queries.ReadClipboardQueryHandler {
	return queries.NewReadClipboardQueryHandler(c.clipboard, c.config.ClipboardTimeout)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.registry, c.config.SessionTTL, c.config.SweepSchedule, c.logger)
}

// CreateEcho wires every handler into the HTTP API.
func (c *CompositionRoot) CreateEcho() (*echo.Echo, error) {
	server := http.NewServer(http.Handlers{
		CreateSession:        c.CreateCreateSessionCommandHandler(),
		SelectCourier:        c.CreateSelectCourierCommandHandler(),
		AddScanLines:         c.CreateAddScanLinesCommandHandler(),
		QuickAddRecord:       c.CreateQuickAddRecordCommandHandler(),
		EditCell:             c.CreateEditCellCommandHandler(),
		DeleteRow:            c.CreateDeleteRowCommandHandler(),
		ClearManifest:        c.CreateClearManifestCommandHandler(),
		SetManifestMeta:      c.CreateSetManifestMetaCommandHandler(),
		ApplySignatureEvents: c.CreateApplySignatureEventsCommandHandler(),
		ClearSignature:       c.CreateClearSignatureCommandHandler(),
		GetManifest:          c.CreateGetManifestQueryHandler(),
		GetCouriers:          c.CreateGetCouriersQueryHandler(),
		ExportCSV:            c.CreateExportCSVQueryHandler(),
		ExportXLSX:           c.CreateExportXLSXQueryHandler(),
		ExportPDF:            c.CreateExportPDFQueryHandler(),
		CapturePrintView:     c.CreateCapturePrintViewQueryHandler(),
		ReadClipboard:        c.CreateReadClipboardQueryHandler(),
	}, time.Now, c.logger)

	return http.NewEcho(server)
}

// ClipboardCommand reports the clipboard tool in use, "" when none was found.
func (c *CompositionRoot) ClipboardCommand() string {
	return c.clipboard.Command()
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}
