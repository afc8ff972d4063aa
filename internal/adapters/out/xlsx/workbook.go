// Package xlsx renders the manifest workbook with excelize.
package xlsx

import (
	"context"
	"fmt"

	"dispatchdesk/internal/core/domain/services"
	"dispatchdesk/internal/core/ports"

	"github.com/xuri/excelize/v2"
)

// SheetName is the only worksheet of the workbook.
const SheetName = "Manifest"

var _ ports.SpreadsheetRenderer = Renderer{}

// columnWidths follow services.CSVHeader.
var columnWidths = []float64{6, 16, 24, 18, 36, 12, 22}

// Renderer writes the whole manifest to a single-sheet workbook: the CSV header,
// one line per row with the amount as a number, and a total line.
type Renderer struct{}

// NewRenderer creates a workbook renderer.
func NewRenderer() Renderer {
	return Renderer{}
}

// RenderWorkbook implements ports.SpreadsheetRenderer.
func (Renderer) RenderWorkbook(ctx context.Context, doc ports.WorkbookDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, err
	}

	header := make([]any, len(services.CSVHeader))
	for i, title := range services.CSVHeader {
		header[i] = title
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range doc.Rows {
		r := row.Record
		values := []any{row.Index, r.ID(), r.RecipientName(), r.Phone(), r.Address(), r.Amount().Int(), r.Courier()}
		if err := f.SetSheetRow(SheetName, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return nil, err
		}
	}

	totalRow := len(doc.Rows) + 2
	total := []any{nil, nil, nil, nil, "ИТОГО", doc.Total.Int()}
	if err := f.SetSheetRow(SheetName, fmt.Sprintf("A%d", totalRow), &total); err != nil {
		return nil, err
	}

	if err := styleSheet(f, totalRow); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func styleSheet(f *excelize.File, totalRow int) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"7C3AED"}},
	})
	if err != nil {
		return err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	lastColumn, err := excelize.ColumnNumberToName(len(services.CSVHeader))
	if err != nil {
		return err
	}
	if err = f.SetCellStyle(SheetName, "A1", lastColumn+"1", headerStyle); err != nil {
		return err
	}
	if err = f.SetCellStyle(
		SheetName, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("%s%d", lastColumn, totalRow), totalStyle,
	); err != nil {
		return err
	}

	for i, width := range columnWidths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err = f.SetColWidth(SheetName, name, name, width); err != nil {
			return err
		}
	}
	return nil
}
