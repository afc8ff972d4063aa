package services

import (
	"strconv"
	"strings"

	"dispatchdesk/internal/core/domain/model/manifest"
)

const (
	// CSVFileName is the download name of the CSV export.
	CSVFileName = "manifest.csv"
	// CSVContentType is the media type of the CSV export.
	CSVContentType = "text/csv;charset=utf-8"
)

// CSVHeader is the first line of the CSV export.
var CSVHeader = []string{"№", "ID", "Получатель", "Телефон", "Адрес", "Сумма", "Курьер"}

// ManifestCSVSerializer writes the whole manifest, every courier included, as
// CSV. Each cell is wrapped in double quotes with inner quotes doubled, and
// lines are joined by "\n" with no trailing newline.
type ManifestCSVSerializer struct{}

// NewManifestCSVSerializer creates a new ManifestCSVSerializer instance.
func NewManifestCSVSerializer() ManifestCSVSerializer {
	return ManifestCSVSerializer{}
}

// Serialize renders the header followed by one line per row.
func (ManifestCSVSerializer) Serialize(rows []manifest.Row) []byte {
	var b strings.Builder
	writeCSVLine(&b, CSVHeader)
	for _, row := range rows {
		b.WriteByte('\n')
		r := row.Record
		writeCSVLine(&b, []string{
			strconv.Itoa(row.Index),
			r.ID(),
			r.RecipientName(),
			r.Phone(),
			r.Address(),
			r.Amount().String(),
			r.Courier(),
		})
	}
	return []byte(b.String())
}

func writeCSVLine(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
}
