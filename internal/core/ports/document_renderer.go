package ports

import (
	"context"
	"image"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/manifest"
)

// ManifestDocument is everything a renderer needs for a courier manifest.
// Rows are already filtered to Courier and numbered from 1.
type ManifestDocument struct {
	Courier string
	Date    string
	Note    string
	Rows    []manifest.Row
	// Total is the formatted sum of Rows, currency suffix included.
	Total string
	// Signatures holds the captured pad images. Blank pads are nil.
	CourierSignature  image.Image
	ReceiverSignature image.Image
}

// WorkbookDocument is the whole manifest, every courier included.
type WorkbookDocument struct {
	Rows  []manifest.Row
	Total kernel.Amount
}

// DocumentRenderer produces the printable PDF manifest of one courier.
type DocumentRenderer interface {
	RenderManifest(ctx context.Context, doc ManifestDocument) ([]byte, error)
}

// SpreadsheetRenderer produces the XLSX workbook of the whole manifest.
type SpreadsheetRenderer interface {
	RenderWorkbook(ctx context.Context, doc WorkbookDocument) ([]byte, error)
}
