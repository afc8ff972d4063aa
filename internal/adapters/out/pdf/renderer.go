// Package pdf renders a courier's printable manifest with go-pdf/fpdf.
//
// The layout is A4 in points: the legal header, the title with the courier,
// the date and optional note, the rows table, the total and two signature
// boxes. Rows wrap inside their cells and the table continues on a new page
// with its header repeated.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"unicode/utf8"

	"dispatchdesk/internal/core/ports"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultHeaderText is printed above the title when no header is configured.
const DefaultHeaderText = "Biz kim quyidagi imzo chekuvchilar ... (гарантийный текст)"

const (
	margin      = 40.0
	lineFactor  = 1.15
	cellPadding = 5.0

	headerFontSize = 10.0
	titleFontSize  = 12.0
	metaFontSize   = 9.0
	tableFontSize  = 9.0
	totalFontSize  = 11.0

	titleY         = 110.0
	titleGap       = 24.0
	tableGap       = 50.0
	maxHeaderLines = 20

	signBoxWidth    = 220.0
	signBoxHeight   = 80.0
	signImageWidth  = 200.0
	signImageHeight = 60.0
	signBlockHeight = 50 + 96 + 8

	fontFamily = "manifest"
)

var _ ports.DocumentRenderer = (*Renderer)(nil)

var tableHeader = []string{"#", "ID", "Получатель", "Телефон", "Адрес", "Сумма"}

// Config holds the renderer settings.
type Config struct {
	// HeaderText is the legal text above the title.
	HeaderText string
	// FontPath and BoldFontPath point to TrueType fonts with Cyrillic glyphs.
	// Without FontPath the Go fonts are embedded. BoldFontPath defaults to
	// FontPath.
	FontPath     string
	BoldFontPath string
	// Compress enables stream compression of the output.
	Compress bool
}

// Renderer implements ports.DocumentRenderer.
type Renderer struct {
	cfg     Config
	regular []byte
	bold    []byte
}

// NewRenderer loads the configured fonts once so a bad path fails at start-up
// rather than on the first export.
func NewRenderer(cfg Config) (*Renderer, error) {
	if cfg.HeaderText == "" {
		cfg.HeaderText = DefaultHeaderText
	}

	r := &Renderer{cfg: cfg, regular: goregular.TTF, bold: gobold.TTF}
	if cfg.FontPath == "" {
		return r, nil
	}

	var err error
	if r.regular, err = os.ReadFile(cfg.FontPath); err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	r.bold = r.regular
	if cfg.BoldFontPath != "" {
		if r.bold, err = os.ReadFile(cfg.BoldFontPath); err != nil {
			return nil, fmt.Errorf("read bold font: %w", err)
		}
	}
	return r, nil
}

// RenderManifest implements ports.DocumentRenderer.
func (r *Renderer) RenderManifest(ctx context.Context, doc ports.ManifestDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := r.newPage()
	tableY := p.drawHeading(r.cfg.HeaderText, doc)
	finalY := p.drawTable(doc, tableY) + 10

	if finalY+signBlockHeight > p.height-margin {
		p.pdf.AddPage()
		finalY = margin
	}

	p.setFont("", totalFontSize)
	p.pdf.Text(p.width-160, finalY+16, "ИТОГО: "+doc.Total)

	if err := p.drawSignatures(finalY+50, doc); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := p.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// page wraps one fpdf document.
type page struct {
	pdf    *fpdf.Fpdf
	width  float64
	height float64
}

func (r *Renderer) newPage() *page {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCompression(r.cfg.Compress)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)

	pdf.AddUTF8FontFromBytes(fontFamily, "", r.regular)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", r.bold)

	p := &page{pdf: pdf}
	pdf.AddPage()
	p.width, p.height = pdf.GetPageSize()
	return p
}

func (p *page) setFont(style string, size float64) {
	p.pdf.SetFont(fontFamily, style, size)
}

func (p *page) lineHeight(size float64) float64 {
	return size * lineFactor
}

// headingLayout returns the title baseline and the table top for a header of
// headerLines lines. Short headers keep the fixed layout; longer ones push the
// title down below their last line.
func headingLayout(headerLines int) (title, table float64) {
	lastLine := margin + float64(max(headerLines, 1)-1)*headerFontSize*lineFactor
	title = max(titleY, lastLine+titleGap)
	return title, title + tableGap
}

// drawHeading draws the header, title, date and note and returns the y where
// the table starts. Header text beyond maxHeaderLines lines is dropped.
func (p *page) drawHeading(headerText string, doc ports.ManifestDocument) float64 {
	p.setFont("", headerFontSize)
	p.pdf.SetTextColor(0, 0, 0)

	lines := p.wrap(headerText, p.width-2*margin)
	if len(lines) > maxHeaderLines {
		lines = lines[:maxHeaderLines]
	}
	for i, line := range lines {
		p.pdf.Text(margin, margin+float64(i)*p.lineHeight(headerFontSize), line)
	}

	title, table := headingLayout(len(lines))

	p.setFont("B", titleFontSize)
	p.pdf.Text(margin, title, "Манифест — курьер: "+doc.Courier)

	p.setFont("", metaFontSize)
	p.pdf.Text(margin, title+16, "Дата: "+doc.Date)
	if doc.Note != "" {
		p.pdf.Text(margin, title+30, "Примечание: "+doc.Note)
	}
	return table
}

// columnWidths splits the table width; the address column takes what is left.
func (p *page) columnWidths() []float64 {
	widths := []float64{24, 72, 100, 84, 0, 70}
	rest := p.width - 2*margin
	for _, w := range widths {
		rest -= w
	}
	widths[4] = rest
	return widths
}

// drawTable draws the header and the rows and returns the y below the table.
func (p *page) drawTable(doc ports.ManifestDocument, top float64) float64 {
	widths := p.columnWidths()
	lineH := p.lineHeight(tableFontSize)
	y := p.drawTableHeader(top, widths)

	for i, row := range doc.Rows {
		r := row.Record
		cells := []string{fmt.Sprint(row.Index), r.ID(), r.RecipientName(), r.Phone(), r.Address(), r.Amount().String()}

		p.setFont("", tableFontSize)
		lines := make([][]string, len(cells))
		rowLines := 1
		for c, text := range cells {
			lines[c] = p.wrap(text, widths[c]-2*cellPadding)
			rowLines = max(rowLines, len(lines[c]))
		}
		rowH := float64(rowLines)*lineH + 2*cellPadding

		if y+rowH > p.height-margin {
			p.pdf.AddPage()
			y = p.drawTableHeader(margin, widths)
			p.setFont("", tableFontSize)
		}

		if i%2 == 1 {
			p.pdf.SetFillColor(245, 245, 245)
			p.pdf.Rect(margin, y, p.width-2*margin, rowH, "F")
		}

		x := margin
		p.pdf.SetTextColor(0, 0, 0)
		for c, cellLines := range lines {
			align := "L"
			if c == len(lines)-1 {
				align = "R"
			}
			for l, line := range cellLines {
				p.pdf.SetXY(x+cellPadding, y+cellPadding+float64(l)*lineH)
				p.pdf.CellFormat(widths[c]-2*cellPadding, lineH, line, "", 0, align, false, 0, "")
			}
			x += widths[c]
		}
		y += rowH
	}
	return y
}

func (p *page) drawTableHeader(y float64, widths []float64) float64 {
	p.setFont("B", tableFontSize)
	p.pdf.SetFillColor(124, 58, 237)
	p.pdf.SetTextColor(255, 255, 255)

	h := p.lineHeight(tableFontSize) + 2*cellPadding
	x := margin
	for c, title := range tableHeader {
		p.pdf.SetXY(x, y)
		p.pdf.CellFormat(widths[c], h, title, "", 0, "L", true, 0, "")
		x += widths[c]
	}
	p.pdf.SetTextColor(0, 0, 0)
	return y + h
}

func (p *page) drawSignatures(signY float64, doc ports.ManifestDocument) error {
	p.pdf.SetDrawColor(0, 0, 0)
	p.pdf.SetLineWidth(0.5)
	p.pdf.Rect(60, signY, signBoxWidth, signBoxHeight, "D")
	p.pdf.Rect(p.width-280, signY, signBoxWidth, signBoxHeight, "D")

	p.setFont("", totalFontSize)
	p.pdf.Text(60, signY+96, "Подпись курьера")
	p.pdf.Text(p.width-280, signY+96, "Подпись принимающего")

	if err := p.drawSignature("courier-signature", doc.CourierSignature, 70, signY+10); err != nil {
		return err
	}
	return p.drawSignature("receiver-signature", doc.ReceiverSignature, p.width-270, signY+10)
}

func (p *page) drawSignature(name string, img image.Image, x, y float64) error {
	if img == nil {
		return nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	p.pdf.RegisterImageOptionsReader(name, opts, &buf)
	p.pdf.ImageOptions(name, x, y, signImageWidth, signImageHeight, false, opts, 0, "")
	return nil
}

// wrap breaks text into lines no wider than width in the current font. Words
// longer than a line are split between characters.
func (p *page) wrap(text string, width float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(paragraph) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if p.pdf.GetStringWidth(candidate) <= width {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
			}
			chunks := p.splitWord(word, width)
			lines = append(lines, chunks[:len(chunks)-1]...)
			line = chunks[len(chunks)-1]
		}
		lines = append(lines, line)
	}
	return lines
}

func (p *page) splitWord(word string, width float64) []string {
	var chunks []string
	chunk := ""
	for len(word) > 0 {
		_, size := utf8.DecodeRuneInString(word)
		next := chunk + word[:size]
		if chunk != "" && p.pdf.GetStringWidth(next) > width {
			chunks = append(chunks, chunk)
			next = word[:size]
		}
		chunk = next
		word = word[size:]
	}
	return append(chunks, chunk)
}
