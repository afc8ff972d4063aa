package services

import (
	"regexp"
	"strings"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/manifest"
)

const (
	// ScanFieldCount is the number of positional fields of a scan line:
	// ID, recipient name, phone, address and amount.
	ScanFieldCount = 5

	// minCommaFields is the smallest comma split treated as a field list.
	// Fewer commas are assumed to be part of the text, e.g. in an address.
	minCommaFields = 5
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// ScanLineParser turns the free text produced by a barcode scanner or pasted
// from a spreadsheet into package records.
//
// Splitting policy, first match wins:
//   - fields are separated by "|"
//   - otherwise by a tab if the line has one
//   - otherwise by ";" if the line has one
//   - otherwise by "," when that gives at least five fields
//   - otherwise the whole line is the package ID
//
// Every field is trimmed. Missing trailing fields are empty, fields past the
// fifth are ignored, and the amount keeps only its digits (0 when nothing
// usable is left). Parsing never fails.
//
// Example usage:
//
//	parser := services.NewScanLineParser()
//	records := parser.ParseBatch("A1|John|+998901234567|Tashkent|15000", "Nomonjon")
type ScanLineParser struct{}

// NewScanLineParser creates a new ScanLineParser instance.
func NewScanLineParser() ScanLineParser {
	return ScanLineParser{}
}

// Parse converts one line into a record owned by courier.
func (p ScanLineParser) Parse(line, courier string) manifest.PackageRecord {
	fields := make([]string, ScanFieldCount)
	copy(fields, p.split(strings.TrimSpace(line)))

	return manifest.NewPackageRecord(
		fields[0],
		fields[1],
		fields[2],
		fields[3],
		kernel.ParseAmount(fields[4]),
		courier,
	)
}

// ParseBatch splits raw on line breaks, drops blank lines and parses the rest
// in order. The result is empty when raw holds no text.
func (p ScanLineParser) ParseBatch(raw, courier string) []manifest.PackageRecord {
	lines := SplitScanLines(raw)
	records := make([]manifest.PackageRecord, 0, len(lines))
	for _, line := range lines {
		records = append(records, p.Parse(line, courier))
	}
	return records
}

// SplitScanLines returns the trimmed non-blank lines of raw.
func SplitScanLines(raw string) []string {
	var lines []string
	for _, line := range lineBreak.Split(strings.TrimSpace(raw), -1) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func (p ScanLineParser) split(line string) []string {
	parts := strings.Split(line, "|")
	if len(parts) == 1 {
		switch {
		case strings.Contains(line, "\t"):
			parts = strings.Split(line, "\t")
		case strings.Contains(line, ";"):
			parts = strings.Split(line, ";")
		default:
			if commas := strings.Split(line, ","); len(commas) >= minCommaFields {
				parts = commas
			}
		}
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
