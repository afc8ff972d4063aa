package services

import (
	"errors"

	"dispatchdesk/internal/core/domain/model/manifest"
)

// ErrEmptyPartition is returned when the manifest has no rows for the courier
// being printed or exported.
var ErrEmptyPartition = errors.New("no rows for the selected courier")

// CourierPartitioner selects the rows that belong to one courier for the print
// view and the PDF export.
//
// Business rules:
//   - Matching is exact and case-sensitive on the courier copied into each row
//   - Manifest order is kept and the result is renumbered from 1
//   - An empty result is an error, callers must not print or export it
type CourierPartitioner struct{}

// NewCourierPartitioner creates a new CourierPartitioner instance.
func NewCourierPartitioner() CourierPartitioner {
	return CourierPartitioner{}
}

// Partition returns the rows of records whose courier equals name.
func (CourierPartitioner) Partition(records []manifest.PackageRecord, name string) ([]manifest.Row, error) {
	var rows []manifest.Row
	for _, record := range records {
		if record.Courier() != name {
			continue
		}
		rows = append(rows, manifest.Row{Index: len(rows) + 1, Record: record})
	}

	if len(rows) == 0 {
		return nil, ErrEmptyPartition
	}
	return rows, nil
}
