package manifest

import (
	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/pkg/errs"
)

// Store is the ordered collection of manifest rows for one session.
//
// Invariants:
//   - Rows stay in insertion order; display indices are always 1..n
//   - Total always equals SumAmounts over the current rows; every mutating
//     method recomputes it before returning
//   - Only the Store mutates its rows
//
// A Store is not safe for concurrent use; the session unit of work serializes
// access to it.
type Store struct {
	records []PackageRecord
	total   kernel.Amount
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends records in order.
func (s *Store) Add(records ...PackageRecord) {
	s.records = append(s.records, records...)
	s.recalc()
}

// Edit replaces one cell of the row at display index index and returns the
// updated row. Amount text is normalized (non-digits stripped, invalid → 0);
// other text columns are stored verbatim; the courier column is rejected.
func (s *Store) Edit(index int, column Column, raw string) (Row, error) {
	pos, err := s.position(index)
	if err != nil {
		return Row{}, err
	}

	updated, err := s.records[pos].withCell(column, raw)
	if err != nil {
		return Row{}, err
	}

	s.records[pos] = updated
	s.recalc()
	return Row{Index: index, Record: updated}, nil
}

// Delete removes the row at display index index. The remaining rows are
// renumbered 1..n-1 in their current order.
func (s *Store) Delete(index int) (PackageRecord, error) {
	pos, err := s.position(index)
	if err != nil {
		return PackageRecord{}, err
	}

	removed := s.records[pos]
	s.records = append(s.records[:pos:pos], s.records[pos+1:]...)
	s.recalc()
	return removed, nil
}

// Clear removes every row.
func (s *Store) Clear() {
	s.records = nil
	s.recalc()
}

// Len returns the number of rows.
func (s *Store) Len() int {
	return len(s.records)
}

// Total returns the sum computed by the last mutation.
func (s *Store) Total() kernel.Amount {
	return s.total
}

// Rows returns the rows with their current display indices.
func (s *Store) Rows() []Row {
	rows := make([]Row, len(s.records))
	for i, r := range s.records {
		rows[i] = Row{Index: i + 1, Record: r}
	}
	return rows
}

// Records returns a copy of the records in order.
func (s *Store) Records() []PackageRecord {
	out := make([]PackageRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) recalc() {
	s.total = SumAmounts(s.records)
}

func (s *Store) position(index int) (int, error) {
	if index < 1 || index > len(s.records) {
		return 0, errs.NewValueIsOutOfRangeError("row", index, 1, len(s.records))
	}
	return index - 1, nil
}
