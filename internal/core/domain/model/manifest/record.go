package manifest

import (
	"fmt"
	"strings"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/pkg/errs"
)

// Column names one editable cell of a manifest row.
type Column string

const (
	ColumnID      Column = "id"
	ColumnName    Column = "name"
	ColumnPhone   Column = "phone"
	ColumnAddress Column = "address"
	ColumnAmount  Column = "amount"
	ColumnCourier Column = "courier"
)

// columnAliases maps the short cell names used by the desk's table markup.
var columnAliases = map[string]Column{
	"id":        ColumnID,
	"name":      ColumnName,
	"recipient": ColumnName,
	"phone":     ColumnPhone,
	"address":   ColumnAddress,
	"addr":      ColumnAddress,
	"amount":    ColumnAmount,
	"sum":       ColumnAmount,
	"courier":   ColumnCourier,
}

// ErrCourierIsNotEditable is returned when an edit targets the courier column.
// The courier of a row is fixed when the row is created.
var ErrCourierIsNotEditable = errs.NewValueIsInvalidErrorWithCause(
	"column", fmt.Errorf("%s is set when the row is created and cannot be edited", ColumnCourier),
)

// ParseColumn resolves a column name, accepting the short aliases "addr" and "sum".
func ParseColumn(s string) (Column, error) {
	c, ok := columnAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("column", fmt.Errorf("%q is not a manifest column", s))
	}
	return c, nil
}

// PackageRecord is one package on the manifest.
//
// Records have no identity of their own: a row is addressed by its position,
// and duplicate or empty IDs are allowed. The amount is always normalized and
// the courier is copied from the operator's selection at creation time.
type PackageRecord struct {
	id            string
	recipientName string
	phone         string
	address       string
	amount        kernel.Amount
	courier       string
}

// NewPackageRecord creates a record. Text fields are stored as given.
func NewPackageRecord(id, recipientName, phone, address string, amount kernel.Amount, courier string) PackageRecord {
	return PackageRecord{
		id:            id,
		recipientName: recipientName,
		phone:         phone,
		address:       address,
		amount:        amount,
		courier:       courier,
	}
}

// ID returns the package identifier as scanned. It may be empty.
func (r PackageRecord) ID() string { return r.id }

// RecipientName returns the recipient's name.
func (r PackageRecord) RecipientName() string { return r.recipientName }

// Phone returns the recipient's phone as entered.
func (r PackageRecord) Phone() string { return r.phone }

// Address returns the delivery address.
func (r PackageRecord) Address() string { return r.address }

// Amount returns the sum to collect for the package.
func (r PackageRecord) Amount() kernel.Amount { return r.amount }

// Courier returns the courier the package was scanned for.
func (r PackageRecord) Courier() string { return r.courier }

// Cell returns the text shown in column c.
func (r PackageRecord) Cell(c Column) string {
	switch c {
	case ColumnID:
		return r.id
	case ColumnName:
		return r.recipientName
	case ColumnPhone:
		return r.phone
	case ColumnAddress:
		return r.address
	case ColumnAmount:
		return r.amount.String()
	case ColumnCourier:
		return r.courier
	default:
		return ""
	}
}

// withCell returns a copy of r with column c replaced by raw. Text columns are
// free text; the amount column goes through kernel.ParseAmount.
func (r PackageRecord) withCell(c Column, raw string) (PackageRecord, error) {
	switch c {
	case ColumnID:
		r.id = raw
	case ColumnName:
		r.recipientName = raw
	case ColumnPhone:
		r.phone = raw
	case ColumnAddress:
		r.address = raw
	case ColumnAmount:
		r.amount = kernel.ParseAmount(raw)
	case ColumnCourier:
		return r, ErrCourierIsNotEditable
	default:
		return r, errs.NewValueIsInvalidErrorWithCause("column", fmt.Errorf("%q is not a manifest column", c))
	}
	return r, nil
}

// Row is a record together with its 1-based display index.
type Row struct {
	Index  int
	Record PackageRecord
}
