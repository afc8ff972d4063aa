package manifest

import "dispatchdesk/internal/core/domain/model/kernel"

// SumAmounts returns the sum of the records' amounts.
func SumAmounts(records []PackageRecord) kernel.Amount {
	total := kernel.ZeroAmount
	for _, r := range records {
		total = total.Add(r.amount)
	}
	return total
}

// SumRows returns the sum of the rows' amounts.
func SumRows(rows []Row) kernel.Amount {
	total := kernel.ZeroAmount
	for _, r := range rows {
		total = total.Add(r.Record.amount)
	}
	return total
}
