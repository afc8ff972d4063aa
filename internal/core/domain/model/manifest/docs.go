// Package manifest provides the manifest row store: package records, their
// positional rows and the running total.
//
// The package includes:
//   - PackageRecord: one scanned or typed package
//   - Store: the ordered rows with add, edit, delete and clear
//   - Meta: the date and note printed on exports
//   - SumAmounts/SumRows: the totals aggregation
//
// Key business rules:
//   - Rows are addressed by their 1-based display index, never by package ID
//   - Deleting a row renumbers the remaining rows contiguously
//   - The total is recomputed synchronously on every mutation
//   - Amount cells never fail to parse: malformed input becomes zero
package manifest
