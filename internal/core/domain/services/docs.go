// Package services provides stateless domain services of the dispatch desk that
// work on manifest records but do not belong to a single aggregate.
//
// The package includes:
//   - ScanLineParser: turns free-text scanner lines into package records
//   - CourierPartitioner: selects and renumbers the rows of one courier
//   - AmountFormatter: locale-aware display of manifest totals
//   - ManifestCSVSerializer: the whole-manifest CSV export
//
// All services are value types with no mutable state and are safe for
// concurrent use.
package services
