// Package courier models the desk's courier roster and the operator's current
// courier selection.
//
// Key business rules:
//   - The roster is fixed for the life of the process and keeps its configured order
//   - A new session selects the first roster entry
//   - Only roster names can be selected; near misses come back with a suggestion
//   - Package records copy the selected name when they are created
package courier
