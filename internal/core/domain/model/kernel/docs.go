// Package kernel provides the small value objects shared by the dispatch desk
// domain model.
//
// The package includes:
//   - UUID: identifier of an operator session
//   - Amount: a non-negative money sum with the lenient digits-only parser
//     used for every amount the operator types or pastes
//
// Both types are immutable and safe to copy.
package kernel
