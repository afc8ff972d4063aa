// Package session provides the Session aggregate: the explicit context object
// of one operator's manifest-building session.
//
// Everything the desk used to keep in page-level globals lives here instead:
// the selected courier, the row store, the manifest meta and the signature
// pads. The memory adapter serializes access to a session, so the aggregate
// itself carries no locks.
package session
