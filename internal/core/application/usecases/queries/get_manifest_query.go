// Package queries contains read operations on a desk session.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries copy what they need while the session is held and build their read
// models afterwards, so slow rendering never blocks the operator's commands.
package queries

import (
	"errors"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/manifest"
	"dispatchdesk/internal/pkg/guard"
)

var ErrGetManifestQueryIsNotConstructed = errors.New(
	"GetManifestQuery must be created via NewGetManifestQuery constructor",
)

// GetManifestQuery retrieves the manifest table of a session with its totals.
//
// Example:
//
//	query, _ := NewGetManifestQuery(sessionID)
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load manifest: %w", err)
//	}
//	fmt.Printf("%d rows, total %s\n", len(view.Rows), view.BigTotal)
type GetManifestQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetManifestQuery creates a manifest query for the session.
func NewGetManifestQuery(sessionID kernel.UUID) (GetManifestQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetManifestQuery{}, err
	}
	return GetManifestQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetManifestQuery) Validate() error {
	return q.guard.Validate(ErrGetManifestQueryIsNotConstructed)
}

// SessionID returns the queried session.
func (q GetManifestQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// RowView is one manifest row in a read model.
type RowView struct {
	Index         int
	ID            string
	RecipientName string
	Phone         string
	Address       string
	Amount        int
	Courier       string
}

// NewRowViews converts rows into read models, keeping their indices.
func NewRowViews(rows []manifest.Row) []RowView {
	views := make([]RowView, 0, len(rows))
	for _, row := range rows {
		r := row.Record
		views = append(views, RowView{
			Index:         row.Index,
			ID:            r.ID(),
			RecipientName: r.RecipientName(),
			Phone:         r.Phone(),
			Address:       r.Address(),
			Amount:        r.Amount().Int(),
			Courier:       r.Courier(),
		})
	}
	return views
}

// GetManifestQueryResponse is the operator's view of a session.
type GetManifestQueryResponse struct {
	SessionID kernel.UUID
	// SelectedCourier is empty when no courier is selected.
	SelectedCourier string
	Rows            []RowView
	Total           int
	// TotalText is the grouped total, BigTotal adds the currency suffix.
	TotalText string
	BigTotal  string
	Date      string
	Note      string
	// CourierSigned and ReceiverSigned report pads that are not blank.
	CourierSigned  bool
	ReceiverSigned bool
}
