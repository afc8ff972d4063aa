package queries

import (
	"context"
	"errors"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/session"
	"dispatchdesk/internal/core/ports"
	"dispatchdesk/internal/pkg/guard"
)

var ErrGetCouriersQueryIsNotConstructed = errors.New(
	"GetCouriersQuery must be created via NewGetCouriersQuery constructor",
)

// GetCouriersQuery retrieves the courier roster and the current selection of
// a session.
type GetCouriersQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCouriersQuery creates a roster query for the session.
func NewGetCouriersQuery(sessionID kernel.UUID) (GetCouriersQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetCouriersQuery{}, err
	}
	return GetCouriersQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCouriersQueryIsNotConstructed)
}

// SessionID returns the queried session.
func (q GetCouriersQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// GetCouriersQueryResponse lists the roster in display order.
type GetCouriersQueryResponse struct {
	Couriers []string
	// Selected is empty when no courier is selected.
	Selected string
}

// GetCouriersQueryHandler reads the roster of a session.
type GetCouriersQueryHandler struct {
	reader ports.SessionReader
}

// NewGetCouriersQueryHandler creates a handler for roster queries.
func NewGetCouriersQueryHandler(reader ports.SessionReader) GetCouriersQueryHandler {
	return GetCouriersQueryHandler{reader: reader}
}

// Handle executes the roster query.
func (h GetCouriersQueryHandler) Handle(ctx context.Context, query GetCouriersQuery) (GetCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCouriersQueryResponse{}, err
	}

	var response GetCouriersQueryResponse
	err := h.reader.View(ctx, query.SessionID(), func(s *session.Session) error {
		response.Couriers = s.Roster().Names()
		response.Selected, _ = s.SelectedCourier()
		return nil
	})
	if err != nil {
		return GetCouriersQueryResponse{}, err
	}

	return response, nil
}
