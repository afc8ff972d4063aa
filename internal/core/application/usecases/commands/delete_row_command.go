package commands

import (
	"errors"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/pkg/guard"
)

var ErrDeleteRowCommandIsNotConstructed = errors.New(
	"DeleteRowCommand must be created via NewDeleteRowCommand constructor",
)

// DeleteRowCommand removes one row; the rows after it move up by one.
type DeleteRowCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	index     int

	guard guard.ConstructorGuard
}

// NewDeleteRowCommand creates a row deletion command for the 1-based row index.
func NewDeleteRowCommand(sessionID kernel.UUID, index int) (DeleteRowCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return DeleteRowCommand{}, err
	}

	return DeleteRowCommand{
		sessionID: sessionID,
		index:     index,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRowCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRowCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c DeleteRowCommand) SessionID() kernel.UUID { return c.sessionID }

// Index returns the row number to delete.
func (c DeleteRowCommand) Index() int { return c.index }
