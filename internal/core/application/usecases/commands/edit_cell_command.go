package commands

import (
	"errors"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/manifest"
	"dispatchdesk/internal/pkg/guard"
)

var ErrEditCellCommandIsNotConstructed = errors.New(
	"EditCellCommand must be created via NewEditCellCommand constructor",
)

// EditCellCommand overwrites one cell of a stored row with raw operator text.
// The amount column keeps only digits; the courier column cannot be edited.
type EditCellCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	index     int
	column    manifest.Column
	value     string

	guard guard.ConstructorGuard
}

// NewEditCellCommand creates a cell edit command. index is the 1-based row
// number shown in the table; it is checked against the manifest by the handler.
func NewEditCellCommand(sessionID kernel.UUID, index int, column, value string) (EditCellCommand, error) {
	cmd := EditCellCommand{
		index: index,
		value: value,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setColumn(column),
	); err != nil {
		return EditCellCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditCellCommand) Validate() error {
	return c.guard.Validate(ErrEditCellCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c EditCellCommand) SessionID() kernel.UUID { return c.sessionID }

// Index returns the row number.
func (c EditCellCommand) Index() int { return c.index }

// Column returns the edited column.
func (c EditCellCommand) Column() manifest.Column { return c.column }

// Value returns the raw text.
func (c EditCellCommand) Value() string { return c.value }

func (c *EditCellCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *EditCellCommand) setColumn(column string) error {
	parsed, err := manifest.ParseColumn(column)
	if err != nil {
		return err
	}
	if parsed == manifest.ColumnCourier {
		return manifest.ErrCourierIsNotEditable
	}

	c.column = parsed
	return nil
}
