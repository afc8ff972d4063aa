package commands

import (
	"errors"
	"strings"

	"dispatchdesk/internal/core/domain/model/courier"
	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/pkg/guard"
)

var ErrSelectCourierCommandIsNotConstructed = errors.New(
	"SelectCourierCommand must be created via NewSelectCourierCommand constructor",
)

// SelectCourierCommand makes a roster courier the active one. Records added
// afterwards carry this courier; existing rows keep theirs.
type SelectCourierCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	name      string

	guard guard.ConstructorGuard
}

// NewSelectCourierCommand creates a courier selection command.
func NewSelectCourierCommand(sessionID kernel.UUID, name string) (SelectCourierCommand, error) {
	cmd := SelectCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setName(name),
	); err != nil {
		return SelectCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectCourierCommand) Validate() error {
	return c.guard.Validate(ErrSelectCourierCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c SelectCourierCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Name returns the requested courier name.
func (c SelectCourierCommand) Name() string {
	return c.name
}

func (c *SelectCourierCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *SelectCourierCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return courier.ErrNameIsRequired
	}

	c.name = name
	return nil
}
