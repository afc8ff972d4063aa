package commands

import (
	"errors"
	"time"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/pkg/guard"
)

// MetaDateLayout formats the default manifest date, e.g. "19.10.2026, 14:05:09".
const MetaDateLayout = "02.01.2006, 15:04:05"

var (
	ErrCreateSessionCommandIsNotConstructed = errors.New(
		"CreateSessionCommand must be created via NewCreateSessionCommand constructor",
	)
	ErrOpenedAtIsRequired = errors.New("session opening time is required")
)

// CreateSessionCommand opens a new, empty manifest session for an operator.
//
// Example:
//
//	cmd, err := NewCreateSessionCommand(kernel.NewUUID(), time.Now())
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to open session: %w", err)
//	}
type CreateSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	openedAt  time.Time

	guard guard.ConstructorGuard
}

// NewCreateSessionCommand creates a command to open a session. openedAt gives
// the default manifest date.
func NewCreateSessionCommand(sessionID kernel.UUID, openedAt time.Time) (CreateSessionCommand, error) {
	cmd := CreateSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setOpenedAt(openedAt),
	); err != nil {
		return CreateSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSessionCommand) Validate() error {
	return c.guard.Validate(ErrCreateSessionCommandIsNotConstructed)
}

// SessionID returns the identifier of the new session.
func (c CreateSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// OpenedAt returns the time the session was opened.
func (c CreateSessionCommand) OpenedAt() time.Time {
	return c.openedAt
}

// DefaultDate returns the manifest date a new session starts with.
func (c CreateSessionCommand) DefaultDate() string {
	return c.openedAt.Format(MetaDateLayout)
}

func (c *CreateSessionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *CreateSessionCommand) setOpenedAt(openedAt time.Time) error {
	if openedAt.IsZero() {
		return ErrOpenedAtIsRequired
	}

	c.openedAt = openedAt
	return nil
}
