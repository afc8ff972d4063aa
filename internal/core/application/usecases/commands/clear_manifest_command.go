package commands

import (
	"errors"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/pkg/guard"
)

var (
	ErrClearManifestCommandIsNotConstructed = errors.New(
		"ClearManifestCommand must be created via NewClearManifestCommand constructor",
	)
	// ErrClearNotConfirmed is returned when the operator did not confirm
	// clearing the whole manifest.
	ErrClearNotConfirmed = errors.New("clearing the manifest must be confirmed")
)

// ClearManifestCommand removes every row of the manifest. The operator has to
// confirm it explicitly.
type ClearManifestCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClearManifestCommand creates a clear command. It fails with
// ErrClearNotConfirmed unless confirmed is true.
func NewClearManifestCommand(sessionID kernel.UUID, confirmed bool) (ClearManifestCommand, error) {
	var notConfirmed error
	if !confirmed {
		notConfirmed = ErrClearNotConfirmed
	}
	if err := errors.Join(sessionID.Validate(), notConfirmed); err != nil {
		return ClearManifestCommand{}, err
	}

	return ClearManifestCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearManifestCommand) Validate() error {
	return c.guard.Validate(ErrClearManifestCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c ClearManifestCommand) SessionID() kernel.UUID { return c.sessionID }
