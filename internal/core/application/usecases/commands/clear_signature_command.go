package commands

import (
	"errors"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/signature"
	"dispatchdesk/internal/pkg/guard"
)

var ErrClearSignatureCommandIsNotConstructed = errors.New(
	"ClearSignatureCommand must be created via NewClearSignatureCommand constructor",
)

// ClearSignatureCommand wipes one signature pad white.
type ClearSignatureCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	pad       signature.Kind

	guard guard.ConstructorGuard
}

// NewClearSignatureCommand creates a pad clear command.
func NewClearSignatureCommand(sessionID kernel.UUID, pad string) (ClearSignatureCommand, error) {
	kind, kindErr := signature.ParseKind(pad)
	if err := errors.Join(sessionID.Validate(), kindErr); err != nil {
		return ClearSignatureCommand{}, err
	}

	return ClearSignatureCommand{
		sessionID: sessionID,
		pad:       kind,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearSignatureCommand) Validate() error {
	return c.guard.Validate(ErrClearSignatureCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c ClearSignatureCommand) SessionID() kernel.UUID { return c.sessionID }

// Pad returns the pad to clear.
func (c ClearSignatureCommand) Pad() signature.Kind { return c.pad }
