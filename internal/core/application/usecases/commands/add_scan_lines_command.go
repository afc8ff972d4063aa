package commands

import (
	"errors"
	"strings"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/pkg/guard"
)

var (
	ErrAddScanLinesCommandIsNotConstructed = errors.New(
		"AddScanLinesCommand must be created via NewAddScanLinesCommand constructor",
	)
	// ErrEmptyScannerInput is returned when the scanner field holds only whitespace.
	ErrEmptyScannerInput = errors.New("scanner input is empty")
)

// AddScanLinesCommand adds every line of the scanner field to the manifest.
//
// Example:
//
//	raw := "A1|John Doe|+998901234567|Tashkent St 5|15000\nA2|Jane|||7500"
//	cmd, err := NewAddScanLinesCommand(sessionID, raw)
//	if errors.Is(err, ErrEmptyScannerInput) {
//	    // nothing to add
//	}
type AddScanLinesCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	raw       string

	guard guard.ConstructorGuard
}

// NewAddScanLinesCommand creates a scan batch command. Blank input is
// rejected with ErrEmptyScannerInput before any session is looked at.
func NewAddScanLinesCommand(sessionID kernel.UUID, raw string) (AddScanLinesCommand, error) {
	cmd := AddScanLinesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setRaw(raw),
	); err != nil {
		return AddScanLinesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddScanLinesCommand) Validate() error {
	return c.guard.Validate(ErrAddScanLinesCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c AddScanLinesCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Raw returns the trimmed scanner text.
func (c AddScanLinesCommand) Raw() string {
	return c.raw
}

func (c *AddScanLinesCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *AddScanLinesCommand) setRaw(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrEmptyScannerInput
	}

	c.raw = raw
	return nil
}
