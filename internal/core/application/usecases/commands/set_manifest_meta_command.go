package commands

import (
	"errors"
	"strings"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/manifest"
	"dispatchdesk/internal/pkg/guard"
)

var ErrSetManifestMetaCommandIsNotConstructed = errors.New(
	"SetManifestMetaCommand must be created via NewSetManifestMetaCommand constructor",
)

// SetManifestMetaCommand replaces the free-form date and note printed on the
// manifest. Both are trimmed and may be empty.
type SetManifestMetaCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	meta      manifest.Meta

	guard guard.ConstructorGuard
}

// NewSetManifestMetaCommand creates a meta update command.
func NewSetManifestMetaCommand(sessionID kernel.UUID, date, note string) (SetManifestMetaCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return SetManifestMetaCommand{}, err
	}

	return SetManifestMetaCommand{
		sessionID: sessionID,
		meta:      manifest.NewMeta(strings.TrimSpace(date), strings.TrimSpace(note)),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetManifestMetaCommand) Validate() error {
	return c.guard.Validate(ErrSetManifestMetaCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c SetManifestMetaCommand) SessionID() kernel.UUID { return c.sessionID }

// Meta returns the new date and note.
func (c SetManifestMetaCommand) Meta() manifest.Meta { return c.meta }
