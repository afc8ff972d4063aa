package commands

import (
	"errors"
	"fmt"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/signature"
	"dispatchdesk/internal/pkg/errs"
	"dispatchdesk/internal/pkg/guard"
)

var (
	ErrApplySignatureEventsCommandIsNotConstructed = errors.New(
		"ApplySignatureEventsCommand must be created via NewApplySignatureEventsCommand constructor",
	)
	ErrNoSignatureEvents = errs.NewValueIsRequiredError("signature events")
)

// ApplySignatureEventsCommand feeds an ordered batch of pointer events to one
// of the session's signature pads.
//
// Example:
//
//	events := []signature.Event{
//	    {Type: signature.Down, Point: signature.Point{X: 12, Y: 40}},
//	    {Type: signature.Move, Point: signature.Point{X: 60, Y: 52}},
//	    {Type: signature.Up},
//	}
//	cmd, err := NewApplySignatureEventsCommand(sessionID, "courier", events)
type ApplySignatureEventsCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	pad       signature.Kind
	events    []signature.Event

	guard guard.ConstructorGuard
}

// NewApplySignatureEventsCommand creates an event batch command. Every event
// type is checked up front, so a batch is either applied whole or not at all.
func NewApplySignatureEventsCommand(
	sessionID kernel.UUID,
	pad string,
	events []signature.Event,
) (ApplySignatureEventsCommand, error) {
	cmd := ApplySignatureEventsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setPad(pad),
		cmd.setEvents(events),
	); err != nil {
		return ApplySignatureEventsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplySignatureEventsCommand) Validate() error {
	return c.guard.Validate(ErrApplySignatureEventsCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c ApplySignatureEventsCommand) SessionID() kernel.UUID { return c.sessionID }

// Pad returns the pad the events belong to.
func (c ApplySignatureEventsCommand) Pad() signature.Kind { return c.pad }

// Events returns a copy of the batch in arrival order.
func (c ApplySignatureEventsCommand) Events() []signature.Event {
	out := make([]signature.Event, len(c.events))
	copy(out, c.events)
	return out
}

func (c *ApplySignatureEventsCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *ApplySignatureEventsCommand) setPad(pad string) error {
	kind, err := signature.ParseKind(pad)
	if err != nil {
		return err
	}

	c.pad = kind
	return nil
}

func (c *ApplySignatureEventsCommand) setEvents(events []signature.Event) error {
	if len(events) == 0 {
		return ErrNoSignatureEvents
	}
	for i, event := range events {
		if _, err := signature.ParseEventType(string(event.Type)); err != nil {
			return fmt.Errorf("event %d: %w", i+1, err)
		}
	}

	c.events = make([]signature.Event, len(events))
	copy(c.events, events)
	return nil
}
