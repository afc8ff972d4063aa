package signature

import (
	"fmt"

	"dispatchdesk/internal/pkg/errs"
)

// EventType is a pointer or pad action reported by the UI.
type EventType string

const (
	// Down is a mouse-down or touch-start on the canvas.
	Down EventType = "down"
	// Move is a mouse or touch move.
	Move EventType = "move"
	// Up is a release anywhere on the page.
	Up EventType = "up"
	// Wipe is the pad's clear button.
	Wipe EventType = "clear"
)

// ParseEventType resolves an event name.
func ParseEventType(s string) (EventType, error) {
	switch EventType(s) {
	case Down, Move, Up, Wipe:
		return EventType(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("event type", fmt.Errorf("unknown signature event %q", s))
	}
}

// Event is one entry of an ordered event batch. Point is ignored by Up and Wipe.
type Event struct {
	Type  EventType
	Point Point
}

// Apply feeds events to the pad in order. Every event type is checked before
// the first one is applied, so a batch with an unknown type leaves the pad
// untouched.
func (p *Pad) Apply(events ...Event) error {
	if err := p.Validate(); err != nil {
		return err
	}

	for i, event := range events {
		if _, err := ParseEventType(string(event.Type)); err != nil {
			return fmt.Errorf("signature event %d: %w", i+1, err)
		}
	}

	for i, event := range events {
		var err error
		switch event.Type {
		case Down:
			err = p.PointerDown(event.Point)
		case Move:
			p.PointerMove(event.Point)
		case Up:
			err = p.PointerUp()
		case Wipe:
			p.Clear()
		}
		if err != nil {
			return fmt.Errorf("signature event %d: %w", i+1, err)
		}
	}
	return nil
}
