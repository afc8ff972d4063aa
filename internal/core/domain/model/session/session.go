package session

import (
	"errors"
	"fmt"

	"dispatchdesk/internal/core/domain/model/courier"
	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/manifest"
	"dispatchdesk/internal/core/domain/model/signature"
	"dispatchdesk/internal/pkg/guard"
)

var (
	// ErrNoCourierSelected is returned when an operation needs the selected
	// courier and the operator has none selected.
	ErrNoCourierSelected = errors.New("no courier selected")
	// ErrSessionIsNotConstructed is returned when a zero Session is used.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")
)

// Session is the state of one manifest-building session at the desk. It owns
// the row store, the courier selection, the manifest meta and the two
// signature pads, so nothing in the process is shared between operators.
//
// Business rules:
//   - A session starts with the first roster courier selected
//   - Only roster couriers can be selected
//   - Records copy the courier selected when they are created; a later
//     selection change leaves existing rows alone
//   - Sessions are never persisted
type Session struct {
	id        kernel.UUID
	roster    courier.Roster
	selection courier.Selection
	store     *manifest.Store
	meta      manifest.Meta
	pads      map[signature.Kind]*signature.Pad
	guard     guard.ConstructorGuard
}

// NewSession creates an empty session with the roster's default selection and
// two blank pads of the given size.
func NewSession(
	id kernel.UUID,
	roster courier.Roster,
	meta manifest.Meta,
	padWidth, padHeight int,
) (*Session, error) {
	if err := errors.Join(id.Validate(), roster.Validate()); err != nil {
		return nil, err
	}

	pads := make(map[signature.Kind]*signature.Pad, len(signature.Kinds()))
	for _, kind := range signature.Kinds() {
		pad, err := signature.NewPad(padWidth, padHeight)
		if err != nil {
			return nil, fmt.Errorf("%s pad: %w", kind, err)
		}
		pads[kind] = pad
	}

	return &Session{
		id:        id,
		roster:    roster,
		selection: courier.DefaultSelection(roster),
		store:     manifest.NewStore(),
		meta:      meta,
		pads:      pads,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the session was created through NewSession.
func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// ID returns the session identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// Roster returns the couriers the operator can choose from.
func (s *Session) Roster() courier.Roster {
	return s.roster
}

// SelectedCourier returns the selected courier, if any.
func (s *Session) SelectedCourier() (string, bool) {
	return s.selection.Name()
}

// RequireCourier returns the selected courier or ErrNoCourierSelected.
func (s *Session) RequireCourier() (string, error) {
	name, ok := s.selection.Name()
	if !ok {
		return "", ErrNoCourierSelected
	}
	return name, nil
}

// SelectCourier makes name the active courier. Unknown names fail with a
// *courier.UnknownCourierError and leave the selection unchanged.
func (s *Session) SelectCourier(name string) (string, error) {
	resolved, err := s.roster.Lookup(name)
	if err != nil {
		return "", err
	}
	s.selection = courier.Selected(resolved)
	return resolved, nil
}

// Manifest returns the session's row store.
func (s *Session) Manifest() *manifest.Store {
	return s.store
}

// Meta returns the manifest date and note.
func (s *Session) Meta() manifest.Meta {
	return s.meta
}

// SetMeta replaces the manifest date and note.
func (s *Session) SetMeta(meta manifest.Meta) {
	s.meta = meta
}

// Pad returns the signature pad of the given kind.
func (s *Session) Pad(kind signature.Kind) (*signature.Pad, error) {
	if _, err := signature.ParseKind(string(kind)); err != nil {
		return nil, err
	}
	return s.pads[kind], nil
}
