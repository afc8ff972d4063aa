package signature

import (
	"fmt"

	"dispatchdesk/internal/pkg/errs"
)

// Status is the pointer state of a signature pad.
//
// State transitions:
//
//	Idle ──pointer-down──> Drawing ──pointer-up──> Idle
//	                        │  ▲
//	                        └──┘ pointer-move (draws a segment)
//
// Pointer-up is accepted in either state, so a release outside the canvas can
// never leave a pad stuck in Drawing. Clear is not a transition.
type Status int

const (
	// Unknown is the zero value and is never a valid pad state.
	Unknown Status = iota

	// Idle means no pointer is pressed; moves are ignored.
	Idle

	// Drawing means a pointer is pressed; every move extends the stroke.
	Drawing
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Idle:    "Idle",
		Drawing: "Drawing",
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s != Idle && s != Drawing {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid pad status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// PointerDown transitions to Drawing. Pressing again while drawing starts a
// new path, which is what a second touch does.
func (s Status) PointerDown() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Drawing, nil
}

// PointerUp transitions to Idle from any valid state.
func (s Status) PointerUp() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Idle, nil
}

// CanDraw reports whether a pointer move extends the stroke.
func (s Status) CanDraw() bool {
	return s == Drawing
}
