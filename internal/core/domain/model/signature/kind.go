package signature

import (
	"fmt"

	"dispatchdesk/internal/pkg/errs"
)

// Kind identifies which of the two pads on a manifest a signature belongs to.
type Kind string

const (
	// Courier is the pad signed by the courier taking the packages.
	Courier Kind = "courier"
	// Receiver is the pad signed by the person handing the packages over.
	Receiver Kind = "receiver"
)

// Kinds lists the pads of a session in print order.
func Kinds() []Kind {
	return []Kind{Courier, Receiver}
}

// ParseKind resolves a pad name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Courier, Receiver:
		return Kind(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("pad", fmt.Errorf("%q is not a signature pad", s))
	}
}
