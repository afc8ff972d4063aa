package ports

import (
	"context"
	"errors"
)

// ErrClipboardUnavailable is returned when the host clipboard cannot be read:
// no clipboard tool, no display, a timeout or a failing command.
var ErrClipboardUnavailable = errors.New("clipboard is unavailable")

// Clipboard reads text from the host clipboard.
type Clipboard interface {
	// ReadText returns the clipboard text. Failures wrap ErrClipboardUnavailable.
	ReadText(ctx context.Context) (string, error)
}
