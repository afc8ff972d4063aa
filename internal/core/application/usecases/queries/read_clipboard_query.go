package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatchdesk/internal/core/ports"
	"dispatchdesk/internal/pkg/guard"
)

var ErrReadClipboardQueryIsNotConstructed = errors.New(
	"ReadClipboardQuery must be created via NewReadClipboardQuery constructor",
)

// ReadClipboardQuery reads the host clipboard so the UI can paste it into the
// scanner field. It touches no session.
type ReadClipboardQuery struct {
	guard guard.ConstructorGuard
}

// NewReadClipboardQuery creates a clipboard query.
func NewReadClipboardQuery() ReadClipboardQuery {
	return ReadClipboardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ReadClipboardQuery) Validate() error {
	return q.guard.Validate(ErrReadClipboardQueryIsNotConstructed)
}

// ReadClipboardQueryHandler reads the clipboard within a time limit.
type ReadClipboardQueryHandler struct {
	clipboard ports.Clipboard
	timeout   time.Duration
}

// NewReadClipboardQueryHandler creates a clipboard handler. A zero timeout
// leaves the deadline to the caller's context.
func NewReadClipboardQueryHandler(clipboard ports.Clipboard, timeout time.Duration) ReadClipboardQueryHandler {
	return ReadClipboardQueryHandler{clipboard: clipboard, timeout: timeout}
}

// Handle executes the clipboard query. Every failure, the deadline included,
// wraps ports.ErrClipboardUnavailable.
func (h ReadClipboardQueryHandler) Handle(ctx context.Context, query ReadClipboardQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	text, err := h.clipboard.ReadText(ctx)
	if err != nil {
		if errors.Is(err, ports.ErrClipboardUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ports.ErrClipboardUnavailable, err)
	}

	return text, nil
}
