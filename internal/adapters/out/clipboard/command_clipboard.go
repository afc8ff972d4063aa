// Package clipboard reads the host clipboard by running a clipboard tool such
// as wl-paste, xclip or pbpaste.
package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"dispatchdesk/internal/core/ports"
)

var _ ports.Clipboard = (*CommandClipboard)(nil)

// candidates are tried in order when no command is configured.
var candidates = [][]string{
	{"wl-paste", "--no-newline"},
	{"xclip", "-selection", "clipboard", "-o"},
	{"xsel", "--clipboard", "--output"},
	{"pbpaste"},
	{"powershell.exe", "-NoProfile", "-Command", "Get-Clipboard"},
}

// CommandClipboard runs a command and returns its standard output.
type CommandClipboard struct {
	argv []string
}

// New returns a clipboard running command, a space separated command line.
// An empty command picks the first clipboard tool found on PATH; when there is
// none the clipboard reports itself unavailable on every read.
func New(command string) *CommandClipboard {
	if argv := strings.Fields(command); len(argv) > 0 {
		return &CommandClipboard{argv: argv}
	}
	return &CommandClipboard{argv: detect(exec.LookPath)}
}

// Command returns the command line in use, or "" when none was found.
func (c *CommandClipboard) Command() string {
	return strings.Join(c.argv, " ")
}

// ReadText implements ports.Clipboard. The command is killed when ctx ends.
func (c *CommandClipboard) ReadText(ctx context.Context) (string, error) {
	if len(c.argv) == 0 {
		return "", fmt.Errorf("%w: no clipboard tool found", ports.ErrClipboardUnavailable)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.argv[0], c.argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = errors.Join(err, errors.New(msg))
		}
		return "", fmt.Errorf("%w: %s: %w", ports.ErrClipboardUnavailable, c.argv[0], err)
	}

	return stdout.String(), nil
}

func detect(lookPath func(string) (string, error)) []string {
	for _, argv := range candidates {
		if _, err := lookPath(argv[0]); err == nil {
			return argv
		}
	}
	return nil
}
