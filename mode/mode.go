// Package mode switches the terminal's line discipline by driving the
// external stty utility against the terminal on the process's standard
// input. The token captured by Save is opaque; it is stored and replayed
// verbatim, never parsed. The command's exit status is the sole success
// signal, propagated untouched.
package mode

import (
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-isatty"
)

const defaultStty = "stty"

// Session runs mode changes for the lifetime of one raw-mode excursion.
type Session struct {
	stty string
}

// NewSession returns a session driving the given stty executable. An empty
// path resolves "stty" from the process environment, which is what every
// caller outside of tests wants.
func NewSession(stty string) *Session {
	if stty == "" {
		stty = defaultStty
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		slog.Debug("stdin is not a terminal, stty calls will likely fail")
	}
	return &Session{stty: stty}
}

// Raw disables echo and canonical processing, delivering input to the
// process byte by byte. stty's stderr is suppressed; some implementations
// complain about the already-raw state on repeat calls.
func (s *Session) Raw() error {
	return s.run("raw", "-echo")
}

// Sane restores the default cooked mode.
func (s *Session) Sane() error {
	return s.run("sane")
}

// Save captures the current mode as an opaque token suitable for Restore.
func (s *Session) Save() (string, error) {
	cmd := exec.Command(s.stty, "-g")
	cmd.Stdin = os.Stdin
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Restore replays a token previously captured by Save.
func (s *Session) Restore(token string) error {
	return s.run(token)
}

func (s *Session) run(args ...string) error {
	cmd := exec.Command(s.stty, args...)
	cmd.Stdin = os.Stdin
	return cmd.Run()
}
