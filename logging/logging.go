package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Interactive programs own the terminal, so logs can never go to stderr;
// they either land in a file or nowhere. slog has no built in discard
// handler yet (https://github.com/golang/go/issues/62005), hence this
// stand-in.
type discardHandler struct {
	slog.JSONHandler
}

func (d *discardHandler) Enabled(context.Context, slog.Level) bool {
	return false
}

// Setup installs the process-wide logger. With a logfile, logs are written
// there as text, at DEBUG level when debug is set; without one they are
// discarded.
func Setup(logfile string, debug bool) error {
	var l *slog.Logger

	if logfile != "" {
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0700)
		if err != nil {
			return fmt.Errorf("couldn't open logfile %q: %v", logfile, err)
		}

		opts := &slog.HandlerOptions{}
		if debug {
			opts.Level = slog.LevelDebug
		}
		l = slog.New(slog.NewTextHandler(f, opts))
	} else {
		l = slog.New(&discardHandler{})
	}

	slog.SetDefault(l)
	return nil
}
