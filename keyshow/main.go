package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/ttyio/ttyio/logging"
	"github.com/ttyio/ttyio/mode"
	"github.com/ttyio/ttyio/tty"
	"zgo.at/termfo"
	"zgo.at/termfo/caps"
)

var (
	debug    = flag.Bool("debug", false, "If true, enable DEBUG log level for verbose log output")
	logfile  = flag.String("logfile", "", "If set, logs will be written to this file.")
	rawBytes = flag.Bool("raw", false, "If true, deliver escape sequences as literal bytes instead of decoding them.")
	stty     = flag.String("stty", "", "Path to the stty executable. Resolved from PATH when empty.")
)

func main() {
	flag.Parse()

	if err := logging.Setup(*logfile, *debug); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	sess := mode.NewSession(*stty)
	token, err := sess.Save()
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't capture terminal mode: %v\n", err)
		os.Exit(1)
	}

	if err := sess.Raw(); err != nil {
		fmt.Fprintf(os.Stderr, "couldn't enter raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := sess.Restore(token); err != nil {
			slog.Error("couldn't restore terminal mode", "err", err)
			// Cooked beats stuck.
			if err := sess.Sane(); err != nil {
				slog.Error("couldn't even go sane", "err", err)
			}
		}
	}()

	undoAlt := maybeAltScreen()
	defer undoAlt()

	src := tty.NewSource(os.Stdin)

	if lines, cols, ok, err := tty.Size(os.Stdout, src); err == nil && ok {
		fmt.Printf("terminal is %d lines by %d columns\r\n", lines, cols)
	} else if lines, cols, err := tty.SizeFd(int(os.Stdin.Fd())); err == nil {
		fmt.Printf("terminal is %d lines by %d columns (ioctl)\r\n", lines, cols)
	}

	fmt.Print("press keys to see their events, q quits\r\n")

	out := termenv.NewOutput(os.Stdout)
	d := tty.NewDecoder(src)
	d.SetRaw(*rawBytes)

	for {
		ev, err := d.Next()
		if err != nil {
			slog.Error("read failed", "err", err)
			return
		}

		switch ev := ev.(type) {
		case tty.Special:
			fmt.Printf("%s\r\n", out.String(ev.String()).Bold().Foreground(termenv.ANSICyan))
		case tty.Literal:
			if ev == 'q' {
				slog.Info("shutting down")
				return
			}
			fmt.Printf("%q\r\n", byte(ev))
		}
	}
}

func maybeAltScreen() func() {
	if ti, err := termfo.New(""); err == nil {
		if s, ok := ti.Strings[caps.EnterCaMode]; ok {
			os.Stdout.Write([]byte(s))
		}

		return func() {
			if s, ok := ti.Strings[caps.ExitCaMode]; ok {
				os.Stdout.Write([]byte(s))
			}
		}
	} else {
		slog.Warn("error determining terminfo, proceeding without", "err", err)
	}

	return func() {}
}
