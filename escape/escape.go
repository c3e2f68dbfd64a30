// Package escape formats and writes ANSI/VT100 control sequences. Every
// helper is a stateless format-and-write; the only failure mode is the
// underlying write, which is propagated untouched. Sequences are emitted
// literally, with no capability negotiation.
package escape

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	ESC = 0x1b // introduces every sequence we emit
	CSI = '['  // control sequence introducer, ESC [
	RIS = 'c'  // RIS - full reset
)

// CSI finals for the sequences we emit.
const (
	CSI_CUU = 'A' // cursor up
	CSI_CUD = 'B' // cursor down
	CSI_CUF = 'C' // cursor forward
	CSI_CUB = 'D' // cursor back
	CSI_CUP = 'H' // cursor position
	CSI_ED  = 'J' // erase in display
	CSI_EL  = 'K' // erase in line
	CSI_SGR = 'm' // select graphic rendition
	CSI_DSR = 'n' // device status report
	CSI_SCP = 's' // save cursor position
	CSI_RCP = 'u' // restore cursor position
)

func emit(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// Clear erases the whole display.
func Clear(w io.Writer) error {
	return emit(w, "\x1b[2J")
}

// ClearLine erases from the cursor to the end of the line.
func ClearLine(w io.Writer) error {
	return emit(w, "\x1b[K")
}

// MoveTo places the cursor at the 1-based line and column.
func MoveTo(w io.Writer, line, col int) error {
	return emit(w, fmt.Sprintf("\x1b[%d;%d%c", line, col, CSI_CUP))
}

// Up moves the cursor up n rows. n < 1 moves one row.
func Up(w io.Writer, n int) error {
	return move(w, n, CSI_CUU)
}

// Down moves the cursor down n rows. n < 1 moves one row.
func Down(w io.Writer, n int) error {
	return move(w, n, CSI_CUD)
}

// Forward moves the cursor right n columns. n < 1 moves one column.
func Forward(w io.Writer, n int) error {
	return move(w, n, CSI_CUF)
}

// Back moves the cursor left n columns. n < 1 moves one column.
func Back(w io.Writer, n int) error {
	return move(w, n, CSI_CUB)
}

func move(w io.Writer, n int, final byte) error {
	if n < 1 {
		n = 1
	}
	return emit(w, fmt.Sprintf("\x1b[%d%c", n, final))
}

// SetAttrs emits an SGR sequence with the given numeric parameters,
// typically foreground, background and an attribute, in that order.
// Trailing parameters may simply be omitted. With no parameters the
// terminal treats the sequence as a style reset.
func SetAttrs(w io.Writer, params ...int) error {
	var sb strings.Builder
	sb.WriteByte(ESC)
	sb.WriteByte(CSI)
	for i, p := range params {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(p))
	}
	sb.WriteByte(CSI_SGR)
	return emit(w, sb.String())
}

// HideCursor makes the cursor invisible until ShowCursor.
func HideCursor(w io.Writer) error {
	return emit(w, "\x1b[?25l")
}

// ShowCursor makes the cursor visible again.
func ShowCursor(w io.Writer) error {
	return emit(w, "\x1b[?25h")
}

// SavePosition records the cursor position in the terminal for a later
// RestorePosition.
func SavePosition(w io.Writer) error {
	return emit(w, "\x1b[s")
}

// RestorePosition returns the cursor to the last saved position.
func RestorePosition(w io.Writer) error {
	return emit(w, "\x1b[u")
}

// Reset performs a full terminal reset (RIS).
func Reset(w io.Writer) error {
	return emit(w, "\x1bc")
}

// RequestPosition asks the terminal to report the cursor position. The
// reply arrives on the input stream as ESC [ <line> ; <col> R and is
// parsed by the tty package.
func RequestPosition(w io.Writer) error {
	return emit(w, "\x1b[6n")
}
