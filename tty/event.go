package tty

import "fmt"

// Code identifies a special key conveyed by a multi-byte escape sequence.
type Code int

const (
	// Unknown marks a well-formed numbered sequence with no table entry.
	Unknown Code = iota
	Up
	Down
	Right
	Left
	Home
	End
	Insert
	Delete
	PageUp
	PageDown
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
)

var codeNames = map[Code]string{
	Unknown:  "Unknown",
	Up:       "Up",
	Down:     "Down",
	Right:    "Right",
	Left:     "Left",
	Home:     "Home",
	End:      "End",
	Insert:   "Insert",
	Delete:   "Delete",
	PageUp:   "PageUp",
	PageDown: "PageDown",
	F1:       "F1",
	F2:       "F2",
	F3:       "F3",
	F4:       "F4",
	F5:       "F5",
	F6:       "F6",
	F7:       "F7",
	F8:       "F8",
	F9:       "F9",
	F10:      "F10",
	F11:      "F11",
	F12:      "F12",
}

func (c Code) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Event is one decoded unit of terminal input. The two concrete types keep
// ordinary bytes and symbolic keys apart in the type system, so a caller
// can never mistake a key code for a byte value.
type Event interface {
	event()
}

// Literal is an ordinary input byte, delivered verbatim. A lone ESC press
// and the replayed bytes of a failed sequence match arrive this way too.
type Literal byte

// Special is a symbolic key decoded from an escape sequence.
type Special Code

func (Literal) event() {}
func (Special) event() {}

func (l Literal) String() string {
	return fmt.Sprintf("Literal(%q)", byte(l))
}

func (s Special) String() string {
	return Code(s).String()
}
