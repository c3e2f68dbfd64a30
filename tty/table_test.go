package tty

import (
	"strings"
	"testing"
)

func TestVendorSequences(t *testing.T) {
	cases := []struct {
		seq  string
		want Code
	}{
		{"[A", Up},       // ANSI
		{"OA", Up},       // vt100 application mode
		{"[H", Home},     // xterm
		{"[1~", Home},    // linux console
		{"[7~", Home},    // rxvt
		{"OH", Home},     // vte
		{"[[A", F1},      // linux console
		{"OP", F1},       // xterm
		{"[11~", F1},     // vt220
		{"[15~", F5},
		{"[17~", F6}, // the vt220 numbering skips 16 and 22
		{"[23~", F11},
		{"[24~", F12},
		{"[6~", PageDown},
	}

	for i, c := range cases {
		got, ok := sequences[c.seq]
		if !ok {
			t.Errorf("%d: no entry for %q", i, c.seq)
			continue
		}
		if got != c.want {
			t.Errorf("%d: %q maps to %v, wanted %v", i, c.seq, got, c.want)
		}
	}
}

// Every table entry must decode to its own code when fed as a complete
// ESC-prefixed sequence, regardless of which vendor group contributed it.
func TestTableRoundTrip(t *testing.T) {
	for i, e := range seqTable {
		want, ok := sequences[e.seq]
		if !ok {
			t.Fatalf("%d: %q missing from lookup map", i, e.seq)
		}

		d := NewDecoder(NewSource(strings.NewReader("\x1b" + e.seq)))
		ev, err := d.Next()
		if err != nil {
			t.Errorf("%d: decoding %q: %v", i, e.seq, err)
			continue
		}
		if ev != Special(want) {
			t.Errorf("%d: %q decoded to %v, wanted %v", i, e.seq, ev, Special(want))
		}
	}
}
