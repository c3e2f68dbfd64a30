package tty

// Key sequence suffixes, keyed by the bytes that follow ESC. The slice is
// folded into the lookup map in order, so when two vendors bind the same
// suffix the entry appearing later below wins. The groups are ordered so
// that the vt220-style numbered sequences take precedence, matching how
// the common terminals (xterm, vte, linux console) behave today.
var seqTable = []struct {
	seq  string
	code Code
}{
	// ANSI CSI finals: cursor keys everywhere, Home/End on xterm and vte.
	{"[A", Up},
	{"[B", Down},
	{"[C", Right},
	{"[D", Left},
	{"[H", Home},
	{"[F", End},

	// SS3 (ESC O) application-mode variants: arrows on vt100-era
	// terminals, F1-F4 on xterm/vte/tmux, Home/End on vte.
	{"OA", Up},
	{"OB", Down},
	{"OC", Right},
	{"OD", Left},
	{"OH", Home},
	{"OF", End},
	{"OP", F1},
	{"OQ", F2},
	{"OR", F3},
	{"OS", F4},

	// Linux console F1-F5.
	{"[[A", F1},
	{"[[B", F2},
	{"[[C", F3},
	{"[[D", F4},
	{"[[E", F5},

	// vt220-style numbered sequences. The navigation cluster is shared by
	// xterm and the linux console; [7~ and [8~ are the rxvt Home/End.
	{"[1~", Home},
	{"[2~", Insert},
	{"[3~", Delete},
	{"[4~", End},
	{"[5~", PageUp},
	{"[6~", PageDown},
	{"[7~", Home},
	{"[8~", End},

	// Function keys F1-F12. Note the gaps at 16 and 22; they are real.
	{"[11~", F1},
	{"[12~", F2},
	{"[13~", F3},
	{"[14~", F4},
	{"[15~", F5},
	{"[17~", F6},
	{"[18~", F7},
	{"[19~", F8},
	{"[20~", F9},
	{"[21~", F10},
	{"[23~", F11},
	{"[24~", F12},
}

var sequences = buildSequences()

func buildSequences() map[string]Code {
	m := make(map[string]Code, len(seqTable))
	for _, e := range seqTable {
		m[e.seq] = e.code
	}
	return m
}
