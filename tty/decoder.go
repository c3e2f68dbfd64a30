// Package tty decodes raw terminal input into discrete key events and
// performs the synchronous cursor-position exchange. It assumes the
// terminal has already been switched to raw mode (see the mode package)
// and that at most one read is in flight at a time; the shared Source
// enforces the latter by failing fast.
package tty

const (
	escByte  = 0x1b
	seqFinal = '~' // terminates vt220-style numbered sequences
)

// Decoder turns the terminal byte stream into key events. Next is a pull
// interface: each call blocks until exactly one event can be resolved and
// never reads further ahead than disambiguation requires. A stalled source
// stalls the decoder; terminal input is inherently blocking.
type Decoder struct {
	src *Source

	// Events already resolved but not yet delivered: the replayed
	// literals of a failed sequence match. Drained before reading again,
	// so every consumed byte is eventually delivered exactly once.
	pending []Event

	// One byte of pushback. A double ESC delivers the first ESC
	// immediately and reconsiders the second as a fresh sequence start
	// on the next pull.
	pushback byte
	havePush bool

	raw bool
}

func NewDecoder(src *Source) *Decoder {
	return &Decoder{src: src}
}

// SetRaw turns escape interpretation off or on. While raw, every byte is
// delivered as a Literal, escape sequences included, for callers that want
// to observe the sequences themselves. Takes effect on the next pull.
func (d *Decoder) SetRaw(raw bool) {
	d.raw = raw
}

// Next returns the next key event, blocking until the source delivers
// enough bytes to resolve one. Read failures, EOF included, propagate
// verbatim; the decoder never retries.
func (d *Decoder) Next() (Event, error) {
	if len(d.pending) > 0 {
		ev := d.pending[0]
		d.pending = d.pending[1:]
		return ev, nil
	}

	if err := d.src.acquire(); err != nil {
		return nil, err
	}
	defer d.src.release()

	c, err := d.readByte()
	if err != nil {
		return nil, err
	}

	if d.raw || c != escByte {
		return Literal(c), nil
	}

	return d.decodeEscape()
}

func (d *Decoder) readByte() (byte, error) {
	if d.havePush {
		d.havePush = false
		return d.pushback, nil
	}
	return d.src.readByte()
}

// decodeEscape resolves input following a consumed ESC byte into exactly
// one event, queueing any replayed literals on d.pending.
func (d *Decoder) decodeEscape() (Event, error) {
	c1, err := d.readByte()
	if err != nil {
		return nil, err
	}

	if c1 == escByte {
		// The escape key itself, possibly followed by a sequence.
		// Deliver the first ESC now; the second starts over next pull.
		d.pushback = c1
		d.havePush = true
		return Literal(escByte), nil
	}

	if c1 != '[' && c1 != 'O' {
		// Not a recognized prefix. Both bytes are ordinary input.
		d.pending = append(d.pending, Literal(c1))
		return Literal(escByte), nil
	}

	c2, err := d.readByte()
	if err != nil {
		return nil, err
	}
	seq := []byte{c1, c2}

	if c2 == '[' {
		// Linux console F1-F5: ESC [ [ x.
		c3, err := d.readByte()
		if err != nil {
			return nil, err
		}
		seq = append(seq, c3)
		if code, ok := sequences[string(seq)]; ok {
			return Special(code), nil
		}
		return d.replay(seq), nil
	}

	if code, ok := sequences[string(seq)]; ok {
		return Special(code), nil
	}

	if !isSeqByte(c2) {
		// Can't extend into a numbered sequence either.
		return d.replay(seq), nil
	}

	for {
		c, err := d.readByte()
		if err != nil {
			return nil, err
		}
		seq = append(seq, c)
		switch {
		case c == seqFinal:
			if code, ok := sequences[string(seq)]; ok {
				return Special(code), nil
			}
			// Well formed, just not one we know.
			return Special(Unknown), nil
		case !isSeqByte(c):
			return d.replay(seq), nil
		}
	}
}

// replay queues the buffered bytes of a failed sequence match as literals
// and returns the ESC that opened it, so nothing consumed is ever lost.
func (d *Decoder) replay(seq []byte) Event {
	for _, b := range seq {
		d.pending = append(d.pending, Literal(b))
	}
	return Literal(escByte)
}

func isSeqByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == ';'
}
