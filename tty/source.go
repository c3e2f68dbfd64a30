package tty

import (
	"errors"
	"io"
	"sync/atomic"
)

// ErrConcurrentRead is returned when a second consumer tries to read the
// terminal input stream while another read is in flight.
var ErrConcurrentRead = errors.New("tty: concurrent read of terminal input")

// Source wraps the raw terminal input stream, normally os.Stdin after the
// mode package has switched it to raw mode. It reads exactly one byte at a
// time and never buffers ahead, so a Decoder and a Position query can share
// it safely as long as their reads don't overlap. The terminal delivers
// each byte exactly once; a second reader draining the stream mid-exchange
// would steal bytes meant for the first and corrupt both. The in-use flag
// turns that overlap into ErrConcurrentRead instead.
type Source struct {
	r     io.Reader
	inUse atomic.Bool
}

func NewSource(r io.Reader) *Source {
	return &Source{r: r}
}

func (s *Source) acquire() error {
	if !s.inUse.CompareAndSwap(false, true) {
		return ErrConcurrentRead
	}
	return nil
}

func (s *Source) release() {
	s.inUse.Store(false)
}

// readByte blocks until one byte is available or the read fails. No
// timeout is applied at this layer; a caller needing a bounded wait must
// arrange it on the underlying reader.
func (s *Source) readByte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(s.r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}
