package tty

import (
	"io"

	"golang.org/x/term"

	"github.com/ttyio/ttyio/escape"
)

// cprBudget bounds how many bytes we scan for the terminating 'R' after
// the ESC [ prefix of a cursor-position report. 999;999R is eight bytes,
// so the budget covers any sane geometry.
const cprBudget = 8

// Position writes a cursor-position request on w and reads the reply
// directly from src, expecting ESC [ <line> ; <col> R. ok is false, with
// a nil error, when the reply doesn't follow that grammar within the byte
// budget; bytes already consumed are not replayed. Must not be called
// while a Decoder pull on the same Source is in flight; that contention
// surfaces as ErrConcurrentRead rather than corrupting both readers.
func Position(w io.Writer, src *Source) (line, col int, ok bool, err error) {
	if err := src.acquire(); err != nil {
		return 0, 0, false, err
	}
	defer src.release()

	if err := escape.RequestPosition(w); err != nil {
		return 0, 0, false, err
	}

	b, err := src.readByte()
	if err != nil {
		return 0, 0, false, err
	}
	if b != escape.ESC {
		return 0, 0, false, nil
	}

	b, err = src.readByte()
	if err != nil {
		return 0, 0, false, err
	}
	if b != escape.CSI {
		return 0, 0, false, nil
	}

	var nums [2]int
	cur := 0
	for i := 0; i < cprBudget; i++ {
		b, err = src.readByte()
		if err != nil {
			return 0, 0, false, err
		}
		switch {
		case b >= '0' && b <= '9':
			nums[cur] = nums[cur]*10 + int(b-'0')
		case b == ';' && cur == 0:
			cur = 1
		case b == 'R' && cur == 1:
			return nums[0], nums[1], true, nil
		default:
			return 0, 0, false, nil
		}
	}
	return 0, 0, false, nil
}

// Size reports the terminal's dimensions by saving the cursor, parking it
// at an over-large position so the terminal clamps to the bottom-right
// corner, and asking where it ended up. The saved position is restored
// before returning. ok mirrors Position's.
func Size(w io.Writer, src *Source) (lines, cols int, ok bool, err error) {
	if err := escape.SavePosition(w); err != nil {
		return 0, 0, false, err
	}
	if err := escape.MoveTo(w, 999, 999); err != nil {
		return 0, 0, false, err
	}

	lines, cols, ok, err = Position(w, src)

	if rerr := escape.RestorePosition(w); rerr != nil && err == nil {
		err = rerr
	}
	return lines, cols, ok, err
}

// SizeFd asks the kernel for the window size of the terminal open on fd.
// Cheaper than the escape probe when the stream is a local tty; the probe
// remains for streams where the ioctl can't reach the terminal.
func SizeFd(fd int) (lines, cols int, err error) {
	cols, lines, err = term.GetSize(fd)
	return lines, cols, err
}
