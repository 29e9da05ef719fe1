package mask

import (
	"bufio"
	"io"
)

const readerBufSize = 4096

// CharReader presents an io.Reader as a sequence of decoded runes
// with one rune of lookahead. Underlying reads are batched through a
// bufio.Reader; a multi-byte rune is never split across two calls.
type CharReader struct {
	br *bufio.Reader

	// The lookahead cache. A peeked rune is held here until the next
	// call to Next consumes it.
	peeked    rune
	hasPeeked bool
}

func NewCharReader(r io.Reader) *CharReader {
	return &CharReader{
		br: bufio.NewReaderSize(r, readerBufSize),
	}
}

// Next returns the next decoded rune. A previously peeked rune is
// returned first, exactly once. At end of stream it returns io.EOF;
// any other read error is propagated unchanged.
func (cr *CharReader) Next() (rune, error) {
	if cr.hasPeeked {
		cr.hasPeeked = false
		return cr.peeked, nil
	}
	r, _, err := cr.br.ReadRune()
	if err != nil {
		return 0, err
	}
	return r, nil
}

// Peek returns the next rune without consuming it. Repeated peeks
// without an intervening Next return the identical rune.
func (cr *CharReader) Peek() (rune, error) {
	if !cr.hasPeeked {
		r, err := cr.Next()
		if err != nil {
			return 0, err
		}
		cr.peeked = r
		cr.hasPeeked = true
	}
	return cr.peeked, nil
}

var _ Source = (*CharReader)(nil)
