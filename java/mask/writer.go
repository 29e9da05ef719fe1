package mask

import (
	"bufio"
	"io"
)

// spaceChunk backs WriteSpaces so masking long runs never allocates.
const spaceChunk = "                " // 16 spaces

// Writer buffers and encodes runes onto an io.Writer. With LineFlush
// set, the buffer is flushed after every newline, which keeps
// interactive output streaming when stdout is a terminal.
type Writer struct {
	bw *bufio.Writer

	LineFlush bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		bw: bufio.NewWriter(w),
	}
}

func (w *Writer) WriteRune(r rune) error {
	if _, err := w.bw.WriteRune(r); err != nil {
		return err
	}
	if w.LineFlush && r == '\n' {
		return w.bw.Flush()
	}
	return nil
}

func (w *Writer) WriteString(s string) error {
	_, err := w.bw.WriteString(s)
	return err
}

// WriteSpaces writes exactly n space characters, in fixed-size chunks.
func (w *Writer) WriteSpaces(n int) error {
	for n > 0 {
		k := n
		if k > len(spaceChunk) {
			k = len(spaceChunk)
		}
		if _, err := w.bw.WriteString(spaceChunk[:k]); err != nil {
			return err
		}
		n -= k
	}
	return nil
}

// Flush writes any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}

var _ Sink = (*Writer)(nil)
