package mask

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func assertNext(t *testing.T, cr *CharReader, want rune) {
	t.Helper()
	got, err := cr.Next()
	if err != nil {
		t.Fatalf("Next: unexpected error %v", err)
	}
	if got != want {
		t.Fatalf("Next = %q, want %q", got, want)
	}
}

func assertPeek(t *testing.T, cr *CharReader, want rune) {
	t.Helper()
	got, err := cr.Peek()
	if err != nil {
		t.Fatalf("Peek: unexpected error %v", err)
	}
	if got != want {
		t.Fatalf("Peek = %q, want %q", got, want)
	}
}

func TestCharReaderNext(t *testing.T) {
	cr := NewCharReader(strings.NewReader("ab"))
	assertNext(t, cr, 'a')
	assertNext(t, cr, 'b')
	if _, err := cr.Next(); err != io.EOF {
		t.Errorf("Next at end = %v, want io.EOF", err)
	}
	// End of stream is sticky.
	if _, err := cr.Next(); err != io.EOF {
		t.Errorf("repeated Next at end = %v, want io.EOF", err)
	}
}

func TestCharReaderPeekIsStable(t *testing.T) {
	cr := NewCharReader(strings.NewReader("xy"))
	assertPeek(t, cr, 'x')
	assertPeek(t, cr, 'x')
	assertPeek(t, cr, 'x')
	// The peeked rune is returned first, exactly once.
	assertNext(t, cr, 'x')
	assertNext(t, cr, 'y')
}

func TestCharReaderPeekThenNextOrder(t *testing.T) {
	cr := NewCharReader(strings.NewReader("abc"))
	assertNext(t, cr, 'a')
	assertPeek(t, cr, 'b')
	assertNext(t, cr, 'b')
	assertPeek(t, cr, 'c')
	assertPeek(t, cr, 'c')
	assertNext(t, cr, 'c')
	if _, err := cr.Peek(); err != io.EOF {
		t.Errorf("Peek at end = %v, want io.EOF", err)
	}
	if _, err := cr.Next(); err != io.EOF {
		t.Errorf("Next after Peek at end = %v, want io.EOF", err)
	}
}

func TestCharReaderMultiByteRunes(t *testing.T) {
	input := "é中\U0001F600x"
	cr := NewCharReader(strings.NewReader(input))
	for _, want := range input {
		assertPeek(t, cr, want)
		assertNext(t, cr, want)
	}
	if _, err := cr.Next(); err != io.EOF {
		t.Errorf("Next at end = %v, want io.EOF", err)
	}
}

func TestCharReaderLargeInput(t *testing.T) {
	// Larger than the internal read buffer; runes must come back
	// intact across refills.
	line := "String s = \"héllo\"; // commenté\n"
	input := strings.Repeat(line, 500)
	cr := NewCharReader(strings.NewReader(input))

	var got []rune
	for {
		r, err := cr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: unexpected error %v", err)
		}
		got = append(got, r)
	}
	if string(got) != input {
		t.Fatalf("reassembled input does not match original (%d runes read)", len(got))
	}
}

func TestCharReaderPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	cr := NewCharReader(failingReader{err: boom})
	if _, err := cr.Next(); !errors.Is(err, boom) {
		t.Errorf("Next err = %v, want %v", err, boom)
	}
	if _, err := cr.Peek(); !errors.Is(err, boom) {
		t.Errorf("Peek err = %v, want %v", err, boom)
	}
}
