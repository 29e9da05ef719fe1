package mask

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriterWriteSpaces(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"zero", 0},
		{"one", 1},
		{"exactly one chunk", 16},
		{"crosses chunk boundary", 17},
		{"many chunks", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)
			if err := w.WriteSpaces(tt.n); err != nil {
				t.Fatalf("WriteSpaces: %v", err)
			}
			if err := w.Flush(); err != nil {
				t.Fatalf("Flush: %v", err)
			}
			if got, want := buf.String(), strings.Repeat(" ", tt.n); got != want {
				t.Errorf("wrote %d bytes, want %d spaces", len(got), tt.n)
			}
		})
	}
}

func TestWriterRunesAndStrings(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteRune('a'); err != nil {
		t.Fatalf("WriteRune: %v", err)
	}
	if err := w.WriteRune('é'); err != nil {
		t.Fatalf("WriteRune: %v", err)
	}
	if err := w.WriteString("中文"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got, want := buf.String(), "aé中文"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWriterLineFlush(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.LineFlush = true

	if err := w.WriteString("abc"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("output visible before newline: %q", buf.String())
	}
	if err := w.WriteRune('\n'); err != nil {
		t.Fatalf("WriteRune: %v", err)
	}
	if got := buf.String(); got != "abc\n" {
		t.Errorf("after newline output = %q, want %q", got, "abc\n")
	}
	if err := w.WriteString("d"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if got := buf.String(); got != "abc\n" {
		t.Errorf("partial line flushed early: %q", got)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := buf.String(); got != "abc\nd" {
		t.Errorf("final output = %q, want %q", got, "abc\nd")
	}
}
